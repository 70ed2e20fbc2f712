// Package worker runs the background job processors of the service on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"topics/internal/config"
	"topics/internal/enrollment"
	"topics/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultMaxWorkers is used when Options.MaxWorkers is not set.
const DefaultMaxWorkers = 100

// Options configure the River client and its workers.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently on the default queue.
	MaxWorkers int
	// JobTimeout bounds a single enrollment job.
	JobTimeout time.Duration
	// RateLimitBackoff is how long a job is snoozed when the directory rate limits it.
	RateLimitBackoff time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:       cfg.Worker.MaxWorkers,
		JobTimeout:       cfg.Worker.JobTimeout,
		RateLimitBackoff: cfg.Worker.RateLimitBackoff,
	}
}

// Start registers the workers and starts a River client processing the default queue.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	enroller enrollment.Enroller,
	opts Options,
) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewEnrollmentWorker(enroller, opts))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
