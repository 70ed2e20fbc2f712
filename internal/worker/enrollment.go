package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"topics/internal/enrollment"
	"topics/pkg/logger"
	"topics/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultRateLimitBackoff is used when Options.RateLimitBackoff is not set.
const DefaultRateLimitBackoff = 30 * time.Second

// EnrollmentWorker is a River worker that runs queued enrollment requests.
//
// Error handling: invalid requests cancel the job since retrying cannot fix
// them. A rate limited directory snoozes the job for RateLimitBackoff without
// consuming an attempt. Other errors are logged and returned so River retries
// the job with its default backoff. Retrying is safe because enrollment is
// idempotent.
type EnrollmentWorker struct {
	river.WorkerDefaults[enrollment.JobArgs]

	enroller         enrollment.Enroller
	timeout          time.Duration
	rateLimitBackoff time.Duration
}

// NewEnrollmentWorker constructs an EnrollmentWorker around the given enroller.
func NewEnrollmentWorker(enroller enrollment.Enroller, opts Options) *EnrollmentWorker {
	backoff := opts.RateLimitBackoff
	if backoff <= 0 {
		backoff = DefaultRateLimitBackoff
	}

	return &EnrollmentWorker{
		enroller:         enroller,
		timeout:          opts.JobTimeout,
		rateLimitBackoff: backoff,
	}
}

// Timeout bounds a single job. Zero falls back to River's default.
func (w *EnrollmentWorker) Timeout(*river.Job[enrollment.JobArgs]) time.Duration {
	return w.timeout
}

// Work enrolls the subscribers of a queued request.
func (w *EnrollmentWorker) Work(ctx context.Context, job *river.Job[enrollment.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("topicKey", job.Args.TopicKey))

	res, err := w.enroller.Enroll(ctx, job.Args.Request())
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "cancelling invalid enrollment job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in enrolling subscribers", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			return river.JobSnooze(w.rateLimitBackoff) //nolint: wrapcheck
		}

		return fmt.Errorf("could not enroll subscribers: %w", err)
	}

	logger.Info(ctx, "subscribers enrolled from queue",
		zap.Int("existing", len(res.Existing)),
		zap.Int("notFound", len(res.NotFound)))

	return nil
}
