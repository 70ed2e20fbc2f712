// Package enrollment adds subscribers to topics. Topics are created on first
// reference, requested identities are resolved against the subscriber
// directory, and every resolved subscriber is linked to the topic in one write.
package enrollment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"topics/internal/config"
	"topics/pkg/directory"
	"topics/pkg/domain"
	"topics/pkg/logger"
	"topics/pkg/serrors"
	"topics/pkg/storage"
	"topics/pkg/topiccache"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options configure enrollment. They are typically derived from application
// configuration.
type Options struct {
	// ProvisionalNamePrefix is prepended to the key of topics created on first reference.
	ProvisionalNamePrefix string
	// MaxSubscribers caps the number of distinct identities per request. Zero disables the cap.
	MaxSubscribers int
	// MaxAttempts is the maximum number of attempts for background enrollment jobs.
	MaxAttempts int

	// MeterProvider and TracerProvider default to the global otel providers.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ProvisionalNamePrefix: cfg.Enrollment.ProvisionalNamePrefix,
		MaxSubscribers:        cfg.Enrollment.MaxSubscribers,
		MaxAttempts:           cfg.Worker.MaxAttempts,
	}
}

type enroller struct {
	options     Options
	storage     storage.Storage
	directory   directory.Directory
	provisioner *Provisioner
	instruments instruments
	tracer      trace.Tracer
}

// Enroll implements Enroller. The steps run in order: ensure the topic, look
// up the directory, classify, then link the eligible subscribers when there
// are any. A failing step stops the request.
func (e *enroller) Enroll(ctx context.Context, req Request) (res Result, err error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "enrollment.Enroll", trace.WithAttributes(
		attribute.String("topic.key", string(req.TopicKey)),
		attribute.Int("subscribers.requested", len(req.Subscribers)),
	))
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			if k := serrors.KindOf(err); k != nil {
				outcome = k.Error()
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		attrs := metric.WithAttributes(attribute.String("result", outcome))
		e.instruments.requests.Add(ctx, 1, attrs)
		e.instruments.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		span.End()
	}()

	req, err = req.normalize(e.options.MaxSubscribers)
	if err != nil {
		return Result{}, err
	}
	ctx = logger.WithScope(logger.WithFields(ctx, zap.String("topicKey", string(req.TopicKey))), req.Scope)

	topic, err := e.provisioner.EnsureTopic(ctx, req.Scope, req.TopicKey)
	if err != nil {
		logger.Error(ctx, "could not ensure topic", zap.Error(err))

		return Result{}, err
	}
	span.SetAttributes(attribute.String("topic.id", topic.ID.String()))

	var found []domain.Subscriber
	if ids := req.lookupIDs(); len(ids) > 0 {
		found, err = e.directory.SubscribersByExternalIDs(ctx, req.Scope, ids)
		if err != nil {
			err = serrors.Wrap(ErrDirectoryLookup, err, "could not look up subscribers")
			logger.Error(ctx, "could not look up subscribers", zap.Error(err))

			return Result{}, err
		}
	}

	groups := Classify(req.Subscribers, found)
	if groups.DuplicateIdentities > 0 {
		e.instruments.duplicateIdentities.Add(ctx, int64(groups.DuplicateIdentities))
		logger.Warn(ctx, "directory resolved identities to several subscribers, enrolling all of them",
			zap.Int("identities", groups.DuplicateIdentities))
	}
	if groups.Unrequested > 0 {
		logger.Warn(ctx, "directory returned subscribers that were not requested",
			zap.Int("subscribers", groups.Unrequested))
	}

	eligible := groups.EligibleSubscribers()
	if len(eligible) > 0 {
		if err = e.linkSubscribers(ctx, *topic, eligible); err != nil {
			logger.Error(ctx, "could not link subscribers", zap.Int("subscribers", len(eligible)), zap.Error(err))

			return Result{}, err
		}
		e.instruments.linked.Add(ctx, int64(len(eligible)))
	}

	res = Result{Existing: groups.ExistingIDs(), NotFound: groups.NotFoundIDs()}
	e.instruments.notFound.Add(ctx, int64(len(res.NotFound)))
	logger.Info(ctx, "subscribers enrolled",
		zap.Int("existing", len(res.Existing)),
		zap.Int("notFound", len(res.NotFound)),
		zap.Int("linked", len(eligible)))

	return res, nil
}

// EnqueueEnroll implements Enroller. Identical requests that are still
// waiting to run are enqueued once.
func (e *enroller) EnqueueEnroll(ctx context.Context, req Request) error {
	req, err := req.normalize(e.options.MaxSubscribers)
	if err != nil {
		return err
	}
	ctx = logger.WithScope(logger.WithFields(ctx, zap.String("topicKey", string(req.TopicKey))), req.Scope)

	added, err := e.storage.AddJob(ctx, NewJobArgs(req, e.options.MaxAttempts), nil)
	if err != nil {
		return fmt.Errorf("could not add enrollment job: %w", err)
	}
	if !added {
		logger.Info(ctx, "identical enrollment already queued")

		return nil
	}
	logger.Info(ctx, "enrollment queued", zap.Int("subscribers", len(req.Subscribers)))

	return nil
}

// CreateTopic implements Enroller. It fails with a conflict when the key is
// already taken inside scope.
func (e *enroller) CreateTopic(
	ctx context.Context,
	scope domain.Scope,
	key domain.TopicKey,
	name string,
) (*domain.Topic, error) {
	if err := validateTopic(scope, key); err != nil {
		return nil, err
	}
	if isBlank(name) {
		return nil, serrors.With(serrors.ErrBadRequest, "topic name is required")
	}

	topic, err := e.storage.CreateTopic(ctx, domain.Topic{
		OrganizationID: scope.OrganizationID,
		EnvironmentID:  scope.EnvironmentID,
		Key:            key,
		Name:           name,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "topic %q already exists", key)
		}

		return nil, fmt.Errorf("could not create topic: %w", err)
	}
	e.provisioner.Remember(ctx, *topic)

	return topic, nil
}

// Topic implements Enroller.
func (e *enroller) Topic(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*TopicSummary, error) {
	if err := validateTopic(scope, key); err != nil {
		return nil, err
	}

	topic, err := e.provisioner.Lookup(ctx, scope, key)
	if err != nil {
		return nil, fmt.Errorf("could not get topic: %w", err)
	}
	if topic == nil {
		return nil, serrors.With(serrors.ErrNotFound, "topic %q not found", key)
	}

	count, err := e.storage.TopicSubscriberCount(ctx, topic.ID)
	if err != nil {
		return nil, fmt.Errorf("could not count topic subscribers: %w", err)
	}

	return &TopicSummary{Topic: *topic, SubscriberCount: count}, nil
}

// New creates an Enroller backed by the provided storage and subscriber
// directory. cache may be nil.
func New(
	storage storage.Storage,
	directory directory.Directory,
	cache topiccache.Cache,
	options Options,
) (Enroller, error) {
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	meter := options.MeterProvider.Meter(instrumentationName)

	ins, err := newInstruments(meter)
	if err != nil {
		return nil, err
	}
	provisioner, err := NewProvisioner(storage, cache, options.ProvisionalNamePrefix, meter)
	if err != nil {
		return nil, err
	}

	return &enroller{
		options:     options,
		storage:     storage,
		directory:   directory,
		provisioner: provisioner,
		instruments: ins,
		tracer:      options.TracerProvider.Tracer(instrumentationName),
	}, nil
}
