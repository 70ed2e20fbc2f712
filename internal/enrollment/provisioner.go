package enrollment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"topics/pkg/domain"
	"topics/pkg/logger"
	"topics/pkg/serrors"
	"topics/pkg/storage"
	"topics/pkg/topiccache"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultProvisionalNamePrefix prefixes the key of topics created on first reference.
const DefaultProvisionalNamePrefix = "Topic-On-The-Fly-"

// ProvisionTimeout bounds one shared lookup-or-create run.
const ProvisionTimeout = 30 * time.Second

// ProvisionalName returns the display name given to a topic created on first
// reference.
func ProvisionalName(prefix string, key domain.TopicKey) string {
	return prefix + string(key)
}

// Provisioner guarantees a topic exists for a (scope, key) pair, creating it
// with a provisional name when it does not.
type Provisioner struct {
	topics     storage.TopicStorage
	cache      topiccache.Cache
	namePrefix string

	group       singleflight.Group
	provisioned metric.Int64Counter
}

// NewProvisioner creates a Provisioner. A nil cache disables caching and an
// empty namePrefix selects DefaultProvisionalNamePrefix.
func NewProvisioner(
	topics storage.TopicStorage,
	cache topiccache.Cache,
	namePrefix string,
	meter metric.Meter,
) (*Provisioner, error) {
	if cache == nil {
		cache = topiccache.Noop{}
	}
	if namePrefix == "" {
		namePrefix = DefaultProvisionalNamePrefix
	}
	provisioned, err := meter.Int64Counter("enrollment.topics.provisioned",
		metric.WithDescription("Number of topics created on first reference."))
	if err != nil {
		return nil, fmt.Errorf("could not create counter: %w", err)
	}

	return &Provisioner{
		topics:      topics,
		cache:       cache,
		namePrefix:  namePrefix,
		provisioned: provisioned,
	}, nil
}

// EnsureTopic returns the topic stored under key in scope, creating it when
// absent. Concurrent calls for the same topic inside this process share one
// lookup. Across processes, losing the creation race to another writer is
// resolved by reading the winner's topic once.
//
// The shared lookup is detached from the cancellation of the caller that
// started it; every caller stops waiting when its own ctx is done.
func (p *Provisioner) EnsureTopic(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error) {
	flight := scope.OrganizationID.String() + "/" + scope.EnvironmentID.String() + "/" + string(key)
	ch := p.group.DoChan(flight, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ProvisionTimeout)
		defer cancel()

		return p.ensure(flightCtx, scope, key)
	})

	select {
	case <-ctx.Done():
		return nil, serrors.Wrap(ErrTopicProvisioning, ctx.Err(), "gave up waiting for topic %q", key)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err //nolint: wrapcheck
		}
		topic, _ := res.Val.(*domain.Topic)

		// callers sharing a flight must not share the pointer
		out := *topic

		return &out, nil
	}
}

func (p *Provisioner) ensure(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error) {
	topic, err := p.Lookup(ctx, scope, key)
	if err != nil {
		return nil, serrors.Wrap(ErrTopicProvisioning, err, "could not look up topic %q", key)
	}
	if topic != nil {
		return topic, nil
	}

	topic, err = p.topics.CreateTopic(ctx, domain.Topic{
		OrganizationID: scope.OrganizationID,
		EnvironmentID:  scope.EnvironmentID,
		Key:            key,
		Name:           ProvisionalName(p.namePrefix, key),
	})
	if err == nil {
		p.provisioned.Add(ctx, 1)
		logger.Info(ctx, "topic created on first reference",
			zap.String("topicKey", string(key)),
			zap.Stringer("topicId", topic.ID))
		p.Remember(ctx, *topic)

		return topic, nil
	}
	if !errors.Is(err, storage.ErrDuplicateKey) {
		return nil, serrors.Wrap(ErrTopicProvisioning, err, "could not create topic %q", key)
	}

	// another writer created the topic between our lookup and insert
	logger.Debug(ctx, "topic created concurrently, reading it back", zap.String("topicKey", string(key)))
	topic, lookupErr := p.topics.TopicByKey(ctx, scope, key)
	if lookupErr != nil {
		return nil, serrors.Wrap(ErrTopicProvisioning, errors.Join(err, lookupErr), "could not read back topic %q", key)
	}
	if topic == nil {
		return nil, serrors.Wrap(ErrTopicProvisioning, err, "topic %q missing after duplicate key", key)
	}
	p.Remember(ctx, *topic)

	return topic, nil
}

// Lookup returns the topic stored under key in scope or nil. Cache failures
// are logged and fall through to storage.
func (p *Provisioner) Lookup(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error) {
	cached, err := p.cache.Get(ctx, scope, key)
	if err != nil {
		logger.Warn(ctx, "could not read topic cache", zap.String("topicKey", string(key)), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	topic, err := p.topics.TopicByKey(ctx, scope, key)
	if err != nil {
		return nil, fmt.Errorf("could not get topic by key: %w", err)
	}
	if topic != nil {
		p.Remember(ctx, *topic)
	}

	return topic, nil
}

// Remember stores topic in the cache. Failures are only logged.
func (p *Provisioner) Remember(ctx context.Context, topic domain.Topic) {
	if err := p.cache.Set(ctx, topic); err != nil {
		logger.Warn(ctx, "could not write topic cache", zap.String("topicKey", string(topic.Key)), zap.Error(err))
	}
}
