// Package redis implements topiccache.Cache on top of Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"topics/pkg/domain"
	"topics/pkg/topiccache"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultTTL is used when Options.TTL is not set.
const DefaultTTL = 10 * time.Minute

// Options configures a Cache.
type Options struct {
	Prefix string
	TTL    time.Duration
}

// Cache keeps topics as JSON documents under
// <prefix><organization>:<environment>:<key> with a fixed TTL.
type Cache struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ topiccache.Cache = (*Cache)(nil)

// New wraps the given Redis client.
func New(client goredis.UniversalClient, options Options) *Cache {
	ttl := options.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	prefix := options.Prefix
	if prefix == "" {
		prefix = "topics:"
	}

	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

type cachedTopic struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organizationId"`
	EnvironmentID  uuid.UUID `json:"environmentId"`
	Key            string    `json:"key"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c *Cache) makeKey(scope domain.Scope, key domain.TopicKey) string {
	return c.prefix + scope.OrganizationID.String() + ":" + scope.EnvironmentID.String() + ":" + string(key)
}

// Get returns the cached topic or nil on a miss.
func (c *Cache) Get(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error) {
	data, err := c.client.Get(ctx, c.makeKey(scope, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("could not get topic from cache: %w", err)
	}

	var cached cachedTopic
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("could not unmarshal cached topic: %w", err)
	}

	return &domain.Topic{
		ID:             domain.TopicID(cached.ID),
		OrganizationID: domain.OrganizationID(cached.OrganizationID),
		EnvironmentID:  domain.EnvironmentID(cached.EnvironmentID),
		Key:            domain.TopicKey(cached.Key),
		Name:           cached.Name,
		CreatedAt:      cached.CreatedAt,
		UpdatedAt:      cached.UpdatedAt,
	}, nil
}

// Set stores the topic for the configured TTL.
func (c *Cache) Set(ctx context.Context, topic domain.Topic) error {
	data, err := json.Marshal(cachedTopic{
		ID:             uuid.UUID(topic.ID),
		OrganizationID: uuid.UUID(topic.OrganizationID),
		EnvironmentID:  uuid.UUID(topic.EnvironmentID),
		Key:            string(topic.Key),
		Name:           topic.Name,
		CreatedAt:      topic.CreatedAt,
		UpdatedAt:      topic.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("could not marshal topic: %w", err)
	}

	if err := c.client.Set(ctx, c.makeKey(topic.Scope(), topic.Key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not set topic in cache: %w", err)
	}

	return nil
}
