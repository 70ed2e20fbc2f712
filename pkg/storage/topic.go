package storage

import (
	"context"
	"topics/pkg/domain"
)

// TopicStorage defines lookup and creation of topics. Topics are keyed by
// (organization, environment, key) and the backend must enforce uniqueness of
// that triple.
type TopicStorage interface {
	// TopicByKey returns the topic with the given key inside scope, or nil when
	// no such topic exists.
	TopicByKey(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error)
	// CreateTopic inserts a new topic and returns the stored row (including
	// generated fields). It returns an error wrapping ErrDuplicateKey when the key
	// already exists inside the scope.
	CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error)
}
