package storage

import (
	"context"
	"topics/pkg/domain"
)

// SubscriberStorage gives read access to the subscriber directory kept in the
// same database. Subscribers are never written by this service.
type SubscriberStorage interface {
	// SubscribersByExternalIDs returns the subscribers of scope whose external id
	// is one of ids. Unmatched ids are silently omitted and, when the directory
	// holds several records for the same external id, all of them are returned.
	SubscribersByExternalIDs(ctx context.Context,
		scope domain.Scope,
		ids []domain.ExternalSubscriberID) ([]domain.Subscriber, error)
}

// TopicSubscriberStorage persists enrollment links between topics and subscribers.
type TopicSubscriberStorage interface {
	// AddTopicSubscribers bulk inserts the given links. Links already present for
	// the same (topic, subscriber) pair are skipped. Implementations either insert
	// everything or nothing.
	AddTopicSubscribers(ctx context.Context, links ...domain.TopicSubscriber) error
	// TopicSubscriberCount returns the number of subscribers linked to the topic.
	TopicSubscriberCount(ctx context.Context, topicID domain.TopicID) (int64, error)
}
