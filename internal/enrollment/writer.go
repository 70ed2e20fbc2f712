package enrollment

import (
	"context"

	"topics/pkg/domain"
	"topics/pkg/serrors"
)

// NewTopicSubscribers builds one enrollment link per subscriber. The tenant
// scope is copied from each subscriber and the topic id and key from topic.
func NewTopicSubscribers(topic domain.Topic, subscribers []domain.Subscriber) []domain.TopicSubscriber {
	links := make([]domain.TopicSubscriber, 0, len(subscribers))
	for _, s := range subscribers {
		links = append(links, domain.TopicSubscriber{
			OrganizationID:       s.OrganizationID,
			EnvironmentID:        s.EnvironmentID,
			TopicID:              topic.ID,
			TopicKey:             topic.Key,
			SubscriberID:         s.ID,
			ExternalSubscriberID: s.ExternalID,
		})
	}

	return links
}

// linkSubscribers persists one link per subscriber in a single bulk write.
func (e *enroller) linkSubscribers(ctx context.Context, topic domain.Topic, subscribers []domain.Subscriber) error {
	if len(subscribers) == 0 {
		return nil
	}

	if err := e.storage.AddTopicSubscribers(ctx, NewTopicSubscribers(topic, subscribers)...); err != nil {
		return serrors.Wrap(ErrLinkWrite, err, "could not add subscribers to topic %q", topic.Key)
	}

	return nil
}
