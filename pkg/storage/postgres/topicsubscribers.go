package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"topics/pkg/domain"
	"topics/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	topicSubscribersTable = "topic_subscribers"
)

// AddTopicSubscribers bulk inserts enrollment links. Pairs that are already
// linked are skipped. Batches larger than the configured chunk size are split
// into several statements executed in a single transaction, so either every
// link is stored or none is.
func (p *PgSQL) AddTopicSubscribers(ctx context.Context, links ...domain.TopicSubscriber) error {
	if len(links) == 0 {
		return nil
	}

	size := p.insertChunkSize
	if size <= 0 {
		size = DefaultInsertChunkSize
	}

	if _, inTx := p.DB.(*sql.Tx); !inTx && len(links) > size {
		return p.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.AddTopicSubscribers(ctx, links...)
		})
	}

	for start := 0; start < len(links); start += size {
		end := min(start+size, len(links))
		if _, err := p.Builder.Insert(topicSubscribersTable).
			Rows(domainTopicSubscribersToPg(links[start:end])).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store topic subscribers into pg: %w", err)
		}
	}

	return nil
}

// TopicSubscriberCount returns how many subscribers are linked to the topic.
func (p *PgSQL) TopicSubscriberCount(ctx context.Context, topicID domain.TopicID) (int64, error) {
	count, err := p.Builder.From(topicSubscribersTable).
		Where(goqu.I("topic_id").Eq(uuid.UUID(topicID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count topic subscribers: %w", err)
	}

	return count, nil
}
