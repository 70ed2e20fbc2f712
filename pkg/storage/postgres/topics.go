package postgres

import (
	"context"
	"fmt"
	"topics/pkg/domain"
	"topics/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	topicsTable = "topics"
)

// TopicByKey returns the topic identified by key inside scope, or nil when it does not exist.
func (p *PgSQL) TopicByKey(ctx context.Context, scope domain.Scope, key domain.TopicKey) (*domain.Topic, error) {
	var row PgTopic
	found, err := p.Builder.From(topicsTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(scope.OrganizationID)),
			goqu.I("environment_id").Eq(uuid.UUID(scope.EnvironmentID)),
			goqu.I("key").Eq(string(key)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch topic by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CreateTopic inserts a topic. A key that already exists in the same scope
// yields an error wrapping storage.ErrDuplicateKey.
func (p *PgSQL) CreateTopic(ctx context.Context, topic domain.Topic) (*domain.Topic, error) {
	var row PgTopic
	row.FromDomain(topic)

	var stored PgTopic
	if _, err := p.Builder.Insert(topicsTable).
		Rows(row).
		Returning(&PgTopic{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("topic %q already exists: %w", topic.Key, storage.ErrDuplicateKey)
		}

		return nil, fmt.Errorf("could not store topic into pg: %w", err)
	}

	return stored.ToDomain(), nil
}
