package postgres

import (
	"context"
	"fmt"
	"topics/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	subscribersTable = "subscribers"
)

// SubscribersByExternalIDs returns every subscriber of scope whose external id
// is in ids. Duplicate records for one external id are all returned.
func (p *PgSQL) SubscribersByExternalIDs(ctx context.Context,
	scope domain.Scope,
	ids []domain.ExternalSubscriberID) ([]domain.Subscriber, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = string(id)
	}

	var rows []PgSubscriber
	if err := p.Builder.From(subscribersTable).
		Where(
			goqu.I("organization_id").Eq(uuid.UUID(scope.OrganizationID)),
			goqu.I("environment_id").Eq(uuid.UUID(scope.EnvironmentID)),
			goqu.I("subscriber_id").In(values),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch subscribers by external ids: %w", err)
	}

	return pgSubscribersToDomain(rows), nil
}

// StoreSubscribers inserts directory records. The service itself never creates
// subscribers; this is used to seed the directory.
func (p *PgSQL) StoreSubscribers(ctx context.Context, subscribers ...domain.Subscriber) ([]domain.Subscriber, error) {
	if len(subscribers) == 0 {
		return nil, nil
	}

	rows := make([]PgSubscriber, len(subscribers))
	for i := range rows {
		rows[i].FromDomain(subscribers[i])
	}

	var stored []PgSubscriber
	if err := p.Builder.Insert(subscribersTable).
		Rows(rows).
		Returning(&PgSubscriber{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store subscribers into pg: %w", err)
	}

	return pgSubscribersToDomain(stored), nil
}
