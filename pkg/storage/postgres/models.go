package postgres

import (
	"database/sql"
	"time"
	"topics/pkg/domain"

	"github.com/google/uuid"
)

type PgTopic struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	OrganizationID uuid.UUID `db:"organization_id"`
	EnvironmentID  uuid.UUID `db:"environment_id"`

	Key  string `db:"key"`
	Name string `db:"name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTopic) ToDomain() *domain.Topic {
	return &domain.Topic{
		ID:             domain.TopicID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		EnvironmentID:  domain.EnvironmentID(p.EnvironmentID),
		Key:            domain.TopicKey(p.Key),
		Name:           p.Name,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgTopic) FromDomain(topic domain.Topic) {
	*p = PgTopic{
		ID:             uuid.UUID(topic.ID),
		OrganizationID: uuid.UUID(topic.OrganizationID),
		EnvironmentID:  uuid.UUID(topic.EnvironmentID),
		Key:            string(topic.Key),
		Name:           topic.Name,
		CreatedAt:      topic.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  topic.UpdatedAt,
			Valid: !topic.UpdatedAt.IsZero(),
		},
	}
}

type PgSubscriber struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	OrganizationID uuid.UUID `db:"organization_id"`
	EnvironmentID  uuid.UUID `db:"environment_id"`

	// subscriber_id holds the tenant-facing external identity.
	ExternalID string `db:"subscriber_id"`

	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	Email     sql.NullString `db:"email"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSubscriber) ToDomain() domain.Subscriber {
	return domain.Subscriber{
		ID:             domain.SubscriberID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		EnvironmentID:  domain.EnvironmentID(p.EnvironmentID),
		ExternalID:     domain.ExternalSubscriberID(p.ExternalID),
		FirstName:      p.FirstName.String,
		LastName:       p.LastName.String,
		Email:          p.Email.String,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgSubscriber) FromDomain(s domain.Subscriber) {
	nullable := func(v string) sql.NullString { return sql.NullString{String: v, Valid: v != ""} }

	*p = PgSubscriber{
		ID:             uuid.UUID(s.ID),
		OrganizationID: uuid.UUID(s.OrganizationID),
		EnvironmentID:  uuid.UUID(s.EnvironmentID),
		ExternalID:     string(s.ExternalID),
		FirstName:      nullable(s.FirstName),
		LastName:       nullable(s.LastName),
		Email:          nullable(s.Email),
		CreatedAt:      s.CreatedAt,
	}
}

type PgTopicSubscriber struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	OrganizationID uuid.UUID `db:"organization_id"`
	EnvironmentID  uuid.UUID `db:"environment_id"`

	TopicID  uuid.UUID `db:"topic_id"`
	TopicKey string    `db:"topic_key"`

	SubscriberID         uuid.UUID `db:"subscriber_id"`
	ExternalSubscriberID string    `db:"external_subscriber_id"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTopicSubscriber) FromDomain(link domain.TopicSubscriber) {
	*p = PgTopicSubscriber{
		ID:                   uuid.UUID(link.ID),
		OrganizationID:       uuid.UUID(link.OrganizationID),
		EnvironmentID:        uuid.UUID(link.EnvironmentID),
		TopicID:              uuid.UUID(link.TopicID),
		TopicKey:             string(link.TopicKey),
		SubscriberID:         uuid.UUID(link.SubscriberID),
		ExternalSubscriberID: string(link.ExternalSubscriberID),
		CreatedAt:            link.CreatedAt,
	}
}

func domainTopicSubscribersToPg(links []domain.TopicSubscriber) []PgTopicSubscriber {
	out := make([]PgTopicSubscriber, len(links))
	for i := range out {
		out[i].FromDomain(links[i])
	}

	return out
}

func pgSubscribersToDomain(rows []PgSubscriber) []domain.Subscriber {
	out := make([]domain.Subscriber, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
