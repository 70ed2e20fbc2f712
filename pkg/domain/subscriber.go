package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberID is the internal identifier of a subscriber record.
type SubscriberID uuid.UUID

// String returns the canonical uuid representation.
func (id SubscriberID) String() string { return uuid.UUID(id).String() }

// ExternalSubscriberID is the tenant-supplied identity of a subscriber, distinct
// from the internal SubscriberID.
type ExternalSubscriberID string

// Subscriber is a directory entity. It is owned by the subscriber directory and
// only read by this service.
type Subscriber struct {
	ID             SubscriberID   `json:"id"`
	OrganizationID OrganizationID `json:"organizationId"`
	EnvironmentID  EnvironmentID  `json:"environmentId"`

	// ExternalID is the tenant-facing identity string.
	ExternalID ExternalSubscriberID `json:"subscriberId"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// TopicSubscriberID identifies an enrollment link.
type TopicSubscriberID uuid.UUID

// TopicSubscriber associates one Subscriber with one Topic. TopicKey and
// ExternalSubscriberID are denormalized for reverse lookups.
type TopicSubscriber struct {
	ID             TopicSubscriberID `json:"id"`
	OrganizationID OrganizationID    `json:"organizationId"`
	EnvironmentID  EnvironmentID     `json:"environmentId"`

	TopicID  TopicID  `json:"topicId"`
	TopicKey TopicKey `json:"topicKey"`

	SubscriberID         SubscriberID         `json:"subscriberId"`
	ExternalSubscriberID ExternalSubscriberID `json:"externalSubscriberId"`

	CreatedAt time.Time `json:"createdAt"`
}
