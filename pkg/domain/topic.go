package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopicID uniquely identifies a topic record.
type TopicID uuid.UUID

// String returns the canonical uuid representation.
func (id TopicID) String() string { return uuid.UUID(id).String() }

// TopicKey is the human-assigned key of a topic. It is unique per Scope.
type TopicKey string

// Topic is a named broadcast group scoped to one tenant environment.
type Topic struct {
	// ID is the internal identifier of the topic.
	ID TopicID `json:"id"`
	// OrganizationID and EnvironmentID form the tenant scope of the topic.
	OrganizationID OrganizationID `json:"organizationId"`
	EnvironmentID  EnvironmentID  `json:"environmentId"`

	// Key is unique within the scope.
	Key TopicKey `json:"key"`
	// Name is the display name. Topics created on first reference carry a provisional name.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Scope returns the tenant scope of the topic.
func (t Topic) Scope() Scope {
	return Scope{OrganizationID: t.OrganizationID, EnvironmentID: t.EnvironmentID}
}
