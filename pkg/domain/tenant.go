package domain

import "github.com/google/uuid"

// OrganizationID uniquely identifies an organization (tenant).
// It wraps uuid.UUID to provide type safety at the domain layer.
type OrganizationID uuid.UUID

// EnvironmentID uniquely identifies an environment inside an organization.
type EnvironmentID uuid.UUID

// String returns the canonical uuid representation.
func (id OrganizationID) String() string { return uuid.UUID(id).String() }

// String returns the canonical uuid representation.
func (id EnvironmentID) String() string { return uuid.UUID(id).String() }

// Scope is the tenant boundary every topic, subscriber and enrollment link
// belongs to.
type Scope struct {
	OrganizationID OrganizationID `json:"organizationId"`
	EnvironmentID  EnvironmentID  `json:"environmentId"`
}

// IsZero reports whether either half of the scope is missing.
func (s Scope) IsZero() bool {
	return s.OrganizationID == OrganizationID{} || s.EnvironmentID == EnvironmentID{}
}
