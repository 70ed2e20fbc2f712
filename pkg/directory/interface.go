// Package directory defines the read-only subscriber directory used to resolve
// external subscriber identities into subscriber records.
//
//go:generate mockgen -package mockdirectory -source=interface.go -destination=mock/mockdirectory.go *
package directory

import (
	"context"

	"topics/pkg/domain"
)

// Directory looks up subscribers by their external identities within a tenant
// scope. Implementations return only matching records, in no particular
// order, and may return more than one record for the same identity. Missing
// identities are not an error.
type Directory interface {
	SubscribersByExternalIDs(
		ctx context.Context,
		scope domain.Scope,
		ids []domain.ExternalSubscriberID,
	) ([]domain.Subscriber, error)
}
