package enrollment

import (
	"cmp"
	"maps"
	"slices"

	"topics/pkg/domain"
)

// Classification partitions requested identities against the subscribers the
// directory found for them.
type Classification struct {
	// Existing holds the requested identities matched by at least one subscriber.
	Existing map[domain.ExternalSubscriberID]struct{}
	// NotFound holds the requested identities no subscriber matched.
	NotFound map[domain.ExternalSubscriberID]struct{}
	// Eligible holds the subscriber records to enroll, keyed by internal id.
	// Distinct records sharing an identity are all eligible.
	Eligible map[domain.SubscriberID]domain.Subscriber

	// DuplicateIdentities is the number of identities matched by more than one
	// distinct subscriber record.
	DuplicateIdentities int
	// Unrequested is the number of found records whose identity was never
	// requested or is blank. They are ignored.
	Unrequested int
}

// Classify splits requested into identities that exist in found and
// identities that do not, and collects the eligible subscriber records. It
// neither mutates its inputs nor performs I/O.
func Classify(requested []domain.ExternalSubscriberID, found []domain.Subscriber) Classification {
	wanted := make(map[domain.ExternalSubscriberID]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	c := Classification{
		Existing: make(map[domain.ExternalSubscriberID]struct{}, len(wanted)),
		NotFound: make(map[domain.ExternalSubscriberID]struct{}),
		Eligible: make(map[domain.SubscriberID]domain.Subscriber, len(found)),
	}

	records := make(map[domain.ExternalSubscriberID]int, len(found))
	for _, s := range found {
		// a blank identity never matches, even when it was requested
		if _, ok := wanted[s.ExternalID]; !ok || isBlank(string(s.ExternalID)) {
			c.Unrequested++

			continue
		}
		c.Existing[s.ExternalID] = struct{}{}

		// the same record reported twice is enrolled once
		if _, ok := c.Eligible[s.ID]; ok {
			continue
		}
		c.Eligible[s.ID] = s
		records[s.ExternalID]++
	}
	for _, n := range records {
		if n > 1 {
			c.DuplicateIdentities++
		}
	}

	for id := range wanted {
		if _, ok := c.Existing[id]; !ok {
			c.NotFound[id] = struct{}{}
		}
	}

	return c
}

// ExistingIDs returns the existing identities in ascending order.
func (c Classification) ExistingIDs() []domain.ExternalSubscriberID {
	return slices.Sorted(maps.Keys(c.Existing))
}

// NotFoundIDs returns the identities that were not found in ascending order.
func (c Classification) NotFoundIDs() []domain.ExternalSubscriberID {
	return slices.Sorted(maps.Keys(c.NotFound))
}

// EligibleSubscribers returns the eligible records ordered by identity, then
// by internal id.
func (c Classification) EligibleSubscribers() []domain.Subscriber {
	out := slices.Collect(maps.Values(c.Eligible))
	slices.SortFunc(out, func(a, b domain.Subscriber) int {
		return cmp.Or(
			cmp.Compare(a.ExternalID, b.ExternalID),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return out
}
