package enrollment

import (
	"strings"

	"topics/pkg/domain"
	"topics/pkg/serrors"
)

// Request asks for a list of external subscriber identities to be enrolled
// into the topic identified by TopicKey within Scope. Duplicated identities
// are tolerated.
type Request struct {
	Scope       domain.Scope
	TopicKey    domain.TopicKey
	Subscribers []domain.ExternalSubscriberID
}

// Result reports, for every distinct requested identity, whether it was found
// in the directory (and is therefore enrolled) or not. Both lists are sorted
// and disjoint, and together they hold every distinct identity of the
// request. Blank identities can never match a subscriber and are reported as
// not found.
type Result struct {
	Existing []domain.ExternalSubscriberID
	NotFound []domain.ExternalSubscriberID
}

// TopicSummary is a topic together with the number of subscribers enrolled in it.
type TopicSummary struct {
	Topic           domain.Topic
	SubscriberCount int64
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func validateTopic(scope domain.Scope, key domain.TopicKey) error {
	if scope.IsZero() {
		return serrors.With(serrors.ErrBadRequest, "organization and environment are required")
	}
	if isBlank(string(key)) {
		return serrors.With(serrors.ErrBadRequest, "topic key is required")
	}

	return nil
}

// normalize validates r and returns a copy whose identities are deduplicated
// in first-seen order.
func (r Request) normalize(maxSubscribers int) (Request, error) {
	if err := validateTopic(r.Scope, r.TopicKey); err != nil {
		return Request{}, err
	}

	ids := make([]domain.ExternalSubscriberID, 0, len(r.Subscribers))
	seen := make(map[domain.ExternalSubscriberID]struct{}, len(r.Subscribers))
	for _, id := range r.Subscribers {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if maxSubscribers > 0 && len(ids) > maxSubscribers {
		return Request{}, serrors.With(serrors.ErrBadRequest,
			"too many subscribers: got %d, at most %d are allowed", len(ids), maxSubscribers)
	}

	return Request{Scope: r.Scope, TopicKey: r.TopicKey, Subscribers: ids}, nil
}

// lookupIDs returns the identities worth sending to the directory, which are
// the non-blank ones.
func (r Request) lookupIDs() []domain.ExternalSubscriberID {
	ids := make([]domain.ExternalSubscriberID, 0, len(r.Subscribers))
	for _, id := range r.Subscribers {
		if !isBlank(string(id)) {
			ids = append(ids, id)
		}
	}

	return ids
}
