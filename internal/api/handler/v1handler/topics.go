package v1handler

import (
	"net/http"
	"net/url"
	"strconv"

	"topics/internal/enrollment"
	"topics/pkg/domain"
	"topics/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

func requestScope(r *http.Request) (domain.Scope, error) {
	scope, ok := GetScopeFromContext(r.Context())
	if !ok {
		return domain.Scope{}, serrors.With(serrors.ErrUnauthorized, "missing tenant scope")
	}

	return scope, nil
}

// topicKeyParam returns the decoded {key} path parameter. chi matches on
// r.URL.Path, which is already decoded, unless the request carries a RawPath
// (e.g. an escaped slash), in which case the parameter is still escaped.
func topicKeyParam(r *http.Request) (domain.TopicKey, error) {
	key := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return domain.TopicKey(key), nil
	}

	unescaped, err := url.PathUnescape(key)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid topic key")
	}

	return domain.TopicKey(unescaped), nil
}

// CreateTopic handles POST /topics with a {"key", "name"} body.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	scope, err := requestScope(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var key, name string
	if err := decodeObject(r, func(d *jx.Decoder, k string) error {
		var err error
		switch k {
		case "key":
			key, err = d.Str()
		case "name":
			name, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		writeError(w, r, err)

		return
	}

	topic, err := h.deps.Enroller.CreateTopic(r.Context(), scope, domain.TopicKey(key), name)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.ObjStart()
		encodeTopic(e, *topic)
		e.ObjEnd()
	})
}

// GetTopic handles GET /topics/{key}.
func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	scope, err := requestScope(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	key, err := topicKeyParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	summary, err := h.deps.Enroller.Topic(r.Context(), scope, key)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		encodeTopic(e, summary.Topic)
		e.FieldStart("subscriberCount")
		e.Int64(summary.SubscriberCount)
		e.ObjEnd()
	})
}

// EnrollSubscribers handles POST /topics/{key}/subscribers. The topic is
// created when it does not exist yet. With ?async=true the request is queued
// and 202 is returned instead of the enrollment result.
func (h *Handler) EnrollSubscribers(w http.ResponseWriter, r *http.Request) {
	scope, err := requestScope(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	key, err := topicKeyParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	async := false
	if v := r.URL.Query().Get("async"); v != "" {
		if async, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid async parameter"))

			return
		}
	}

	var subscribers []string
	if err := decodeObject(r, func(d *jx.Decoder, k string) error {
		if k != "subscribers" {
			return d.Skip()
		}
		var err error
		subscribers, err = decodeStrings(d)

		return err
	}); err != nil {
		writeError(w, r, err)

		return
	}

	req := enrollment.Request{
		Scope:       scope,
		TopicKey:    key,
		Subscribers: make([]domain.ExternalSubscriberID, 0, len(subscribers)),
	}
	for _, s := range subscribers {
		req.Subscribers = append(req.Subscribers, domain.ExternalSubscriberID(s))
	}

	if async {
		if err := h.deps.Enroller.EnqueueEnroll(r.Context(), req); err != nil {
			writeError(w, r, err)

			return
		}
		writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
			e.ObjStart()
			e.FieldStart("topicKey")
			e.Str(string(key))
			e.FieldStart("status")
			e.Str("queued")
			e.ObjEnd()
		})

		return
	}

	res, err := h.deps.Enroller.Enroll(r.Context(), req)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("succeeded")
		encodeStrings(e, res.Existing)
		e.FieldStart("failed")
		e.ObjStart()
		e.FieldStart("notFound")
		encodeStrings(e, res.NotFound)
		e.ObjEnd()
		e.ObjEnd()
	})
}
