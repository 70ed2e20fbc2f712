package v1handler

import (
	"io"
	"net/http"
	"time"

	"topics/pkg/domain"
	"topics/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// decodeObject reads the request body and decodes it as a JSON object, calling
// field for every key. Unknown keys must be skipped by field.
func decodeObject(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return errors.Wrap(err, "read body")
	}
	if len(body) == 0 {
		return serrors.With(serrors.ErrBadRequest, "request body is required")
	}

	if err := jx.DecodeBytes(body).Obj(field); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var out []string
	if err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return errors.Wrapf(err, "element %d", len(out))
		}
		out = append(out, s)

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func encodeStrings[T ~string](e *jx.Encoder, values []T) {
	e.ArrStart()
	for _, v := range values {
		e.Str(string(v))
	}
	e.ArrEnd()
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeTopic(e *jx.Encoder, t domain.Topic) {
	e.FieldStart("id")
	e.Str(t.ID.String())
	e.FieldStart("organizationId")
	e.Str(t.OrganizationID.String())
	e.FieldStart("environmentId")
	e.Str(t.EnvironmentID.String())
	e.FieldStart("key")
	e.Str(string(t.Key))
	e.FieldStart("name")
	e.Str(t.Name)
	e.FieldStart("createdAt")
	encodeTime(e, t.CreatedAt)
	e.FieldStart("updatedAt")
	if t.UpdatedAt.IsZero() {
		e.Null()
	} else {
		encodeTime(e, t.UpdatedAt)
	}
}
