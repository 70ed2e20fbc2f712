// Package v1handler implements the v1 HTTP API: topic creation and lookup,
// subscriber enrollment, bearer authentication and error rendering.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"topics/internal/enrollment"
	"topics/pkg/logger"
	"topics/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers depend on.
type Deps struct {
	Enroller enrollment.Enroller
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on r. Authentication is expected to be applied
// by the caller.
func (h *Handler) Register(r chi.Router) {
	r.Post("/topics", h.CreateTopic)
	r.Get("/topics/{key}", h.GetTopic)
	r.Post("/topics/{key}/subscribers", h.EnrollSubscribers)
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an ErrorBody with the HTTP status it is sent with.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatus = map[serrors.Kind]int{
	serrors.ErrBadRequest:           http.StatusBadRequest,
	serrors.ErrUnauthorized:         http.StatusUnauthorized,
	serrors.ErrForbidden:            http.StatusForbidden,
	serrors.ErrNotFound:             http.StatusNotFound,
	serrors.ErrConflict:             http.StatusConflict,
	serrors.ErrRateLimited:          http.StatusTooManyRequests,
	serrors.ErrTimeout:              http.StatusGatewayTimeout,
	serrors.ErrUnavailable:          http.StatusServiceUnavailable,
	serrors.ErrInternal:             http.StatusInternalServerError,
	enrollment.ErrDirectoryLookup:   http.StatusBadGateway,
	enrollment.ErrTopicProvisioning: http.StatusInternalServerError,
	enrollment.ErrLinkWrite:         http.StatusInternalServerError,
}

var kindMessage = map[serrors.Kind]string{
	serrors.ErrBadRequest:           "bad request",
	serrors.ErrUnauthorized:         "unauthorized",
	serrors.ErrForbidden:            "forbidden",
	serrors.ErrNotFound:             "resource not found",
	serrors.ErrConflict:             "resource already exists",
	serrors.ErrRateLimited:          "too many requests",
	serrors.ErrTimeout:              "request timed out",
	serrors.ErrUnavailable:          "service unavailable",
	serrors.ErrInternal:             "internal error",
	enrollment.ErrDirectoryLookup:   "subscriber directory is unavailable",
	enrollment.ErrTopicProvisioning: "could not provision topic",
	enrollment.ErrLinkWrite:         "could not enroll subscribers",
}

// NewError maps err to an ErrorResponse. The status is chosen by the semantic
// kind carried by err; errors without a kind are internal errors. Messages of
// server side failures are never exposed to the client.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newErrorResponse(ctx, err)
}

func newErrorResponse(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	// a rate limited directory is reported as such so clients know to retry later
	if errors.Is(err, serrors.ErrRateLimited) {
		kind = serrors.ErrRateLimited
	}
	status, ok := kindStatus[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}

	message := kindMessage[kind]
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.Int("status", status))
	} else {
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			message = se.Message()
		}
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", status))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newErrorResponse(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(res.Response.Code)
		e.FieldStart("message")
		e.Str(res.Response.Message)
		e.ObjEnd()
	})
}
