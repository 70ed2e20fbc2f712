package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"topics/internal/config"
	"topics/pkg/domain"
	"topics/pkg/logger"
	"topics/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// ScopeKey is the context key under which the authenticated tenant scope is stored.
const ScopeKey contextKey = "scope"

// Claims are the JWT claims accepted by the API. The organization and
// environment claims form the tenant scope of every request.
type Claims struct {
	jwt.RegisteredClaims

	OrganizationID string `json:"org"`
	EnvironmentID  string `json:"env"`
}

// SecHandlerOptions configures the bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests carrying RS256 signed bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies token and returns a context carrying the tenant
// scope found in its claims.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	orgID, err := uuid.Parse(claims.OrganizationID)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid organization claim")
	}
	envID, err := uuid.Parse(claims.EnvironmentID)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid environment claim")
	}
	scope := domain.Scope{
		OrganizationID: domain.OrganizationID(orgID),
		EnvironmentID:  domain.EnvironmentID(envID),
	}
	if scope.IsZero() {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no tenant scope")
	}

	return WithScope(ctx, scope), nil
}

// Middleware rejects requests without a valid bearer token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "bearer token is required"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithScope returns a copy of ctx carrying scope, also attaching it to the
// context logger.
func WithScope(ctx context.Context, scope domain.Scope) context.Context {
	ctx = logger.WithScope(ctx, scope)

	return context.WithValue(ctx, ScopeKey, scope)
}

// GetScopeFromContext returns the authenticated tenant scope stored in ctx.
func GetScopeFromContext(ctx context.Context) (domain.Scope, bool) {
	scope, ok := ctx.Value(ScopeKey).(domain.Scope)

	return scope, ok
}
