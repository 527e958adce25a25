package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/characterhub/characterhub/client"
)

const (
	// CredentialCtxKey is where the resolved Credential lives on the echo
	// context after RequireSession has run.
	CredentialCtxKey = "credential"
)

// Service owns session resolution for inbound requests.
type Service struct {
	provider   CredentialProvider
	cookieName string
}

// NewService is for wire.go
func NewService(provider CredentialProvider, cookieName string) *Service {
	return &Service{provider: provider, cookieName: cookieName}
}

// RequireSession resolves the caller's session and stores the Credential on
// the context. Without a resolvable session the request is answered with 401
// before any upstream contact.
func (s *Service) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.RequireSession")
		defer span.End()

		sessionID := s.sessionReference(c)
		if sessionID == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		credential, err := s.provider.Resolve(ctx, sessionID)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
		}

		c.Set(CredentialCtxKey, credential)
		span.SetAttributes(attribute.String("UserID", credential.User.ID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// sessionReference pulls the session cookie, falling back to a bearer header
// for callers that already hold a session reference directly.
func (s *Service) sessionReference(c echo.Context) string {
	cookie, err := c.Cookie(s.cookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	split := strings.Split(authHeader, " ")
	if len(split) != 2 || split[0] != "Bearer" {
		return ""
	}
	return split[1]
}

// CredentialFromContext returns the Credential set by RequireSession.
func CredentialFromContext(c echo.Context) (Credential, bool) {
	credential, ok := c.Get(CredentialCtxKey).(Credential)
	return credential, ok
}

// TokenSource adapts a CredentialProvider plus a fixed session reference into
// a client.TokenSource, for the SDK-side components that issue their own
// upstream calls (explorer, library, forms).
type TokenSource struct {
	provider  CredentialProvider
	sessionID string
}

// NewTokenSource is for wire.go
func NewTokenSource(provider CredentialProvider, sessionID string) *TokenSource {
	return &TokenSource{provider: provider, sessionID: sessionID}
}

func (s *TokenSource) Token(ctx context.Context) (string, error) {
	credential, err := s.provider.Resolve(ctx, s.sessionID)
	if err != nil {
		return "", err
	}
	if credential.Token == "" {
		return "", client.ErrMissingToken
	}
	return credential.Token, nil
}
