// Package auth resolves opaque session references into upstream credentials.
// Authentication itself lives in an external provider; this package only
// implements the propagation pattern: cookie -> token -> outgoing request.
package auth

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/core"
)

var tracer = otel.Tracer("auth")

// Credential is a resolved session: the bearer token for upstream calls plus
// the identity it belongs to.
type Credential struct {
	Token string    `json:"token"`
	User  core.User `json:"user"`
}

// CredentialProvider resolves a session reference (typically a cookie value)
// into a Credential. A failed resolution means the caller is unauthenticated.
type CredentialProvider interface {
	Resolve(ctx context.Context, sessionID string) (Credential, error)
}

// sessionPayload is the external auth provider's session verification shape.
type sessionPayload struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        core.User `json:"user"`
}
