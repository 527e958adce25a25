// Package proxy turns inbound API requests into verbatim upstream requests.
// It performs no business logic: session presence is the only gate, and the
// upstream's answer is relayed with its status code intact.
package proxy

import (
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/x/auth"
)

var tracer = otel.Tracer("proxy")

// Rule describes one relayed route: where it goes upstream and how failures
// are labelled for the caller.
type Rule struct {
	Method string
	Path   string
	Query  url.Values

	// ForwardBody streams the inbound JSON body to the upstream unchanged.
	ForwardBody bool

	// Body overrides the forwarded body when a handler has already consumed
	// and re-serialized the inbound payload. Takes precedence over ForwardBody.
	Body io.Reader

	// Failure is the error label attached when the upstream answers non-2xx,
	// e.g. "Failed to fetch character".
	Failure string

	// Ack, when set, replaces a successful upstream body with a plain
	// {"message": Ack} acknowledgement. Used by delete routes.
	Ack string
}

// Forwarder relays echo requests through the upstream client.
type Forwarder struct {
	client client.Client
}

// NewForwarder is for wire.go
func NewForwarder(client client.Client) *Forwarder {
	return &Forwarder{client: client}
}

// Relay forwards the request described by rule and writes the upstream's
// answer to the caller. The session middleware runs first; a missing
// credential here means the route was mounted without it, which is treated
// the same as an unauthenticated caller.
func (f *Forwarder) Relay(c echo.Context, rule Rule) error {
	ctx, span := tracer.Start(c.Request().Context(), "Proxy.Relay")
	defer span.End()

	credential, ok := auth.CredentialFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	var body io.Reader
	if rule.Body != nil {
		body = rule.Body
	} else if rule.ForwardBody {
		body = c.Request().Body
	}

	resp, err := f.client.Forward(ctx, credential.Token, rule.Method, rule.Path, rule.Query, body)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error", "details": err.Error()})
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error", "details": err.Error()})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.JSON(resp.StatusCode, echo.Map{"error": rule.Failure, "details": string(data)})
	}

	if rule.Ack != "" {
		return c.JSON(http.StatusOK, echo.Map{"message": rule.Ack})
	}

	return c.JSONBlob(resp.StatusCode, data)
}
