package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/characterhub/characterhub/core"
)

const providerTimeout = 3 * time.Second

// httpProvider asks the external auth provider to verify a session. The
// provider's endpoint takes the session reference as a bearer and answers
// with the access token and the resolved user.
type httpProvider struct {
	baseURL string
	http    *http.Client
}

// NewHTTPProvider creates a CredentialProvider backed by the external auth
// service configured in config.Auth.ProviderURL.
func NewHTTPProvider(config core.Config) CredentialProvider {
	return &httpProvider{
		baseURL: config.Auth.ProviderURL,
		http: &http.Client{
			Timeout:   providerTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (p *httpProvider) Resolve(ctx context.Context, sessionID string) (Credential, error) {
	ctx, span := tracer.Start(ctx, "Auth.Provider.Resolve")
	defer span.End()

	if sessionID == "" {
		return Credential{}, core.NewErrorUnauthorized()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/session", nil)
	if err != nil {
		span.RecordError(err)
		return Credential{}, errors.Wrap(err, "failed to build session request")
	}
	req.Header.Set("Authorization", "Bearer "+sessionID)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := p.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return Credential{}, errors.Wrap(err, "failed to reach auth provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Credential{}, core.NewErrorUnauthorized()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return Credential{}, errors.Wrap(err, "failed to read auth provider response")
	}

	var session sessionPayload
	err = json.Unmarshal(body, &session)
	if err != nil {
		span.RecordError(err)
		return Credential{}, errors.Wrap(err, "failed to decode auth provider response")
	}

	if session.AccessToken == "" {
		return Credential{}, core.NewErrorUnauthorized()
	}

	return Credential{Token: session.AccessToken, User: session.User}, nil
}
