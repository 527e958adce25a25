//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/time/rate"

	"github.com/characterhub/characterhub/core"
)

const (
	defaultTimeout = 10 * time.Second

	// Upstream burst allowance. The proxy is a thin relay; the limiter only
	// guards against a misbehaving caller hammering the service of record.
	outboundRate  = 50
	outboundBurst = 100
)

var tracer = otel.Tracer("client")

var upstreamRequestMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chapi_upstream_requests",
		Help: "upstream requests",
	},
	[]string{"method", "status"},
)

func init() {
	prometheus.MustRegister(upstreamRequestMetrics)
}

// SearchQuery is the character discovery query. TagIDs are encoded as one
// repeated tag_ids parameter per tag: the upstream treats a comma-joined list
// as a single unknown ID.
type SearchQuery struct {
	Page   int
	Limit  int
	Name   string
	UserID string
	TagIDs []string
}

// Values encodes the query for the upstream /characters endpoint.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.UserID != "" {
		values.Set("user_id", q.UserID)
	}
	if q.Name != "" {
		values.Set("name", q.Name)
	}
	for _, id := range q.TagIDs {
		values.Add("tag_ids", id)
	}
	return values
}

// Client is the typed surface over the upstream API. Every call carries the
// caller's bearer token explicitly; there is no ambient credential.
type Client interface {
	Forward(ctx context.Context, token string, method string, path string, query url.Values, body io.Reader) (*http.Response, error)

	SearchCharacters(ctx context.Context, token string, query SearchQuery) (core.CharactersResponse, error)
	GetCharacter(ctx context.Context, token string, id string) (core.Character, error)
	CreateCharacter(ctx context.Context, token string, request CharacterCreateRequest) (core.Character, error)
	UpdateCharacter(ctx context.Context, token string, id string, request CharacterUpdateRequest) (core.Character, error)
	DeleteCharacter(ctx context.Context, token string, id string) error

	ListRoles(ctx context.Context, token string) (core.CharacterRolesResponse, error)
	CreateRole(ctx context.Context, token string, request RoleCreateRequest) (core.CharacterRole, error)
	ListTags(ctx context.Context, token string) (core.CharacterTagsResponse, error)
	CreateTag(ctx context.Context, token string, request TagCreateRequest) (core.CharacterTag, error)

	ListFavorites(ctx context.Context, token string, query SearchQuery) (core.FavoriteCharactersResponse, error)
	AddFavorite(ctx context.Context, token string, userID string, characterID string) (core.Character, error)
	RemoveFavorite(ctx context.Context, token string, characterID string) error

	GetUser(ctx context.Context, token string, id string) (core.User, error)
}

type CharacterCreateRequest struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RoleID      string   `json:"role_id"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

type CharacterUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	RoleID      *string  `json:"role_id,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

type RoleCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TagCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type favoriteCreateRequest struct {
	UserID      string `json:"user_id"`
	CharacterID string `json:"character_id"`
}

type client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client for the upstream base URL.
func NewClient(baseURL string) Client {
	return &client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: rate.NewLimiter(rate.Limit(outboundRate), outboundBurst),
	}
}

// Forward issues a verbatim upstream request with the bearer token attached
// and fresh-fetch caching semantics. The caller owns the response body.
func (c *client) Forward(ctx context.Context, token string, method string, path string, query url.Values, body io.Reader) (*http.Response, error) {
	ctx, span := tracer.Start(ctx, "Client.Forward")
	defer span.End()

	if err := c.limiter.Wait(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Cache-Control", "no-store")

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	upstreamRequestMetrics.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	return resp, nil
}

// do runs a request and decodes the JSON payload into out. Non-2xx statuses
// become core.ErrorUpstream with the raw body text attached.
func (c *client) do(ctx context.Context, token string, method string, path string, query url.Values, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.Forward(ctx, token, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read upstream response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return core.NewErrorUpstream(resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(data, out)
	if err != nil {
		return errors.Wrap(err, "failed to decode upstream response")
	}

	return nil
}

func (c *client) SearchCharacters(ctx context.Context, token string, query SearchQuery) (core.CharactersResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.SearchCharacters")
	defer span.End()

	var response core.CharactersResponse
	err := c.do(ctx, token, http.MethodGet, "/characters", query.Values(), nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.CharactersResponse{}, err
	}
	return response, nil
}

func (c *client) GetCharacter(ctx context.Context, token string, id string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Client.GetCharacter")
	defer span.End()

	var response core.CharacterResponse
	err := c.do(ctx, token, http.MethodGet, "/characters/"+id, nil, nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	return response.Character, nil
}

func (c *client) CreateCharacter(ctx context.Context, token string, request CharacterCreateRequest) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateCharacter")
	defer span.End()

	var response core.CharacterResponse
	err := c.do(ctx, token, http.MethodPost, "/characters", nil, request, &response)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	return response.Character, nil
}

func (c *client) UpdateCharacter(ctx context.Context, token string, id string, request CharacterUpdateRequest) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Client.UpdateCharacter")
	defer span.End()

	var response core.CharacterResponse
	err := c.do(ctx, token, http.MethodPatch, "/characters/"+id, nil, request, &response)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	return response.Character, nil
}

func (c *client) DeleteCharacter(ctx context.Context, token string, id string) error {
	ctx, span := tracer.Start(ctx, "Client.DeleteCharacter")
	defer span.End()

	err := c.do(ctx, token, http.MethodDelete, "/characters/"+id, nil, nil, nil)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) ListRoles(ctx context.Context, token string) (core.CharacterRolesResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.ListRoles")
	defer span.End()

	var response core.CharacterRolesResponse
	err := c.do(ctx, token, http.MethodGet, "/characters/roles", nil, nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.CharacterRolesResponse{}, err
	}
	return response, nil
}

func (c *client) CreateRole(ctx context.Context, token string, request RoleCreateRequest) (core.CharacterRole, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateRole")
	defer span.End()

	var response core.CharacterRoleResponse
	err := c.do(ctx, token, http.MethodPost, "/characters/roles", nil, request, &response)
	if err != nil {
		span.RecordError(err)
		return core.CharacterRole{}, err
	}
	return response.Role, nil
}

func (c *client) ListTags(ctx context.Context, token string) (core.CharacterTagsResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.ListTags")
	defer span.End()

	var response core.CharacterTagsResponse
	err := c.do(ctx, token, http.MethodGet, "/characters/tags", nil, nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.CharacterTagsResponse{}, err
	}
	return response, nil
}

func (c *client) CreateTag(ctx context.Context, token string, request TagCreateRequest) (core.CharacterTag, error) {
	ctx, span := tracer.Start(ctx, "Client.CreateTag")
	defer span.End()

	var response core.CharacterTagResponse
	err := c.do(ctx, token, http.MethodPost, "/characters/tags", nil, request, &response)
	if err != nil {
		span.RecordError(err)
		return core.CharacterTag{}, err
	}
	return response.Tag, nil
}

func (c *client) ListFavorites(ctx context.Context, token string, query SearchQuery) (core.FavoriteCharactersResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.ListFavorites")
	defer span.End()

	var response core.FavoriteCharactersResponse
	err := c.do(ctx, token, http.MethodGet, "/characters/favorites", query.Values(), nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.FavoriteCharactersResponse{}, err
	}
	return response, nil
}

func (c *client) AddFavorite(ctx context.Context, token string, userID string, characterID string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Client.AddFavorite")
	defer span.End()

	request := favoriteCreateRequest{UserID: userID, CharacterID: characterID}
	var response core.CharacterResponse
	err := c.do(ctx, token, http.MethodPost, "/favorites", nil, request, &response)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	return response.Character, nil
}

func (c *client) RemoveFavorite(ctx context.Context, token string, characterID string) error {
	ctx, span := tracer.Start(ctx, "Client.RemoveFavorite")
	defer span.End()

	err := c.do(ctx, token, http.MethodDelete, "/favorites/"+characterID, nil, nil, nil)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) GetUser(ctx context.Context, token string, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "Client.GetUser")
	defer span.End()

	var response core.UserResponse
	err := c.do(ctx, token, http.MethodGet, "/users/"+id, nil, nil, &response)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}
	return response.User, nil
}

// ErrMissingToken is returned by token sources that cannot produce a
// credential for the current caller.
var ErrMissingToken = fmt.Errorf("no bearer token available")

// TokenSource yields the bearer token for outgoing calls. Implementations
// resolve it from a session store; tests use a fixed string.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token forever.
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", ErrMissingToken
	}
	return string(s), nil
}
