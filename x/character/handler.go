// Package character relays character CRUD to the upstream service of record.
package character

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	AttachTag(c echo.Context) error
}

type handler struct {
	forwarder *proxy.Forwarder
}

// NewHandler creates a new handler
func NewHandler(forwarder *proxy.Forwarder) Handler {
	return &handler{forwarder: forwarder}
}

// List relays a character search. Query parameters (page, limit, name,
// repeated tag_ids) are forwarded verbatim; filtering happens upstream.
func (h handler) List(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.List")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch characters",
	})
}

// Create relays a character creation request.
func (h handler) Create(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/characters",
		ForwardBody: true,
		Failure:     "Failed to create character",
	})
}

// Get relays a single character fetch.
func (h handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.Get")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/" + c.Param("id"),
		Failure: "Failed to fetch character",
	})
}

// Update relays a partial character update.
func (h handler) Update(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPatch,
		Path:        "/characters/" + c.Param("id"),
		ForwardBody: true,
		Failure:     "Failed to update character",
	})
}

// Delete relays a character deletion. No existence pre-check: whatever the
// upstream reports is what the caller sees.
func (h handler) Delete(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/characters/" + c.Param("id"),
		Failure: "Failed to delete character",
		Ack:     "Character deleted successfully",
	})
}

// AttachTag relays attaching an existing tag to a character.
func (h handler) AttachTag(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Character.Handler.AttachTag")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/characters/" + c.Param("id") + "/tags",
		ForwardBody: true,
		Failure:     "Failed to add tag to character",
	})
}
