// Package favorite relays favorite bookmark operations to the upstream.
package favorite

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("favorite")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Add(c echo.Context) error
	Remove(c echo.Context) error
}

type handler struct {
	forwarder *proxy.Forwarder
}

// NewHandler creates a new handler
func NewHandler(forwarder *proxy.Forwarder) Handler {
	return &handler{forwarder: forwarder}
}

// List relays the caller's favorited characters.
func (h handler) List(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Favorite.Handler.List")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/favorites",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch favorite characters",
	})
}

// Add relays creating a favorite bookmark.
func (h handler) Add(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Favorite.Handler.Add")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/favorites",
		ForwardBody: true,
		Failure:     "Failed to add to favorites",
	})
}

// Remove relays deleting the bookmark for a character. The character itself
// is untouched.
func (h handler) Remove(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Favorite.Handler.Remove")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/favorites/" + c.Param("characterID"),
		Failure: "Failed to remove from favorites",
		Ack:     "Favorite removed successfully",
	})
}
