// Package tag relays character tag CRUD to the upstream service of record.
package tag

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("tag")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	forwarder *proxy.Forwarder
}

// NewHandler creates a new handler
func NewHandler(forwarder *proxy.Forwarder) Handler {
	return &handler{forwarder: forwarder}
}

func (h handler) List(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Tag.Handler.List")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/tags",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch tags",
	})
}

func (h handler) Create(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Tag.Handler.Create")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/characters/tags",
		ForwardBody: true,
		Failure:     "Failed to create tag",
	})
}

func (h handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Tag.Handler.Get")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/tags/" + c.Param("id"),
		Failure: "Failed to fetch tag",
	})
}

func (h handler) Update(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Tag.Handler.Update")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPatch,
		Path:        "/characters/tags/" + c.Param("id"),
		ForwardBody: true,
		Failure:     "Failed to update tag",
	})
}

func (h handler) Delete(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Tag.Handler.Delete")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/characters/tags/" + c.Param("id"),
		Failure: "Failed to delete tag",
		Ack:     "Tag deleted successfully",
	})
}
