// Package role relays character role CRUD to the upstream service of record.
package role

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("role")

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
	_, span := tracer.Start(c.Request().Context(), "Role.Handler.List")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/roles",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch roles",
	})
}

func (h handler) Create(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Role.Handler.Create")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/characters/roles",
		ForwardBody: true,
		Failure:     "Failed to create role",
	})
}

func (h handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Role.Handler.Get")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/characters/roles/" + c.Param("id"),
		Failure: "Failed to fetch role",
	})
}

func (h handler) Update(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Role.Handler.Update")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPatch,
		Path:        "/characters/roles/" + c.Param("id"),
		ForwardBody: true,
		Failure:     "Failed to update role",
	})
}

func (h handler) Delete(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Role.Handler.Delete")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/characters/roles/" + c.Param("id"),
		Failure: "Failed to delete role",
		Ack:     "Role deleted successfully",
	})
}
