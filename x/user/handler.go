// Package user relays user record operations to the upstream service.
package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("user")

// Handler is the interface for handling HTTP requests
type Handler interface {
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

func (h handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "User.Handler.Get")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/users/" + c.Param("id"),
		Failure: "Failed to fetch user",
	})
}

func (h handler) Update(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "User.Handler.Update")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPatch,
		Path:        "/users/" + c.Param("id"),
		ForwardBody: true,
		Failure:     "Failed to update user",
	})
}

func (h handler) Delete(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "User.Handler.Delete")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/users/" + c.Param("id"),
		Failure: "Failed to delete user",
		Ack:     "User deleted successfully",
	})
}
