// Package notification relays notification CRUD to the upstream service.
package notification

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("notification")

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
	_, span := tracer.Start(c.Request().Context(), "Notification.Handler.List")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/notifications",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch notifications",
	})
}

func (h handler) Create(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Notification.Handler.Create")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPost,
		Path:        "/notifications",
		ForwardBody: true,
		Failure:     "Failed to create notification",
	})
}

func (h handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Notification.Handler.Get")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/notifications/" + c.Param("id"),
		Failure: "Failed to fetch notification",
	})
}

// Update relays marking a notification read or unread.
func (h handler) Update(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Notification.Handler.Update")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:      http.MethodPatch,
		Path:        "/notifications/" + c.Param("id"),
		ForwardBody: true,
		Failure:     "Failed to update notification",
	})
}

func (h handler) Delete(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Notification.Handler.Delete")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodDelete,
		Path:    "/notifications/" + c.Param("id"),
		Failure: "Failed to delete notification",
		Ack:     "Notification deleted successfully",
	})
}
