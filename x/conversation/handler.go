// Package conversation relays conversation participant operations. The
// participant add is the one proxied route with an inbound shape check:
// a missing participant_id is rejected before the upstream is contacted.
package conversation

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/x/proxy"
)

var tracer = otel.Tracer("conversation")

// Handler is the interface for handling HTTP requests
type Handler interface {
	ListParticipants(c echo.Context) error
	AddParticipant(c echo.Context) error
}

type participantAddRequest struct {
	ParticipantID string `json:"participant_id"`
}

type handler struct {
	forwarder *proxy.Forwarder
}

// NewHandler creates a new handler
func NewHandler(forwarder *proxy.Forwarder) Handler {
	return &handler{forwarder: forwarder}
}

func (h handler) ListParticipants(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Conversation.Handler.ListParticipants")
	defer span.End()

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodGet,
		Path:    "/conversations/" + c.Param("id") + "/participants",
		Query:   c.QueryParams(),
		Failure: "Failed to fetch participants",
	})
}

// AddParticipant validates that the body names a participant and forwards
// only that field upstream.
func (h handler) AddParticipant(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Conversation.Handler.AddParticipant")
	defer span.End()

	var request participantAddRequest
	err := c.Bind(&request)
	if err != nil || request.ParticipantID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing participant_id"})
	}

	body, err := json.Marshal(request)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error", "details": err.Error()})
	}

	return h.forwarder.Relay(c, proxy.Rule{
		Method:  http.MethodPost,
		Path:    "/conversations/" + c.Param("id") + "/participants",
		Body:    bytes.NewReader(body),
		Failure: "Failed to add participant",
	})
}
