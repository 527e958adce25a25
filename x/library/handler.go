package library

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	MyCharacters(c echo.Context) error
	Favorites(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// MyCharacters serves the caller's own characters for the sidebar, cached
// and optionally narrowed by ?name=.
func (h handler) MyCharacters(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Library.Handler.MyCharacters")
	defer span.End()

	credential, ok := auth.CredentialFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	characters, err := h.service.MyCharacters(ctx, credential.Token, credential.User.ID)
	if err != nil {
		span.RecordError(err)
		return listError(c, "Failed to fetch characters", err)
	}

	characters = FilterByName(characters, c.QueryParam("name"))
	return c.JSON(http.StatusOK, core.CharactersResponse{
		Characters: characters,
		Total:      len(characters),
		Page:       1,
		Limit:      sidebarLimit,
	})
}

// Favorites serves the caller's favorited characters for the sidebar.
func (h handler) Favorites(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Library.Handler.Favorites")
	defer span.End()

	credential, ok := auth.CredentialFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	characters, err := h.service.Favorites(ctx, credential.Token, credential.User.ID)
	if err != nil {
		span.RecordError(err)
		return listError(c, "Failed to fetch favorite characters", err)
	}

	characters = FilterByName(characters, c.QueryParam("name"))
	return c.JSON(http.StatusOK, core.CharactersResponse{
		Characters: characters,
		Total:      len(characters),
		Page:       1,
		Limit:      sidebarLimit,
	})
}

// listError relays an upstream verdict with its status intact; anything else
// is an internal failure.
func listError(c echo.Context, label string, err error) error {
	var upstream core.ErrorUpstream
	if errors.As(err, &upstream) {
		return c.JSON(upstream.Status, echo.Map{"error": label, "details": upstream.Details})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error", "details": err.Error()})
}
