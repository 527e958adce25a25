// Package library serves the sidebar collections: the viewer's own
// characters, their favorites, and the public explore slice. Sibling lists
// often ask for the same data moments apart, so reads go through the keyed
// response cache.
package library

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/cache"
)

var tracer = otel.Tracer("library")

const (
	// sidebar lists show a short slice, matching the page the web client asks for
	sidebarLimit = 5

	listCacheTTL = 30 * time.Second
)

// Service is the sidebar list surface.
type Service interface {
	MyCharacters(ctx context.Context, token string, userID string) ([]core.Character, error)
	Favorites(ctx context.Context, token string, userID string) ([]core.Character, error)
	Explore(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error)

	AddFavorite(ctx context.Context, token string, userID string, characterID string) (core.Character, error)
	RemoveFavorite(ctx context.Context, token string, userID string, characterID string) error
	DeleteCharacter(ctx context.Context, token string, userID string, characterID string) error
}

type service struct {
	client client.Client
	cache  cache.Cache
}

// NewService creates the library service. NewService is for wire.go
func NewService(client client.Client, cache cache.Cache) Service {
	return &service{
		client: client,
		cache:  cache,
	}
}

func (s *service) MyCharacters(ctx context.Context, token string, userID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Library.MyCharacters")
	defer span.End()

	data, err := s.cache.Fetch(ctx, myCharactersKey(userID), listCacheTTL, func(ctx context.Context) ([]byte, error) {
		response, err := s.client.SearchCharacters(ctx, token, client.SearchQuery{
			UserID: userID,
			Limit:  sidebarLimit,
		})
		if err != nil {
			return nil, err
		}
		return json.Marshal(response)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var response core.CharactersResponse
	err = json.Unmarshal(data, &response)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to decode cached characters")
	}
	return response.Characters, nil
}

func (s *service) Favorites(ctx context.Context, token string, userID string) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Library.Favorites")
	defer span.End()

	data, err := s.cache.Fetch(ctx, favoritesKey(userID), listCacheTTL, func(ctx context.Context) ([]byte, error) {
		response, err := s.client.ListFavorites(ctx, token, client.SearchQuery{
			UserID: userID,
			Limit:  sidebarLimit,
		})
		if err != nil {
			return nil, err
		}
		return json.Marshal(response)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var response core.FavoriteCharactersResponse
	err = json.Unmarshal(data, &response)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to decode cached favorites")
	}
	return response.Characters, nil
}

// Explore is uncached: the discovery pipeline owns its own request lifecycle
// and a stale page would fight the sequence guard there.
func (s *service) Explore(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
	ctx, span := tracer.Start(ctx, "Library.Explore")
	defer span.End()

	return s.client.SearchCharacters(ctx, token, query)
}

func (s *service) AddFavorite(ctx context.Context, token string, userID string, characterID string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Library.AddFavorite")
	defer span.End()

	character, err := s.client.AddFavorite(ctx, token, userID, characterID)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	s.cache.Invalidate(ctx, favoritesKey(userID))
	return character, nil
}

func (s *service) RemoveFavorite(ctx context.Context, token string, userID string, characterID string) error {
	ctx, span := tracer.Start(ctx, "Library.RemoveFavorite")
	defer span.End()

	err := s.client.RemoveFavorite(ctx, token, characterID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	s.cache.Invalidate(ctx, favoritesKey(userID))
	return nil
}

func (s *service) DeleteCharacter(ctx context.Context, token string, userID string, characterID string) error {
	ctx, span := tracer.Start(ctx, "Library.DeleteCharacter")
	defer span.End()

	err := s.client.DeleteCharacter(ctx, token, characterID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	// the character may appear in both lists
	s.cache.Invalidate(ctx, myCharactersKey(userID), favoritesKey(userID))
	return nil
}

// FilterByName narrows a fetched list by case-insensitive substring match,
// the same local refinement the sidebar search box applies.
func FilterByName(characters []core.Character, query string) []core.Character {
	if query == "" {
		return characters
	}
	needle := strings.ToLower(query)

	filtered := make([]core.Character, 0, len(characters))
	for _, character := range characters {
		if strings.Contains(strings.ToLower(character.Name), needle) {
			filtered = append(filtered, character)
		}
	}
	return filtered
}

func myCharactersKey(userID string) string {
	return "library:characters:" + userID
}

func favoritesKey(userID string) string {
	return "library:favorites:" + userID
}
