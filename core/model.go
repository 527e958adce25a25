// Package core provides the entities exchanged with the upstream service of
// record. characterhub never owns persistence: these records are views over
// JSON payloads produced elsewhere.
package core

import (
	"time"
)

// Character is a user-authored persona with a role, description and tags.
type Character struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	RoleID      string         `json:"role_id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	TagIDs      []string       `json:"tag_ids,omitempty"`
	Role        *CharacterRole `json:"role,omitempty"`
	Tags        []CharacterTag `json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// CharacterRole is the single categorical archetype of a character.
type CharacterRole struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CharacterTag is a many-to-many label used for categorization and filtering.
type CharacterTag struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// FavoriteCharacter is the join record behind a user-scoped bookmark.
type FavoriteCharacter struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CharacterID string     `json:"character_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// User is an identity resolved from the external auth session.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	AccountType string     `json:"account_type"`
	IsAdmin     bool       `json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Notification is a user-scoped inbox entry.
type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Content   string     `json:"content"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Message is a single utterance inside a conversation.
type Message struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// Participant binds a character into a conversation.
type Participant struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
	CharacterID    string `json:"character_id"`
}

// Conversation groups participants and their messages.
type Conversation struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Participants []Participant `json:"participants,omitempty"`
	Messages     []Message     `json:"messages,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}
