package core

// Paginated envelopes returned by the upstream list endpoints. Total is the
// full result count, not the page size; callers derive page math from it.

type CharactersResponse struct {
	Characters []Character `json:"characters"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
}

type CharacterResponse struct {
	Character Character `json:"character"`
}

type CharacterRolesResponse struct {
	Roles []CharacterRole `json:"roles"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type CharacterRoleResponse struct {
	Role CharacterRole `json:"role"`
}

type CharacterTagsResponse struct {
	Tags  []CharacterTag `json:"tags"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type CharacterTagResponse struct {
	Tag CharacterTag `json:"tag"`
}

type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	Limit         int            `json:"limit"`
}

type NotificationResponse struct {
	Notification Notification `json:"notification"`
}

type UserResponse struct {
	User User `json:"user"`
}

type ParticipantsResponse struct {
	Participants []Participant `json:"participants"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}

type ParticipantResponse struct {
	Participant Participant `json:"participant"`
}

// FavoriteCharactersResponse carries the favorited characters themselves, not
// the join records.
type FavoriteCharactersResponse struct {
	Characters []Character `json:"characters"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
}

// DeleteResponse is the acknowledgement shape for delete operations.
type DeleteResponse struct {
	Message string `json:"message"`
}
