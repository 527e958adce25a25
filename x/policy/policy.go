// Package policy answers capability questions for UI affordances. It keeps
// the check independent of whatever form or dialog embeds it; enforcement
// proper lives upstream.
package policy

import (
	"github.com/characterhub/characterhub/core"
)

// Action is a capability-gated operation.
type Action int

const (
	ActionCreateCharacter Action = iota
	ActionDeleteCharacter
	ActionCreateRole
	ActionCreateTag
	ActionManageUsers
)

// Can reports whether user may perform action. Role and tag creation is an
// admin affordance embedded in the character creation flow; character
// creation itself only needs an authenticated identity.
func Can(user core.User, action Action) bool {
	switch action {
	case ActionCreateCharacter:
		return user.ID != ""
	case ActionCreateRole, ActionCreateTag, ActionManageUsers:
		return user.IsAdmin
	default:
		return false
	}
}

// CanModifyCharacter reports whether user may mutate or delete character.
// Owners always can; admins can regardless of ownership.
func CanModifyCharacter(user core.User, character core.Character) bool {
	if user.IsAdmin {
		return true
	}
	return user.ID != "" && user.ID == character.UserID
}
