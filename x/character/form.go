package character

import (
	"context"
	"strings"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
	"github.com/characterhub/characterhub/x/policy"
)

// CreateForm is the character creation form. Validation mirrors the shape
// checks the UI runs before submitting; the upstream's own field errors are
// surfaced as one opaque string, never mapped back per-field.
type CreateForm struct {
	Name        string
	Description string
	RoleID      string
	TagIDs      []string
}

// Validate checks the form shape locally.
func (f CreateForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return core.NewErrorInvalidInput("name", "must be at least 2 characters")
	}
	if f.RoleID == "" {
		return core.NewErrorInvalidInput("role_id", "a role is required")
	}
	if len(strings.TrimSpace(f.Description)) < 10 {
		return core.NewErrorInvalidInput("description", "must be at least 10 characters")
	}
	if len(f.TagIDs) == 0 {
		return core.NewErrorInvalidInput("tag_ids", "select at least one tag")
	}
	return nil
}

// Submit validates the form, checks the caller's capability and creates the
// character as the credentialed user.
func (f CreateForm) Submit(ctx context.Context, cli client.Client, credential auth.Credential) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Form.Submit")
	defer span.End()

	if err := f.Validate(); err != nil {
		return core.Character{}, err
	}

	if !policy.Can(credential.User, policy.ActionCreateCharacter) {
		return core.Character{}, core.NewErrorPermissionDenied()
	}

	request := client.CharacterCreateRequest{
		UserID:      credential.User.ID,
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		RoleID:      f.RoleID,
		TagIDs:      f.TagIDs,
	}

	character, err := cli.CreateCharacter(ctx, credential.Token, request)
	if err != nil {
		span.RecordError(err)
		return core.Character{}, err
	}
	return character, nil
}
