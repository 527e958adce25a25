package role

import (
	"context"
	"strings"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
	"github.com/characterhub/characterhub/x/policy"
)

// CreateForm is the inline role creation dialog embedded in the character
// form. Only admins see the affordance; the capability check is repeated
// here so the form stays safe outside that dialog.
type CreateForm struct {
	Name        string
	Description string
}

func (f CreateForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 2 {
		return core.NewErrorInvalidInput("name", "must be at least 2 characters")
	}
	return nil
}

func (f CreateForm) Submit(ctx context.Context, cli client.Client, credential auth.Credential) (core.CharacterRole, error) {
	ctx, span := tracer.Start(ctx, "Role.Form.Submit")
	defer span.End()

	if err := f.Validate(); err != nil {
		return core.CharacterRole{}, err
	}

	if !policy.Can(credential.User, policy.ActionCreateRole) {
		return core.CharacterRole{}, core.NewErrorPermissionDenied()
	}

	request := client.RoleCreateRequest{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
	}

	role, err := cli.CreateRole(ctx, credential.Token, request)
	if err != nil {
		span.RecordError(err)
		return core.CharacterRole{}, err
	}
	return role, nil
}
