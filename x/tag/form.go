package tag

import (
	"context"
	"strings"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/core"
	"github.com/characterhub/characterhub/x/auth"
	"github.com/characterhub/characterhub/x/policy"
)

// CreateForm is the inline tag creation dialog embedded in the character
// form, admin-gated like role creation.
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

func (f CreateForm) Submit(ctx context.Context, cli client.Client, credential auth.Credential) (core.CharacterTag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Form.Submit")
	defer span.End()

	if err := f.Validate(); err != nil {
		return core.CharacterTag{}, err
	}

	if !policy.Can(credential.User, policy.ActionCreateTag) {
		return core.CharacterTag{}, core.NewErrorPermissionDenied()
	}

	request := client.TagCreateRequest{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
	}

	tag, err := cli.CreateTag(ctx, credential.Token, request)
	if err != nil {
		span.RecordError(err)
		return core.CharacterTag{}, err
	}
	return tag, nil
}
