package core

import (
	"fmt"
)

type ErrorUnauthorized struct {
}

func (e ErrorUnauthorized) Error() string {
	return "Unauthorized"
}

func NewErrorUnauthorized() ErrorUnauthorized {
	return ErrorUnauthorized{}
}

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

// ErrorUpstream carries a non-2xx upstream status and the raw body text so the
// proxy layer can relay both without interpretation.
type ErrorUpstream struct {
	Status  int
	Details string
}

func (e ErrorUpstream) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Details)
}

func NewErrorUpstream(status int, details string) ErrorUpstream {
	return ErrorUpstream{Status: status, Details: details}
}

type ErrorInvalidInput struct {
	Field  string
	Reason string
}

func (e ErrorInvalidInput) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewErrorInvalidInput(field string, reason string) ErrorInvalidInput {
	return ErrorInvalidInput{Field: field, Reason: reason}
}
