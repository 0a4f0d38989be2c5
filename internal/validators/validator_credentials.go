package validators

import (
	"context"
	"fmt"

	"github.com/zerovault/zero-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the email field of a credentials payload.
	FieldEmail = "email"

	// FieldPassword targets the password field of a credentials payload.
	FieldPassword = "password"
)

// CredentialsValidator validates registration and login payloads.
// The email is treated as an opaque login identifier, so the only
// structural requirement on both fields is presence.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.CredentialsRequest, fields ...string) error {
	// no scoping means every field is checked
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if credentials.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
