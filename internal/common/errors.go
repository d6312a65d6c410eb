package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorAlreadyExists    = errors.New("already exists")
	ErrorInvalidReference = errors.New("invalid reference")

	// Service-level errors. Callers match them with errors.Is.
	ErrValidation         = errors.New("validation error")
	ErrDuplicateUser      = fmt.Errorf("%w: user already exists", ErrValidation)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrForbidden          = errors.New("forbidden")
	ErrStorage            = errors.New("storage error")

	// Token errors.
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrMissingSigningSecret = errors.New("signing secret is not configured")
)
