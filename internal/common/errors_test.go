package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateUserIsValidationError(t *testing.T) {
	assert.True(t, errors.Is(ErrDuplicateUser, ErrValidation))
	assert.False(t, errors.Is(ErrValidation, ErrDuplicateUser))
}

func TestTaxonomyIsDistinct(t *testing.T) {
	kinds := []error{ErrValidation, ErrInvalidCredentials, ErrUserNotFound, ErrStorage, ErrMessageNotFound, ErrForbidden}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}
