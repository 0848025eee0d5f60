package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := ValidationError("first name cannot be blank")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "first name cannot be blank", err.Error())
}

func TestValidationErrorDoesNotMatchOtherSentinels(t *testing.T) {
	err := ValidationError("anything")

	assert.False(t, errors.Is(err, ErrMemberNotFound))
	assert.False(t, errors.Is(ErrMemberNotFound, ErrValidation))
}
