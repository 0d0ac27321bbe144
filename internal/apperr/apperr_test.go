package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("Skill Not Found!", 404)
	assert.Equal(t, "Skill Not Found!", err.Error())
	assert.Equal(t, 404, err.StatusCode)
}

func TestInvalidField(t *testing.T) {
	err := InvalidField("Project ID")
	assert.Equal(t, "Invalid Project ID", err.Message)
	assert.Equal(t, 400, err.StatusCode)
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("delete project: %w", New("Project Not Found!", 404))

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, 404, appErr.StatusCode)
}
