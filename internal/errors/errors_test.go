//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrNotFound, ErrPermission)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "/home/dev/.restscope/config.yaml",
		Field:    "scan.workers",
		Context:  map[string]string{"Value": "0", "Allowed": "1-64"},
		Hint:     "Set scan.workers between 1 and 64",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /home/dev/.restscope/config.yaml")
	assert.Contains(t, output, "Field: scan.workers")
	assert.Contains(t, output, "  Allowed: 1-64\n  Value: 0\n")
	assert.Contains(t, output, "invalid value")
	assert.Contains(t, output, "Hint: Set scan.workers between 1 and 64")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid value", "config.yaml", "output", "Use table, yaml or json")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "output", detail.Field)
	assert.Equal(t, "Use table, yaml or json", detail.Hint)
}

func TestConstructorsCarrySentinels(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("project not found", "/nope", ""), ErrNotFound)
	assert.ErrorIs(t, NewPermissionError("cannot read", "/root", ""), ErrPermission)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "config check failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "config check failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"validation", Wrap(ErrValidation, "bad"), ExitValidationError},
		{"permission", fmt.Errorf("reading: %w", ErrPermission), ExitPermissionDenied},
		{"not found detail", NewNotFoundError("missing", "", ""), ExitNotFound},
		{"explicit exit error", NewExitError(ErrNotFound, ExitGeneralError), ExitGeneralError},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: ExitValidationError}), ExitValidationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Err: ErrNotFound, Code: ExitNotFound, Printed: true}
	assert.Equal(t, "not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, "Validation Error", (&ExitError{Code: ExitValidationError}).Error())
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
