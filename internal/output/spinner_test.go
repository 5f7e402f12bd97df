package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests run without a terminal on stdout, so the action runs directly.
func TestRunWithSpinner_NoTTY(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Scanning..."))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_ActionError(t *testing.T) {
	boom := errors.New("boom")
	err := RunWithSpinner(context.Background(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
}
