package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restscope/cli/internal/cmdtypes"
)

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "restscope version "))
	assert.Contains(t, out, "Go:")

	out, err = run(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"goVersion"`)
}
