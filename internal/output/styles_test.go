package output

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/restscope/cli/internal/route"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMethodStyle(t *testing.T) {
	tests := []struct {
		method   route.Method
		wantFG   lipgloss.TerminalColor
		wantDim  bool
		wantBold bool
	}{
		{method: route.MethodGet, wantFG: ColorGreen, wantBold: true},
		{method: route.MethodPost, wantFG: ColorBlue, wantBold: true},
		{method: route.MethodPut, wantFG: ColorYellow, wantBold: true},
		{method: route.MethodPatch, wantFG: ColorYellow, wantBold: true},
		{method: route.MethodDelete, wantFG: ColorRed, wantBold: true},
		{method: route.MethodHead, wantFG: ColorMagenta},
		{method: route.MethodAny, wantDim: true},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			style := MethodStyle(tt.method)
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
			assert.Equal(t, tt.wantDim, style.GetFaint())
			assert.Equal(t, tt.wantBold, style.GetBold())
		})
	}
}

func TestFormatMethod(t *testing.T) {
	assert.Equal(t, "GET", stripAnsi(FormatMethod(route.MethodGet)))
	assert.Equal(t, "ANY", stripAnsi(FormatMethod(route.MethodAny)))
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Config valid")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Config valid")
}

func TestFormatVetCheck(t *testing.T) {
	withDetail := stripAnsi(FormatVetCheck("Config file found", "~/.restscope/config.yaml"))
	assert.True(t, strings.HasPrefix(withDetail, "✔ Config file found"))
	assert.True(t, strings.HasSuffix(withDetail, "~/.restscope/config.yaml"))

	short := stripAnsi(FormatVetCheck("A", "x"))
	long := stripAnsi(FormatVetCheck("Config file found", "x"))
	assert.Equal(t, strings.Index(short, "x"), strings.Index(long, "x"), "details should align")

	assert.Equal(t, "✔ Schema valid", stripAnsi(FormatVetCheck("Schema valid", "")))
}
