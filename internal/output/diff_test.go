package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff_NoChanges(t *testing.T) {
	assert.Equal(t, "No changes detected.\n", RenderDiff(nil, nil, nil, "No changes"))
}

func TestRenderDiff(t *testing.T) {
	out := stripAnsi(RenderDiff(
		[]string{"billing"},
		[]string{"legacy"},
		[]ModifiedItem{{Name: "orders", Diff: "endpoints\n\n  + one list entry added\n"}},
		"1 added, 1 removed, 1 modified",
	))

	assert.Contains(t, out, "Added:\n  + billing\n")
	assert.Contains(t, out, "Removed:\n  - legacy\n")
	assert.Contains(t, out, "Modified:\n  ~ orders\n    endpoints\n      + one list entry added\n")
	assert.True(t, strings.HasSuffix(out, "Summary: 1 added, 1 removed, 1 modified\n"))

	assert.Less(t, strings.Index(out, "Added:"), strings.Index(out, "Removed:"))
	assert.Less(t, strings.Index(out, "Removed:"), strings.Index(out, "Modified:"))
}

func TestIndentDiff(t *testing.T) {
	assert.Empty(t, IndentDiff("", "  "))
	assert.Equal(t, "  a\n  b\n", IndentDiff("a\n\n   \nb", "  "))
}
