package output

import (
	"strings"
)

// ModifiedItem is a changed entry with its pre-rendered diff.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders added, removed and modified entries followed by a
// summary line. It takes raw data so callers own the diff computation.
func RenderDiff(added, removed []string, modified []ModifiedItem, summary string) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 {
		return "No changes detected.\n"
	}

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(StyleAdded.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(StyleAdded.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(removed) > 0 {
		sb.WriteString(StyleRemoved.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(StyleRemoved.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(StyleModified.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(StyleModified.Render(mod.Name))
			sb.WriteString("\n")
			sb.WriteString(IndentDiff(mod.Diff, "    "))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(StyleSummary.Render("Summary: " + summary))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff prefixes each non-blank line of a diff report with indent.
func IndentDiff(diff, indent string) string {
	if diff == "" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
