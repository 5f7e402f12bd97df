package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/restscope/cli/internal/route"
)

// Color palette. Every colour used by the CLI is named here.
var (
	// ColorCyan is used for identifiable nouns: module names, URLs, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for GET and for additions.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for PUT and PATCH and for modifications.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is used for POST and for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorRed is used for DELETE and for removals.
	ColorRed = lipgloss.Color("196")

	// ColorMagenta is used for verbs without a dedicated colour.
	ColorMagenta = lipgloss.Color("177")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (module names, URLs).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, handler names, sources).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleAdded, StyleRemoved and StyleModified style diff sections.
	StyleAdded    = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRemoved  = lipgloss.NewStyle().Foreground(ColorRed)
	StyleModified = lipgloss.NewStyle().Foreground(ColorYellow)
)

// MethodStyle returns the style for an HTTP method. Methods accepting any
// verb are rendered faint.
func MethodStyle(m route.Method) lipgloss.Style {
	switch m {
	case route.MethodGet:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case route.MethodPost:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	case route.MethodPut, route.MethodPatch:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	case route.MethodDelete:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	case route.MethodAny:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorMagenta)
	}
}

// FormatMethod renders an HTTP method in its colour.
func FormatMethod(m route.Method) string {
	return MethodStyle(m).Render(m.String())
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// vetLabelWidth aligns the detail column of vet check lines.
const vetLabelWidth = 34

// FormatVetCheck renders a passed check line with an optional right-hand
// detail, e.g. "✔ Config file found    ~/.restscope/config.yaml".
func FormatVetCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := vetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}
