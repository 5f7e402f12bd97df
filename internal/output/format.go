package output

import "strings"

// Format specifies how command results are printed.
type Format string

const (
	// FormatTable prints a styled table.
	FormatTable Format = "table"

	// FormatYAML prints a YAML document.
	FormatYAML Format = "yaml"

	// FormatJSON prints an indented JSON document.
	FormatJSON Format = "json"

	// FormatTree prints a module tree.
	FormatTree Format = "tree"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON, FormatTree:
		return true
	default:
		return false
	}
}

// IsStructured reports whether the format is a machine-readable document.
func (f Format) IsStructured() bool {
	return f == FormatYAML || f == FormatJSON
}

// ParseFormat parses a string into a Format. The second result is false when
// the string names no known format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	case "tree":
		return FormatTree, true
	default:
		return FormatTable, false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "yaml", "json", "tree"}
}
