package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// Result is the difference between two snapshots, by module.
type Result struct {
	// Added modules exist only in the newer snapshot.
	Added []string

	// Removed modules exist only in the older snapshot.
	Removed []string

	// Modified modules exist in both with different endpoints.
	Modified []ModifiedModule
}

// ModifiedModule is a module whose endpoints changed.
type ModifiedModule struct {
	Name string

	// Diff is the rendered dyff report.
	Diff string
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	if r.IsEmpty() {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Modified) > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", len(r.Modified)))
	}
	return strings.Join(parts, ", ")
}

// Diff compares old against current. Added and modified modules follow the
// order of current, removed modules the order of old.
func Diff(old, current *Snapshot, useColor bool) (*Result, error) {
	r := &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]ModifiedModule, 0),
	}

	for _, m := range current.Modules {
		before, ok := old.Module(m.Name)
		if !ok {
			r.Added = append(r.Added, m.Name)
			continue
		}
		if digestOf(before) == digestOf(m) {
			continue
		}
		diff, err := diffEndpoints(before.Endpoints, m.Endpoints, useColor)
		if err != nil {
			return nil, fmt.Errorf("comparing module %s: %w", m.Name, err)
		}
		if diff != "" {
			r.Modified = append(r.Modified, ModifiedModule{Name: m.Name, Diff: diff})
		}
	}
	for _, m := range old.Modules {
		if _, ok := current.Module(m.Name); !ok {
			r.Removed = append(r.Removed, m.Name)
		}
	}
	return r, nil
}

func diffEndpoints(before, after []Endpoint, useColor bool) (string, error) {
	before = sortedCopy(before)
	after = sortedCopy(after)
	beforeYAML, err := yaml.Marshal(map[string][]Endpoint{"endpoints": before})
	if err != nil {
		return "", err
	}
	afterYAML, err := yaml.Marshal(map[string][]Endpoint{"endpoints": after})
	if err != nil {
		return "", err
	}
	if bytes.Equal(beforeYAML, afterYAML) {
		return "", nil
	}
	return diffYAML(beforeYAML, afterYAML, useColor)
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(from, to []byte, useColor bool) (string, error) {
	fromInput, err := parseYAMLInput("snapshot", from)
	if err != nil {
		return "", fmt.Errorf("parsing snapshot YAML: %w", err)
	}
	toInput, err := parseYAMLInput("current", to)
	if err != nil {
		return "", fmt.Errorf("parsing current YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}
	return renderReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func sortedCopy(endpoints []Endpoint) []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	SortEndpoints(out)
	return out
}
