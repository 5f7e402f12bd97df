// Package snapshot saves endpoint catalogs as YAML and compares two of them.
package snapshot

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/restscope/cli/internal/catalog"
	oerrors "github.com/restscope/cli/internal/errors"
)

// Snapshot is the serialisable form of a catalog.
type Snapshot struct {
	Project string           `json:"project,omitempty"`
	Modules []ModuleSnapshot `json:"modules"`
}

// ModuleSnapshot holds one module's endpoints.
type ModuleSnapshot struct {
	Name      string     `json:"name"`
	Digest    string     `json:"digest,omitempty"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Endpoint is the part of an endpoint that is compared between snapshots.
type Endpoint struct {
	Method  string `json:"method"`
	URL     string `json:"url"`
	Handler string `json:"handler"`
}

// FromCatalog captures cat in module order.
func FromCatalog(project string, cat *catalog.Catalog) *Snapshot {
	s := &Snapshot{Project: project, Modules: make([]ModuleSnapshot, 0, cat.Len())}
	for _, m := range cat.Entries() {
		ms := ModuleSnapshot{Name: m.Name, Endpoints: make([]Endpoint, 0, len(m.Endpoints))}
		for _, e := range m.Endpoints {
			ms.Endpoints = append(ms.Endpoints, Endpoint{
				Method:  e.Method.String(),
				URL:     e.URL,
				Handler: e.Handler,
			})
		}
		ms.Digest = Digest(ms.Endpoints)
		s.Modules = append(s.Modules, ms)
	}
	return s
}

// Module returns the named module and whether it exists.
func (s *Snapshot) Module(name string) (ModuleSnapshot, bool) {
	for _, m := range s.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return ModuleSnapshot{}, false
}

// Marshal renders the snapshot as YAML.
func (s *Snapshot) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return out, nil
}

// Parse decodes a snapshot from YAML or JSON. Unknown fields are rejected.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, oerrors.NewNotFoundError("snapshot file does not exist", path,
			"Create one with: restscope scan -o yaml > "+path)
	case os.IsPermission(err):
		return nil, oerrors.NewPermissionError("snapshot file is not readable", path, "")
	case err != nil:
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("invalid snapshot: %v", err),
			Location: path,
			Hint:     "Snapshots are produced by: restscope scan -o yaml",
			Cause:    oerrors.ErrValidation,
		}
	}
	return s, nil
}
