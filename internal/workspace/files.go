package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"

	"github.com/restscope/cli/internal/host"
)

// File is a file found in a scope.
type File struct {
	path string
}

// Path implements host.File.
func (f File) Path() string { return f.path }

// FindFilesByName implements host.ConfigFiles. Matches are returned in scope
// walk order.
func (w *Workspace) FindFilesByName(_ host.Project, name string, scope host.Scope) ([]host.File, error) {
	if !w.Available(host.CapabilityFileIndex) {
		return nil, host.ErrUnavailable
	}
	var out []host.File
	walkScope(scope, func(path string) {
		if filepath.Base(path) == name {
			out = append(out, File{path: path})
		}
	})
	return out, nil
}

// ParseAsFlatProperties implements host.ConfigFiles. Property expansion is
// disabled so values are returned as written.
func (w *Workspace) ParseAsFlatProperties(f host.File) (map[string]string, bool) {
	if !w.Available(host.CapabilityFlatConfig) || filepath.Ext(f.Path()) != ".properties" {
		return nil, false
	}
	buf, err := os.ReadFile(f.Path())
	if err != nil {
		w.logger.Debug("reading properties failed", "path", f.Path(), "error", err)
		return nil, false
	}
	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(buf)
	if err != nil {
		w.logger.Debug("parsing properties failed", "path", f.Path(), "error", err)
		return nil, false
	}
	return p.Map(), true
}

// ParseAsNestedMapping implements host.ConfigFiles.
func (w *Workspace) ParseAsNestedMapping(f host.File) (*yaml.Node, bool) {
	ext := strings.ToLower(filepath.Ext(f.Path()))
	if !w.Available(host.CapabilityNestedConfig) || (ext != ".yml" && ext != ".yaml") {
		return nil, false
	}
	buf, err := os.ReadFile(f.Path())
	if err != nil {
		w.logger.Debug("reading yaml failed", "path", f.Path(), "error", err)
		return nil, false
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		w.logger.Debug("parsing yaml failed", "path", f.Path(), "error", err)
		return nil, false
	}
	return &doc, true
}
