package workspace

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/restscope/cli/internal/host"
)

// Module is a directory holding a build file.
type Module struct {
	name   string
	dir    string
	rel    string
	nested []string
}

// Name implements host.Module.
func (m *Module) Name() string { return m.name }

// Dir returns the absolute module directory.
func (m *Module) Dir() string { return m.dir }

// RelPath returns the module directory relative to the project root.
func (m *Module) RelPath() string { return m.rel }

type root struct {
	dir     string
	exclude []string
}

// Scope is a module's search scope: its directory minus nested modules, plus
// the library roots when libraries are included.
type Scope struct {
	name      string
	roots     []root
	libraries bool
}

// String implements host.Scope.
func (s *Scope) String() string {
	return fmt.Sprintf("module:%s libraries:%t", s.name, s.libraries)
}

// walkScope calls fn for every regular file in scope, in lexical order per
// root. Unreadable directories are skipped.
func walkScope(scope host.Scope, fn func(path string)) {
	s, ok := scope.(*Scope)
	if !ok {
		return
	}
	for _, r := range s.roots {
		_ = filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != r.dir && (skipDir(d.Name()) || outputDir(r.dir, path) || excluded(path, r.exclude)) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				fn(path)
			}
			return nil
		})
	}
}

func excluded(path string, dirs []string) bool {
	for _, d := range dirs {
		if path == d || strings.HasPrefix(path, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
