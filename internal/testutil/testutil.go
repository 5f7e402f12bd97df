// Package testutil provides test helpers for writing Java project fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content at dir/rel, creating parent
// directories. rel uses forward slashes.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// Project writes a Maven/Gradle project tree under a temporary directory.
type Project struct {
	t    *testing.T
	Root string
}

// NewProject creates an empty project directory named name.
func NewProject(t *testing.T, name string) *Project {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create project %s: %v", root, err)
	}
	return &Project{t: t, Root: root}
}

// File writes a file relative to the project root.
func (p *Project) File(rel, content string) *Project {
	p.t.Helper()
	WriteFile(p.t, p.Root, rel, content)
	return p
}

// Module marks dir as a module by writing buildFile into it. dir "" is the
// project root.
func (p *Project) Module(dir, buildFile string) *Project {
	p.t.Helper()
	return p.File(filepath.ToSlash(filepath.Join(dir, buildFile)), "")
}

// Java writes a source file under dir/src/main/java.
func (p *Project) Java(dir, rel, source string) *Project {
	p.t.Helper()
	return p.File(filepath.ToSlash(filepath.Join(dir, "src/main/java", rel)), source)
}

// Properties writes dir/src/main/resources/application.properties.
func (p *Project) Properties(dir, content string) *Project {
	p.t.Helper()
	return p.File(filepath.ToSlash(filepath.Join(dir, "src/main/resources/application.properties")), content)
}

// YAML writes dir/src/main/resources/application.yml.
func (p *Project) YAML(dir, content string) *Project {
	p.t.Helper()
	return p.File(filepath.ToSlash(filepath.Join(dir, "src/main/resources/application.yml")), content)
}
