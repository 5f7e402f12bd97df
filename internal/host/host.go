// Package host defines the contracts restscope needs from the environment that
// owns the project model: module enumeration, search scopes, file lookup by
// name, configuration parsing and the annotation-aware symbol index.
//
// The discovery core only talks to these interfaces. internal/workspace
// provides the filesystem-backed implementation used by the CLI.
package host

import (
	"gopkg.in/yaml.v3"

	"github.com/restscope/cli/internal/annotation"
)

// Project is an opaque handle to the analysed project.
type Project interface {
	// Name is the display name of the project.
	Name() string
}

// Module is an opaque handle to one module of a project.
type Module interface {
	// Name is unique within its project.
	Name() string
}

// Scope is an opaque search scope produced by ModuleScope.
type Scope interface {
	// String describes the scope for debug logging.
	String() string
}

// File is an opaque handle to a file found through FindFilesByName.
type File interface {
	// Path is the location of the file, used for reporting only.
	Path() string
}

// ModuleLister enumerates the modules of a project and builds their scopes.
type ModuleLister interface {
	// ListModules returns the project's modules in the host's enumeration order.
	ListModules(project Project) []Module

	// ModuleScope returns the search scope of a module. includeLibraries widens
	// it with the module's library roots.
	ModuleScope(module Module, includeLibraries bool) Scope
}

// ConfigFiles locates and parses configuration files.
type ConfigFiles interface {
	// FindFilesByName returns the files named exactly name inside scope, in
	// discovery order. It returns ErrUnavailable when the file index is missing.
	FindFilesByName(project Project, name string, scope Scope) ([]File, error)

	// ParseAsFlatProperties returns the key/value pairs of f when f is a
	// properties-style file. ok is false for any other kind of file.
	ParseAsFlatProperties(f File) (values map[string]string, ok bool)

	// ParseAsNestedMapping returns the document node of f when f is a
	// YAML-style file. ok is false for any other kind of file.
	ParseAsNestedMapping(f File) (doc *yaml.Node, ok bool)
}

// SymbolIndex answers annotation queries over declared symbols.
type SymbolIndex interface {
	// FindAnnotatedSymbols returns the symbols in scope annotated with the
	// annotation whose qualified name is given, in declaration order.
	FindAnnotatedSymbols(scope Scope, annotationName string) []Symbol

	// AnnotationAttributes returns the attributes of the named annotation on sym.
	// ok is false when sym does not carry the annotation.
	AnnotationAttributes(sym Symbol, annotationName string) (attrs map[string]annotation.Value, ok bool)

	// Members returns the methods declared directly by a class symbol, in
	// declaration order.
	Members(class Symbol) []Symbol
}

// Host bundles every collaborator the discovery core depends on.
type Host interface {
	Capabilities
	ModuleLister
	ConfigFiles
	SymbolIndex
}
