// Package hosttest provides an in-memory host.Host for tests.
package hosttest

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/restscope/cli/internal/annotation"
	"github.com/restscope/cli/internal/host"
)

// Attrs is the attribute map of one annotation.
type Attrs = map[string]annotation.Value

// Method is a fake method declaration.
type Method struct {
	Name        string
	Annotations map[string]Attrs
}

// Class is a fake class declaration.
type Class struct {
	Name        string
	Annotations map[string]Attrs
	Methods     []*Method
}

// Module is a fake module with its sources and configuration files.
type Module struct {
	ModName string

	// Classes are the module's own declarations.
	Classes []*Class

	// LibraryClasses are only visible in a library-inclusive scope.
	LibraryClasses []*Class

	// Properties is the content of application.properties; nil means no file.
	Properties map[string]string

	// YAML is the content of application.yml; empty means no file.
	YAML string
}

// Name implements host.Module.
func (m *Module) Name() string { return m.ModName }

// Scope is the fake search scope.
type Scope struct {
	Module           *Module
	IncludeLibraries bool
}

// String implements host.Scope.
func (s Scope) String() string {
	return fmt.Sprintf("module:%s libraries:%t", s.Module.ModName, s.IncludeLibraries)
}

type file struct {
	path  string
	props map[string]string
	yaml  string
}

func (f file) Path() string { return f.path }

type entry struct {
	sym   host.Symbol
	anns  map[string]Attrs
	class *Class
}

// Host is an in-memory host.Host. Queries are safe for concurrent use.
type Host struct {
	ProjectName string
	Modules     []*Module
	Unavailable map[host.Capability]bool

	// PanicOn makes every symbol query for the named module panic.
	PanicOn string

	mu      sync.Mutex
	entries map[string]*entry
	queries int
}

// Name implements host.Project.
func (h *Host) Name() string { return h.ProjectName }

// Queries returns how many symbol queries were answered.
func (h *Host) Queries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.queries
}

// Available implements host.Capabilities.
func (h *Host) Available(c host.Capability) bool { return !h.Unavailable[c] }

// ListModules implements host.ModuleLister.
func (h *Host) ListModules(host.Project) []host.Module {
	out := make([]host.Module, 0, len(h.Modules))
	for _, m := range h.Modules {
		out = append(out, m)
	}
	return out
}

// ModuleScope implements host.ModuleLister.
func (h *Host) ModuleScope(m host.Module, includeLibraries bool) host.Scope {
	return Scope{Module: m.(*Module), IncludeLibraries: includeLibraries}
}

// FindFilesByName implements host.ConfigFiles.
func (h *Host) FindFilesByName(_ host.Project, name string, scope host.Scope) ([]host.File, error) {
	if h.Unavailable[host.CapabilityFileIndex] {
		return nil, host.ErrUnavailable
	}
	m := scope.(Scope).Module
	switch name {
	case "application.properties":
		if m.Properties != nil {
			return []host.File{file{path: m.ModName + "/application.properties", props: m.Properties}}, nil
		}
	case "application.yml":
		if m.YAML != "" {
			return []host.File{file{path: m.ModName + "/application.yml", yaml: m.YAML}}, nil
		}
	}
	return nil, nil
}

// ParseAsFlatProperties implements host.ConfigFiles.
func (h *Host) ParseAsFlatProperties(f host.File) (map[string]string, bool) {
	ff := f.(file)
	return ff.props, ff.props != nil
}

// ParseAsNestedMapping implements host.ConfigFiles.
func (h *Host) ParseAsNestedMapping(f host.File) (*yaml.Node, bool) {
	ff := f.(file)
	if ff.yaml == "" {
		return nil, false
	}
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(ff.yaml), &n); err != nil {
		return nil, false
	}
	return &n, true
}

// FindAnnotatedSymbols implements host.SymbolIndex.
func (h *Host) FindAnnotatedSymbols(scope host.Scope, annotationName string) []host.Symbol {
	s := scope.(Scope)
	if s.Module.ModName == h.PanicOn {
		panic("symbol index crashed for " + s.Module.ModName)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queries++

	classes := s.Module.Classes
	if s.IncludeLibraries {
		classes = append(append([]*Class(nil), classes...), s.Module.LibraryClasses...)
	}

	var out []host.Symbol
	for ci, c := range classes {
		classSym := h.register(s.Module, ci, c)
		if _, ok := c.Annotations[annotationName]; ok {
			out = append(out, classSym)
		}
		for mi, m := range c.Methods {
			methodSym := h.registerMethod(classSym, mi, m)
			if _, ok := m.Annotations[annotationName]; ok {
				out = append(out, methodSym)
			}
		}
	}
	return out
}

// AnnotationAttributes implements host.SymbolIndex.
func (h *Host) AnnotationAttributes(sym host.Symbol, annotationName string) (map[string]annotation.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.entries[sym.ID]
	if !ok {
		return nil, false
	}
	attrs, ok := e.anns[annotationName]
	if !ok {
		return nil, false
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	return attrs, true
}

// Members implements host.SymbolIndex.
func (h *Host) Members(class host.Symbol) []host.Symbol {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.entries[class.ID]
	if !ok || e.class == nil {
		return nil
	}
	out := make([]host.Symbol, 0, len(e.class.Methods))
	for mi, m := range e.class.Methods {
		out = append(out, h.registerMethod(e.sym, mi, m))
	}
	return out
}

func (h *Host) register(m *Module, idx int, c *Class) host.Symbol {
	if h.entries == nil {
		h.entries = make(map[string]*entry)
	}
	id := fmt.Sprintf("%s/%s", m.ModName, c.Name)
	sym := host.Symbol{
		ID:            id,
		Kind:          host.SymbolClass,
		Name:          c.Name,
		QualifiedName: "com.example." + c.Name,
		File:          fmt.Sprintf("%s/%s.java", m.ModName, c.Name),
		Line:          idx + 1,
	}
	h.entries[id] = &entry{sym: sym, anns: c.Annotations, class: c}
	return sym
}

func (h *Host) registerMethod(class host.Symbol, idx int, m *Method) host.Symbol {
	if h.entries == nil {
		h.entries = make(map[string]*entry)
	}
	id := fmt.Sprintf("%s#%s/%d", class.ID, m.Name, idx)
	sym := host.Symbol{
		ID:            id,
		Kind:          host.SymbolMethod,
		Name:          m.Name,
		QualifiedName: class.QualifiedName + "#" + m.Name,
		Owner:         class.ID,
		File:          class.File,
		Line:          class.Line*100 + idx + 1,
	}
	h.entries[id] = &entry{sym: sym, anns: m.Annotations}
	return sym
}

// Str is a string constant.
func Str(s string) annotation.Value { return annotation.Constant{Payload: s} }

// Enum is an enum member reference.
func Enum(typ, name string) annotation.Value { return annotation.EnumMember{Type: typ, Name: name} }

// Arr is an array value.
func Arr(values ...annotation.Value) annotation.Value { return annotation.Array{Elements: values} }
