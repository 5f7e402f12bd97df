package dialect

import (
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/route"
)

// JAX-RS annotation packages; the jakarta namespace replaced javax in EE 9.
var jaxrsPackages = []string{"javax.ws.rs", "jakarta.ws.rs"}

var jaxrsVerbs = []route.Method{
	route.MethodGet, route.MethodPost, route.MethodPut, route.MethodDelete,
	route.MethodHead, route.MethodOptions, route.MethodPatch,
}

// JAXRS scans resource classes annotated with @Path and their verb-annotated
// methods.
type JAXRS struct {
	index host.SymbolIndex
}

// NewJAXRS creates a JAX-RS scanner over index.
func NewJAXRS(index host.SymbolIndex) *JAXRS {
	return &JAXRS{index: index}
}

// Name implements Scanner.
func (s *JAXRS) Name() string { return "jax-rs" }

// Scan implements Scanner. Methods without a verb annotation are sub-resource
// locators and are skipped.
func (s *JAXRS) Scan(t Target) []route.Descriptor {
	if s.index == nil {
		return nil
	}

	var out []route.Descriptor
	for _, pkg := range jaxrsPackages {
		pathAnn := pkg + ".Path"
		classes := mergeClasses(s.index.FindAnnotatedSymbols(t.Scope, pathAnn))
		for _, class := range classes {
			prefixes := s.paths(class, pathAnn)
			for _, m := range s.index.Members(class) {
				verbs := s.verbs(m, pkg)
				if len(verbs) == 0 {
					continue
				}
				out = append(out, fanOut(m, prefixes, s.paths(m, pathAnn), verbs)...)
			}
		}
	}
	return out
}

func (s *JAXRS) paths(sym host.Symbol, pathAnn string) []string {
	attrs, ok := s.index.AnnotationAttributes(sym, pathAnn)
	if !ok {
		return []string{""}
	}
	return stringAttr(attrs, "value")
}

func (s *JAXRS) verbs(sym host.Symbol, pkg string) []route.Method {
	var out []route.Method
	for _, verb := range jaxrsVerbs {
		if _, ok := s.index.AnnotationAttributes(sym, pkg+"."+string(verb)); ok {
			out = append(out, verb)
		}
	}
	return out
}
