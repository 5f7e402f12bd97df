package dialect

import (
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/route"
)

const (
	springWeb        = "org.springframework.web.bind.annotation"
	springController = "org.springframework.stereotype.Controller"
	springRest       = springWeb + ".RestController"
	requestMapping   = springWeb + ".RequestMapping"
)

// Shortcut mappings with a fixed verb, in the order they are checked.
var springShortcuts = []struct {
	annotation string
	method     route.Method
}{
	{springWeb + ".GetMapping", route.MethodGet},
	{springWeb + ".PostMapping", route.MethodPost},
	{springWeb + ".PutMapping", route.MethodPut},
	{springWeb + ".DeleteMapping", route.MethodDelete},
	{springWeb + ".PatchMapping", route.MethodPatch},
}

// Spring scans @Controller and @RestController classes for request mappings.
type Spring struct {
	index host.SymbolIndex
}

// NewSpring creates a Spring MVC scanner over index.
func NewSpring(index host.SymbolIndex) *Spring {
	return &Spring{index: index}
}

// Name implements Scanner.
func (s *Spring) Name() string { return "spring" }

// Scan implements Scanner.
func (s *Spring) Scan(t Target) []route.Descriptor {
	if s.index == nil {
		return nil
	}

	classes := mergeClasses(
		s.index.FindAnnotatedSymbols(t.Scope, springController),
		s.index.FindAnnotatedSymbols(t.Scope, springRest),
	)

	var out []route.Descriptor
	for _, class := range classes {
		prefixes := []string{""}
		var classVerbs []route.Method
		if attrs, ok := s.index.AnnotationAttributes(class, requestMapping); ok {
			prefixes = stringAttr(attrs, "value", "path")
			classVerbs = methodsAttr(attrs, "method")
		}

		for _, m := range s.index.Members(class) {
			out = append(out, s.scanMethod(m, prefixes, classVerbs)...)
		}
	}
	return out
}

func (s *Spring) scanMethod(m host.Symbol, prefixes []string, classVerbs []route.Method) []route.Descriptor {
	var out []route.Descriptor

	if attrs, ok := s.index.AnnotationAttributes(m, requestMapping); ok {
		verbs := methodsAttr(attrs, "method")
		if len(verbs) == 0 {
			verbs = classVerbs
		}
		if len(verbs) == 0 {
			verbs = []route.Method{route.MethodAny}
		}
		out = append(out, fanOut(m, prefixes, stringAttr(attrs, "value", "path"), verbs)...)
	}

	for _, sc := range springShortcuts {
		attrs, ok := s.index.AnnotationAttributes(m, sc.annotation)
		if !ok {
			continue
		}
		out = append(out, fanOut(m, prefixes, stringAttr(attrs, "value", "path"), []route.Method{sc.method})...)
	}
	return out
}
