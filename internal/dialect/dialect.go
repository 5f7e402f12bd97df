// Package dialect implements the route dialect scanners. Each scanner walks a
// module's annotated declarations for one routing convention and produces raw
// route descriptors with class and method paths already joined.
package dialect

import (
	"sort"

	"github.com/restscope/cli/internal/annotation"
	"github.com/restscope/cli/internal/host"
	"github.com/restscope/cli/internal/route"
)

// Target is the module being scanned together with its search scope.
type Target struct {
	Project host.Project
	Module  host.Module
	Scope   host.Scope
}

// Scanner produces route descriptors for one module.
type Scanner interface {
	// Name identifies the dialect, e.g. "jax-rs".
	Name() string

	// Scan returns the module's routes in declaration order. It never fails;
	// an empty result means the dialect found nothing.
	Scan(t Target) []route.Descriptor
}

// Defaults returns the built-in scanners in precedence order: JAX-RS first,
// then Spring MVC.
func Defaults(index host.SymbolIndex) []Scanner {
	return []Scanner{NewJAXRS(index), NewSpring(index)}
}

// stringAttr returns the string values of the first present attribute, or a
// single empty string when none is present so callers can fan out uniformly.
func stringAttr(attrs map[string]annotation.Value, names ...string) []string {
	v, ok := annotation.Attr(attrs, names...)
	if !ok {
		return []string{""}
	}
	values := annotation.Strings(v)
	if len(values) == 0 {
		return []string{""}
	}
	return values
}

// methodsAttr parses verb names, dropping anything that is not an HTTP method.
func methodsAttr(attrs map[string]annotation.Value, name string) []route.Method {
	v, ok := attrs[name]
	if !ok {
		return nil
	}
	var out []route.Method
	for _, s := range annotation.Strings(v) {
		if m, ok := route.ParseMethod(s); ok {
			out = append(out, m)
		}
	}
	return out
}

// fanOut emits one descriptor per prefix, path and verb combination.
func fanOut(sym host.Symbol, prefixes, paths []string, verbs []route.Method) []route.Descriptor {
	out := make([]route.Descriptor, 0, len(prefixes)*len(paths)*len(verbs))
	for _, prefix := range prefixes {
		for _, p := range paths {
			joined := route.JoinPath(prefix, p)
			for _, verb := range verbs {
				out = append(out, route.Descriptor{Method: verb, Path: joined, Symbol: sym})
			}
		}
	}
	return out
}

// mergeClasses combines class lists from several annotation queries, dropping
// duplicates and non-class symbols, ordered by file then line.
func mergeClasses(lists ...[]host.Symbol) []host.Symbol {
	seen := make(map[string]bool)
	var out []host.Symbol
	for _, list := range lists {
		for _, sym := range list {
			if sym.Kind != host.SymbolClass || seen[sym.ID] {
				continue
			}
			seen[sym.ID] = true
			out = append(out, sym)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out
}
