package route

import "github.com/restscope/cli/internal/host"

// Descriptor is one route found by a dialect scanner: a verb, the fully joined
// route path (class prefix plus method path) and the declaring symbol.
type Descriptor struct {
	Method Method
	Path   string
	Symbol host.Symbol
}

// Handler returns the qualified name of the declaring symbol.
func (d Descriptor) Handler() string {
	return d.Symbol.QualifiedName
}
