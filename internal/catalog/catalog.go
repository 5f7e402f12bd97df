// Package catalog builds the endpoint catalog of a project: every module's
// routes, each resolved to an absolute URL using the module's server settings.
package catalog

import (
	"github.com/restscope/cli/internal/route"
)

// Endpoint is one resolved HTTP endpoint.
type Endpoint struct {
	// Module is the name of the module that declares the endpoint.
	Module string `json:"module"`

	// Method is the HTTP verb; empty when the mapping accepts any verb.
	Method route.Method `json:"method,omitempty"`

	// URL is the composed absolute URL.
	URL string `json:"url"`

	// Path is the route path before URL composition.
	Path string `json:"path"`

	// Handler is the qualified name of the declaring method.
	Handler string `json:"handler"`

	// Dialect names the scanner that produced the endpoint.
	Dialect string `json:"dialect"`
}

// ModuleEndpoints is the endpoint list of a single module.
type ModuleEndpoints struct {
	Name      string     `json:"name"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Catalog maps module names to their endpoints, preserving the host's module
// enumeration order.
type Catalog struct {
	modules []ModuleEndpoints
	index   map[string]int
}

func newCatalog(capacity int) *Catalog {
	return &Catalog{
		modules: make([]ModuleEndpoints, 0, capacity),
		index:   make(map[string]int, capacity),
	}
}

// add appends a module. A repeated name replaces the earlier entry in place.
func (c *Catalog) add(name string, endpoints []Endpoint) {
	if endpoints == nil {
		endpoints = []Endpoint{}
	}
	if i, ok := c.index[name]; ok {
		c.modules[i].Endpoints = endpoints
		return
	}
	c.index[name] = len(c.modules)
	c.modules = append(c.modules, ModuleEndpoints{Name: name, Endpoints: endpoints})
}

// Modules returns the module names in catalog order.
func (c *Catalog) Modules() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.modules))
	for _, m := range c.modules {
		names = append(names, m.Name)
	}
	return names
}

// Endpoints returns the endpoints of the named module and whether the module is
// part of the catalog.
func (c *Catalog) Endpoints(module string) ([]Endpoint, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[module]
	if !ok {
		return nil, false
	}
	return c.modules[i].Endpoints, true
}

// Entries returns every module with its endpoints in catalog order.
func (c *Catalog) Entries() []ModuleEndpoints {
	if c == nil {
		return nil
	}
	return c.modules
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.modules)
}

// Total returns the number of endpoints across all modules.
func (c *Catalog) Total() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, m := range c.modules {
		n += len(m.Endpoints)
	}
	return n
}

// ToMap returns the catalog as a module name to endpoint list map.
func (c *Catalog) ToMap() map[string][]Endpoint {
	out := make(map[string][]Endpoint, c.Len())
	for _, m := range c.Entries() {
		out[m.Name] = m.Endpoints
	}
	return out
}
