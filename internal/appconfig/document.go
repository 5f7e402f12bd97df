// Package appconfig resolves the server settings of a scanned application
// (listening port, TLS protocol and servlet context path) from its
// application.properties or application.yml file.
package appconfig

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed configuration file that can answer dotted-key lookups.
type Document interface {
	// Lookup returns the raw value stored under key.
	Lookup(key string) (string, bool)

	// Path is the file the document was read from.
	Path() string
}

// FlatProperties is a properties-style document: dotted keys map directly to values.
type FlatProperties struct {
	path   string
	values map[string]string
}

// NewFlatProperties wraps already-parsed key/value pairs.
func NewFlatProperties(path string, values map[string]string) *FlatProperties {
	if values == nil {
		values = map[string]string{}
	}
	return &FlatProperties{path: path, values: values}
}

// Lookup is an exact key lookup.
func (p *FlatProperties) Lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Path implements Document.
func (p *FlatProperties) Path() string { return p.path }

// NestedMapping is a YAML-style document where a dotted key is a path through
// nested mappings.
type NestedMapping struct {
	path string
	root *yaml.Node
}

// NewNestedMapping wraps a decoded YAML node tree.
func NewNestedMapping(path string, root *yaml.Node) *NestedMapping {
	return &NestedMapping{path: path, root: root}
}

// Lookup splits key on "." and walks one mapping level per segment. Every
// segment must resolve; there is no partial match.
func (m *NestedMapping) Lookup(key string) (string, bool) {
	node := mappingRoot(m.root)
	if node == nil || key == "" {
		return "", false
	}
	for _, segment := range strings.Split(key, ".") {
		node = child(node, segment)
		if node == nil {
			return "", false
		}
	}
	return valueText(node), true
}

// Path implements Document.
func (m *NestedMapping) Path() string { return m.path }

func mappingRoot(n *yaml.Node) *yaml.Node {
	n = deref(n)
	if n == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return deref(n.Content[0])
	}
	return n
}

func child(n *yaml.Node, key string) *yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return deref(n.Content[i+1])
		}
	}
	return nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// valueText returns scalars unquoted and re-encodes collections.
func valueText(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
