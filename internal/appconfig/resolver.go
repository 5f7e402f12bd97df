package appconfig

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/restscope/cli/internal/host"
)

// Candidate file names, checked in this order.
const (
	PropertiesFileName = "application.properties"
	YAMLFileName       = "application.yml"
)

// Well-known keys read by the derived settings.
const (
	KeyServerPort  = "server.port"
	KeySSLEnabled  = "server.ssl.enabled"
	KeyContextPath = "server.servlet.context-path"
)

// Files is the subset of the host the resolver needs.
type Files interface {
	host.Capabilities
	host.ConfigFiles
}

// Resolver finds a project's configuration document and answers lookups on it.
// All methods are total: missing files, missing keys and unavailable host
// capabilities yield absent values, never errors.
type Resolver struct {
	files   Files
	advisor host.Advisor
	logger  *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAdvisor sets the sink for degraded-mode notices.
func WithAdvisor(a host.Advisor) Option {
	return func(r *Resolver) {
		if a != nil {
			r.advisor = a
		}
	}
}

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a resolver backed by files.
func NewResolver(files Files, opts ...Option) *Resolver {
	r := &Resolver{files: files, advisor: host.NopAdvisor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindDocument returns the first configuration document in scope.
// application.properties is tried before application.yml; within one name the
// first file of a recognised kind wins and later candidates are not inspected.
// When several modules or libraries ship conflicting files the result depends on
// discovery order.
func (r *Resolver) FindDocument(project host.Project, scope host.Scope) Document {
	if r == nil || r.files == nil {
		return nil
	}
	if !r.files.Available(host.CapabilityFileIndex) {
		r.degraded(host.CapabilityFileIndex)
		return nil
	}

	for _, name := range []string{PropertiesFileName, YAMLFileName} {
		files, err := r.files.FindFilesByName(project, name, scope)
		if err != nil {
			if errors.Is(err, host.ErrUnavailable) {
				r.degraded(host.CapabilityFileIndex)
				return nil
			}
			r.debug("config search failed", "file", name, "scope", scope, "error", err)
			continue
		}
		for _, f := range files {
			if doc := r.parse(f); doc != nil {
				r.debug("config document selected", "path", doc.Path(), "scope", scope)
				return doc
			}
		}
	}
	return nil
}

func (r *Resolver) parse(f host.File) Document {
	if r.files.Available(host.CapabilityFlatConfig) {
		if values, ok := r.files.ParseAsFlatProperties(f); ok {
			return NewFlatProperties(f.Path(), values)
		}
	} else {
		r.degraded(host.CapabilityFlatConfig)
	}
	if r.files.Available(host.CapabilityNestedConfig) {
		if root, ok := r.files.ParseAsNestedMapping(f); ok {
			return NewNestedMapping(f.Path(), root)
		}
	} else {
		r.degraded(host.CapabilityNestedConfig)
	}
	return nil
}

// Resolve reads the document once and derives all server settings from it.
func (r *Resolver) Resolve(project host.Project, scope host.Scope) Settings {
	return SettingsFrom(r.FindDocument(project, scope))
}

// Port resolves server.port, see PortFrom.
func (r *Resolver) Port(project host.Project, scope host.Scope) int {
	return PortFrom(r.FindDocument(project, scope))
}

// Protocol resolves server.ssl.enabled, see ProtocolFrom.
func (r *Resolver) Protocol(project host.Project, scope host.Scope) string {
	return ProtocolFrom(r.FindDocument(project, scope))
}

// ContextPath resolves server.servlet.context-path, see ContextPathFrom.
func (r *Resolver) ContextPath(project host.Project, scope host.Scope) (string, bool) {
	return ContextPathFrom(r.FindDocument(project, scope))
}

func (r *Resolver) degraded(c host.Capability) {
	r.advisor.Advise(c, fmt.Sprintf("host is missing the %s capability; using default server settings", c))
}

func (r *Resolver) debug(msg string, keyvals ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

// Lookup returns the value stored under a dotted key, or false when doc is nil
// or the key is missing.
func Lookup(doc Document, key string) (string, bool) {
	if doc == nil {
		return "", false
	}
	return doc.Lookup(key)
}
