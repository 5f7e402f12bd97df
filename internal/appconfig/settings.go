package appconfig

import (
	"strconv"
	"strings"

	"github.com/restscope/cli/internal/route"
)

// Defaults applied when a setting is missing or malformed.
const (
	DefaultPort     = 8080
	DefaultProtocol = "http"
	TLSProtocol     = "https"
)

// Settings are the server settings of one application.
type Settings struct {
	// Protocol is "http" or "https".
	Protocol string `json:"protocol"`

	// Port is the listening port.
	Port int `json:"port"`

	// ContextPath is the raw servlet context path; valid only when HasContextPath.
	ContextPath string `json:"contextPath,omitempty"`

	// HasContextPath reports whether the key was present.
	HasContextPath bool `json:"-"`

	// Source is the configuration file the settings were read from, empty when
	// every value is a default.
	Source string `json:"source,omitempty"`
}

// SettingsFrom derives all settings from doc, which may be nil.
func SettingsFrom(doc Document) Settings {
	s := Settings{
		Protocol: ProtocolFrom(doc),
		Port:     PortFrom(doc),
	}
	s.ContextPath, s.HasContextPath = ContextPathFrom(doc)
	if doc != nil {
		s.Source = doc.Path()
	}
	return s
}

// URL composes the absolute URL of path under these settings.
func (s Settings) URL(path string) string {
	contextPath := ""
	if s.HasContextPath {
		contextPath = s.ContextPath
	}
	port := s.Port
	return route.ComposeURL(s.Protocol, &port, contextPath, path)
}

// PortFrom parses server.port. A missing, blank or non-integer value yields
// DefaultPort.
func PortFrom(doc Document) int {
	v, ok := Lookup(doc, KeyServerPort)
	if !ok {
		return DefaultPort
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return DefaultPort
	}
	port, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return DefaultPort
	}
	return int(port)
}

// ProtocolFrom reads server.ssl.enabled. Only a value that trims to "true"
// (any case) selects https.
func ProtocolFrom(doc Document) string {
	v, ok := Lookup(doc, KeySSLEnabled)
	if !ok {
		return DefaultProtocol
	}
	v = strings.TrimSpace(v)
	if v == "" || !strings.EqualFold(v, "true") {
		return DefaultProtocol
	}
	return TLSProtocol
}

// ContextPathFrom returns server.servlet.context-path verbatim.
func ContextPathFrom(doc Document) (string, bool) {
	return Lookup(doc, KeyContextPath)
}
