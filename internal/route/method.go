// Package route holds the dialect-neutral route model: HTTP methods, raw route
// descriptors, path joining and URL composition.
package route

import "strings"

// Method is an HTTP request method. The zero value means the route accepts any
// method (no verb was declared).
type Method string

// HTTP methods recognised by the dialect scanners.
const (
	MethodAny     Method = ""
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// String returns the method name, or "ANY" for MethodAny.
func (m Method) String() string {
	if m == MethodAny {
		return "ANY"
	}
	return string(m)
}

// IsAny reports whether no verb was declared.
func (m Method) IsAny() bool {
	return m == MethodAny
}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, bool) {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch,
		MethodHead, MethodOptions, MethodTrace:
		return m, true
	default:
		return MethodAny, false
	}
}

// Methods returns all concrete methods in a stable order.
func Methods() []Method {
	return []Method{
		MethodGet, MethodPost, MethodPut, MethodDelete,
		MethodPatch, MethodHead, MethodOptions, MethodTrace,
	}
}
