package route

import (
	"strconv"
	"strings"
)

// Host is the host name used in every composed URL.
const Host = "localhost"

// ComposeURL builds an absolute URL from its parts:
//
//	protocol://localhost[:port][contextPath]/path
//
// port is omitted when nil. contextPath is used only when it starts with "/"
// and is not the literal "null"; it is appended verbatim, so a trailing slash
// followed by a leading slash in path produces "//". A "/" is inserted before
// path when it has none.
func ComposeURL(protocol string, port *int, contextPath, path string) string {
	var b strings.Builder
	b.WriteString(protocol)
	b.WriteString("://")
	b.WriteString(Host)
	if port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*port))
	}
	if contextPath != "null" && strings.HasPrefix(contextPath, "/") {
		b.WriteString(contextPath)
	}
	if !strings.HasPrefix(path, "/") {
		b.WriteByte('/')
	}
	b.WriteString(path)
	return b.String()
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
