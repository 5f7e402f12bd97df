package route

import "strings"

// JoinPath joins path fragments with exactly one "/" between them. Surrounding
// whitespace and slashes of each fragment are dropped, empty fragments are
// skipped and the result always starts with "/". No fragments yield "/".
func JoinPath(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		f = strings.Trim(strings.TrimSpace(f), "/")
		if f == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(f)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
