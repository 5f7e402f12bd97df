package annotation

import (
	"fmt"
	"strings"
)

// Extract converts v into a semantic value:
//
//	Constant       -> its payload
//	EnumMember     -> the member name
//	ClassReference -> the qualified class name
//	Array          -> []any, one entry per recoverable element
//	Unresolvable   -> absent
//
// Array elements that extract to nothing are recovered from their source text
// when the element implements SourceTexter; otherwise they are dropped, so the
// result may be shorter than the source array. Extract never fails: ok is
// false when nothing could be extracted.
func Extract(v Value) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case Constant:
		if val.Payload == nil {
			return nil, false
		}
		return val.Payload, true
	case EnumMember:
		if val.Name == "" {
			return nil, false
		}
		return val.Name, true
	case ClassReference:
		if val.QualifiedName == "" {
			return nil, false
		}
		return val.QualifiedName, true
	case Array:
		out := make([]any, 0, len(val.Elements))
		for _, el := range val.Elements {
			if x, ok := Extract(el); ok {
				out = append(out, x)
				continue
			}
			if text, ok := sourceText(el); ok {
				out = append(out, text)
			}
		}
		return out, true
	case Unresolvable:
		return nil, false
	default:
		return nil, false
	}
}

// sourceText is the fallback for array elements. It must never panic, whatever
// the element implementation does.
func sourceText(v Value) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	st, isTexter := v.(SourceTexter)
	if !isTexter {
		return "", false
	}
	return st.SourceText()
}

// Strings extracts v and flattens the result into strings. Scalars yield a
// single element, arrays one element per recovered entry and absent values nil.
func Strings(v Value) []string {
	x, ok := Extract(v)
	if !ok {
		return nil
	}
	return flatten(x)
}

func flatten(x any) []string {
	switch val := x.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, el := range val {
			out = append(out, flatten(el)...)
		}
		return out
	case string:
		return []string{val}
	default:
		return []string{fmt.Sprint(val)}
	}
}

// Attr returns the first present attribute among names. Annotation attributes
// often have aliases, e.g. value and path.
func Attr(attrs map[string]Value, names ...string) (Value, bool) {
	for _, name := range names {
		if v, ok := attrs[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String renders a value for debug output.
func String(v Value) string {
	switch val := v.(type) {
	case Constant:
		return fmt.Sprintf("%#v", val.Payload)
	case EnumMember:
		if val.Type == "" {
			return val.Name
		}
		return val.Type + "." + val.Name
	case ClassReference:
		return val.QualifiedName + ".class"
	case Array:
		parts := make([]string, 0, len(val.Elements))
		for _, el := range val.Elements {
			parts = append(parts, String(el))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Unresolvable:
		return "<unresolved " + val.Text + ">"
	default:
		return "<nil>"
	}
}
