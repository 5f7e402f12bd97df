// Package annotation models annotation attribute values as a closed tagged
// union and converts them into plain semantic values.
package annotation

// Value is an annotation attribute value. The set of implementations is closed:
// Constant, EnumMember, ClassReference, Array and Unresolvable.
type Value interface {
	isValue()
}

// Constant is a compile-time constant: string, int64, float64, bool or rune.
// A nil Payload means the constant could not be evaluated.
type Constant struct {
	Payload any
}

// EnumMember is a reference to an enum constant. Only the member name is kept.
type EnumMember struct {
	Type string
	Name string
}

// ClassReference is a class literal such as Foo.class.
type ClassReference struct {
	QualifiedName string
}

// Array is an ordered list of values, e.g. {"/a", "/b"}.
type Array struct {
	Elements []Value
}

// Unresolvable is a value whose declaration is not available to the index,
// typically a constant defined in a precompiled dependency. Text is the raw
// source text of the expression when it is known.
type Unresolvable struct {
	Text string
}

func (Constant) isValue()       {}
func (EnumMember) isValue()     {}
func (ClassReference) isValue() {}
func (Array) isValue()          {}
func (Unresolvable) isValue()   {}

// SourceTexter is implemented by values that can fall back to their raw source
// text when the normal extraction yields nothing.
type SourceTexter interface {
	SourceText() (string, bool)
}

// SourceText returns the expression text when it was captured.
func (u Unresolvable) SourceText() (string, bool) {
	return u.Text, u.Text != ""
}
