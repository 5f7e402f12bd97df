// Package javaindex is a Java source index backed by tree-sitter. It records
// type and method declarations with their annotations and answers the
// host.SymbolIndex queries, resolving annotation arguments against the
// constants and enums visible in a search scope.
package javaindex

// File is one parsed compilation unit.
type File struct {
	Path    string
	Package string
	Imports []Import
	Types   []*TypeDecl
}

// Import is an import declaration.
type Import struct {
	// Name is the imported name without the trailing ".*".
	Name     string
	Static   bool
	Wildcard bool
}

// TypeKind distinguishes type declarations.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindEnum
	KindRecord
)

// TypeDecl is a class, interface, enum or record declaration.
type TypeDecl struct {
	Kind TypeKind

	// Name is the simple name; Qualified includes the package and any
	// enclosing types.
	Name      string
	Qualified string

	Line        int
	Annotations []Annotation
	Methods     []*MethodDecl

	// Constants are static final fields with an initialiser.
	Constants map[string]Expr

	// EnumConstants lists the members of an enum in declaration order.
	EnumConstants []string

	// Nested are the member types, in source order.
	Nested []*TypeDecl

	// Order interleaves methods and nested types in source order.
	Order []any
}

// MethodDecl is a method declaration.
type MethodDecl struct {
	Name        string
	Line        int
	Annotations []Annotation
}

// Annotation is an annotation use as written in source.
type Annotation struct {
	// Name is the annotation name as written, e.g. "GetMapping" or
	// "org.springframework.web.bind.annotation.GetMapping".
	Name string

	// Args maps attribute names to their expressions. A single unnamed
	// argument is stored under "value".
	Args map[string]Expr
}

// Expr is an annotation argument or constant initialiser expression.
type Expr interface {
	// Source is the expression text as written.
	Source() string
}

// Literal is a string, number, character or boolean literal. Value is nil for
// the null literal.
type Literal struct {
	Value any
	Text  string
}

// Name is a simple or dotted name such as MAX or RequestMethod.GET.
type Name struct {
	Parts []string
	Text  string
}

// ClassLiteral is an X.class expression.
type ClassLiteral struct {
	Type string
	Text string
}

// ArrayInit is a {a, b} element value array.
type ArrayInit struct {
	Elements []Expr
	Text     string
}

// Binary is a binary expression.
type Binary struct {
	Op          string
	Left, Right Expr
	Text        string
}

// Raw is any expression the index does not model.
type Raw struct {
	Text string
}

func (e Literal) Source() string      { return e.Text }
func (e Name) Source() string         { return e.Text }
func (e ClassLiteral) Source() string { return e.Text }
func (e ArrayInit) Source() string    { return e.Text }
func (e Binary) Source() string       { return e.Text }
func (e Raw) Source() string          { return e.Text }
