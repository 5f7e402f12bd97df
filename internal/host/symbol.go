package host

// SymbolKind distinguishes declarations returned by a SymbolIndex.
type SymbolKind int

const (
	// SymbolClass is a class, interface or enum declaration.
	SymbolClass SymbolKind = iota
	// SymbolMethod is a method declaration.
	SymbolMethod
)

// String returns the lower-case kind name.
func (k SymbolKind) String() string {
	switch k {
	case SymbolClass:
		return "class"
	case SymbolMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Symbol is a declaration handle. ID is stable for the lifetime of the index
// that produced it and is the only field an index needs to answer queries.
type Symbol struct {
	// ID identifies the declaration inside its index.
	ID string

	// Kind is the declaration kind.
	Kind SymbolKind

	// Name is the simple name (class name or method name).
	Name string

	// QualifiedName is pkg.Outer.Inner for classes and pkg.Class#method for methods.
	QualifiedName string

	// Owner is the ID of the declaring class for methods and nested classes.
	Owner string

	// File is the declaring source file.
	File string

	// Line is the 1-based declaration line.
	Line int
}
