package javaindex

import (
	"fmt"
	"strings"

	"github.com/restscope/cli/internal/annotation"
)

// maxEvalDepth bounds constant evaluation so cyclic initialisers terminate.
const maxEvalDepth = 32

// wellKnownEnums are framework enums that usually live in library jars rather
// than in the scanned sources.
var wellKnownEnums = map[string][]string{
	"org.springframework.web.bind.annotation.RequestMethod": {
		"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "TRACE",
	},
	"org.springframework.http.HttpMethod": {
		"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "TRACE",
	},
}

// typeRef is a type declaration together with its file and enclosing types,
// outermost first and ending with the type itself.
type typeRef struct {
	file  *File
	chain []*TypeDecl
}

func (r typeRef) decl() *TypeDecl { return r.chain[len(r.chain)-1] }

// view is the set of declarations visible in one search scope.
type view struct {
	types map[string]typeRef
}

func newView(files []*File) *view {
	v := &view{types: make(map[string]typeRef)}
	for q, members := range wellKnownEnums {
		td := &TypeDecl{Kind: KindEnum, Name: q[strings.LastIndex(q, ".")+1:], Qualified: q, EnumConstants: members}
		v.types[q] = typeRef{chain: []*TypeDecl{td}}
	}
	for _, f := range files {
		for _, td := range f.Types {
			v.register(f, nil, td)
		}
	}
	return v
}

func (v *view) register(f *File, outer []*TypeDecl, td *TypeDecl) {
	chain := append(append([]*TypeDecl(nil), outer...), td)
	if _, dup := v.types[td.Qualified]; !dup {
		v.types[td.Qualified] = typeRef{file: f, chain: chain}
	}
	for _, nested := range td.Nested {
		v.register(f, chain, nested)
	}
}

// site is the position an expression is evaluated from.
type site struct {
	view  *view
	file  *File
	chain []*TypeDecl
}

func (c site) at(ref typeRef) site {
	return site{view: c.view, file: ref.file, chain: ref.chain}
}

// resolveType resolves a type name as written to its qualified name. The
// second result is false when the type is not declared in scope; the written
// name is then returned unchanged, or qualified through a single import.
func (c site) resolveType(written string) (string, bool) {
	if i := strings.IndexByte(written, '<'); i >= 0 {
		written = written[:i]
	}
	written = strings.TrimSpace(written)
	parts := strings.Split(written, ".")
	first, rest := parts[0], parts[1:]

	withRest := func(base string) string {
		return strings.Join(append([]string{base}, rest...), ".")
	}

	for i := len(c.chain) - 1; i >= 0; i-- {
		td := c.chain[i]
		if td.Name == first {
			if q := withRest(td.Qualified); c.known(q) {
				return q, true
			}
		}
		for _, nested := range td.Nested {
			if nested.Name == first {
				if q := withRest(nested.Qualified); c.known(q) {
					return q, true
				}
			}
		}
	}

	var imported string
	if c.file != nil {
		for _, imp := range c.file.Imports {
			if !imp.Wildcard && !imp.Static && lastSegment(imp.Name) == first {
				imported = withRest(imp.Name)
				if c.known(imported) {
					return imported, true
				}
			}
		}
		if q := withRest(joinName(c.file.Package, first)); c.known(q) {
			return q, true
		}
		for _, imp := range c.file.Imports {
			if imp.Wildcard && !imp.Static {
				if q := withRest(joinName(imp.Name, first)); c.known(q) {
					return q, true
				}
			}
		}
	}
	if c.known(written) {
		return written, true
	}
	if imported != "" {
		return imported, false
	}
	return written, false
}

func (c site) known(qualified string) bool {
	_, ok := c.view.types[qualified]
	return ok
}

// value converts an expression to an annotation value.
func (c site) value(e Expr) annotation.Value {
	switch x := e.(type) {
	case Literal:
		return annotation.Constant{Payload: x.Value}
	case ArrayInit:
		arr := annotation.Array{Elements: make([]annotation.Value, 0, len(x.Elements))}
		for _, el := range x.Elements {
			arr.Elements = append(arr.Elements, c.value(el))
		}
		return arr
	case ClassLiteral:
		q, _ := c.resolveType(x.Type)
		return annotation.ClassReference{QualifiedName: q}
	case Name:
		if v, ok := c.name(x.Parts, 0); ok {
			return v
		}
	case Binary:
		if v, ok := c.eval(x, 0); ok {
			return annotation.Constant{Payload: v}
		}
	}
	return annotation.Unresolvable{Text: e.Source()}
}

// name resolves a simple or dotted name to an enum member or a constant.
func (c site) name(parts []string, depth int) (annotation.Value, bool) {
	if len(parts) == 0 || depth > maxEvalDepth {
		return nil, false
	}
	member := parts[len(parts)-1]

	if len(parts) > 1 {
		q, ok := c.resolveType(strings.Join(parts[:len(parts)-1], "."))
		if !ok {
			return nil, false
		}
		return c.member(c.view.types[q], member, depth)
	}

	for i := len(c.chain) - 1; i >= 0; i-- {
		ref := typeRef{file: c.file, chain: c.chain[:i+1]}
		if v, ok := c.member(ref, member, depth); ok {
			return v, true
		}
	}
	if c.file == nil {
		return nil, false
	}
	for _, imp := range c.file.Imports {
		if !imp.Static {
			continue
		}
		owner := imp.Name
		if !imp.Wildcard {
			if lastSegment(imp.Name) != member {
				continue
			}
			owner = imp.Name[:max(strings.LastIndex(imp.Name, "."), 0)]
		}
		if ref, ok := c.view.types[owner]; ok {
			if v, ok := c.member(ref, member, depth); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// member looks up an enum constant or a static final field of ref.
func (c site) member(ref typeRef, name string, depth int) (annotation.Value, bool) {
	if len(ref.chain) == 0 {
		return nil, false
	}
	td := ref.decl()
	if td.Kind == KindEnum {
		for _, m := range td.EnumConstants {
			if m == name {
				return annotation.EnumMember{Type: td.Name, Name: name}, true
			}
		}
	}
	init, ok := td.Constants[name]
	if !ok {
		return nil, false
	}
	v, ok := c.at(ref).eval(init, depth+1)
	if !ok {
		return nil, false
	}
	return annotation.Constant{Payload: v}, true
}

// eval computes the value of a constant expression.
func (c site) eval(e Expr, depth int) (any, bool) {
	if depth > maxEvalDepth {
		return nil, false
	}
	switch x := e.(type) {
	case Literal:
		return x.Value, x.Value != nil
	case Name:
		v, ok := c.name(x.Parts, depth+1)
		if !ok {
			return nil, false
		}
		if k, isConst := v.(annotation.Constant); isConst && k.Payload != nil {
			return k.Payload, true
		}
	case Binary:
		if x.Op != "+" {
			return nil, false
		}
		l, ok := c.eval(x.Left, depth+1)
		if !ok {
			return nil, false
		}
		r, ok := c.eval(x.Right, depth+1)
		if !ok {
			return nil, false
		}
		return add(l, r)
	}
	return nil, false
}

func add(l, r any) (any, bool) {
	ls, lok := l.(string)
	rs, rok := r.(string)
	switch {
	case lok && rok:
		return ls + rs, true
	case lok:
		return ls + fmt.Sprint(r), true
	case rok:
		return fmt.Sprint(l) + rs, true
	}
	li, lok := l.(int64)
	ri, rok := r.(int64)
	if lok && rok {
		return li + ri, true
	}
	return nil, false
}

// matches reports whether an annotation written as written in file refers to
// the annotation type qualified.
func matches(file *File, written, qualified string) bool {
	if written == qualified {
		return true
	}
	if strings.Contains(written, ".") || written != lastSegment(qualified) {
		return false
	}
	pkg := qualified[:max(strings.LastIndex(qualified, "."), 0)]
	for _, imp := range file.Imports {
		if imp.Static {
			continue
		}
		if imp.Wildcard && imp.Name == pkg {
			return true
		}
		if !imp.Wildcard && imp.Name == qualified {
			return true
		}
	}
	return file.Package == pkg
}

func lastSegment(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}
