package javaindex

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Parse parses Java source into a File. Syntax errors do not fail the parse:
// tree-sitter recovers and the declarations it could read are kept.
func Parse(path string, content []byte) (*File, error) {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	e := &extractor{src: content, file: &File{Path: path}}
	e.walkProgram(tree.RootNode())
	return e.file, nil
}

type extractor struct {
	src  []byte
	file *File
}

func (e *extractor) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(e.src)
}

func (e *extractor) walkProgram(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			e.file.Package = e.qualifiedName(child)
		case "import_declaration":
			e.extractImport(child)
		default:
			if td := e.extractType(child, e.file.Package); td != nil {
				e.file.Types = append(e.file.Types, td)
			}
		}
	}
}

// qualifiedName returns the first identifier or scoped_identifier child.
func (e *extractor) qualifiedName(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
			return e.text(child)
		}
	}
	return ""
}

func (e *extractor) extractImport(n *sitter.Node) {
	imp := Import{Name: e.qualifiedName(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "static":
			imp.Static = true
		case "asterisk":
			imp.Wildcard = true
		}
	}
	if imp.Name != "" {
		e.file.Imports = append(e.file.Imports, imp)
	}
}

var typeKinds = map[string]TypeKind{
	"class_declaration":     KindClass,
	"interface_declaration": KindInterface,
	"enum_declaration":      KindEnum,
	"record_declaration":    KindRecord,
}

// extractType reads a type declaration; outer is the package or the enclosing
// type's qualified name. Other node types yield nil.
func (e *extractor) extractType(n *sitter.Node, outer string) *TypeDecl {
	kind, ok := typeKinds[n.Type()]
	if !ok {
		return nil
	}
	name := e.text(n.ChildByFieldName("name"))
	if name == "" {
		return nil
	}

	td := &TypeDecl{
		Kind:      kind,
		Name:      name,
		Qualified: joinName(outer, name),
		Line:      int(n.StartPoint().Row) + 1,
		Constants: map[string]Expr{},
	}
	if mods := childOfType(n, "modifiers"); mods != nil {
		td.Annotations = e.annotations(mods)
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return td
	}
	e.walkBody(td, body)
	return td
}

func (e *extractor) walkBody(td *TypeDecl, body *sitter.Node) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "method_declaration":
			m := &MethodDecl{
				Name: e.text(child.ChildByFieldName("name")),
				Line: int(child.StartPoint().Row) + 1,
			}
			if mods := childOfType(child, "modifiers"); mods != nil {
				m.Annotations = e.annotations(mods)
			}
			td.Methods = append(td.Methods, m)
			td.Order = append(td.Order, m)
		case "field_declaration":
			mods := childOfType(child, "modifiers")
			if mods == nil || !hasModifier(mods, e.src, "static") || !hasModifier(mods, e.src, "final") {
				continue
			}
			e.constants(td, child)
		case "constant_declaration":
			e.constants(td, child)
		case "enum_constant":
			if name := e.text(child.ChildByFieldName("name")); name != "" {
				td.EnumConstants = append(td.EnumConstants, name)
			}
		case "enum_body_declarations":
			e.walkBody(td, child)
		default:
			if nested := e.extractType(child, td.Qualified); nested != nil {
				td.Nested = append(td.Nested, nested)
				td.Order = append(td.Order, nested)
			}
		}
	}
}

func (e *extractor) constants(td *TypeDecl, n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		decl := n.NamedChild(i)
		if decl.Type() != "variable_declarator" {
			continue
		}
		name := e.text(decl.ChildByFieldName("name"))
		value := decl.ChildByFieldName("value")
		if name == "" || value == nil {
			continue
		}
		td.Constants[name] = e.expr(value)
	}
}

func (e *extractor) annotations(mods *sitter.Node) []Annotation {
	var out []Annotation
	for i := 0; i < int(mods.NamedChildCount()); i++ {
		child := mods.NamedChild(i)
		switch child.Type() {
		case "marker_annotation":
			out = append(out, Annotation{Name: e.text(child.ChildByFieldName("name")), Args: map[string]Expr{}})
		case "annotation":
			ann := Annotation{Name: e.text(child.ChildByFieldName("name")), Args: map[string]Expr{}}
			if args := child.ChildByFieldName("arguments"); args != nil {
				e.annotationArgs(ann.Args, args)
			}
			out = append(out, ann)
		}
	}
	return out
}

func (e *extractor) annotationArgs(dst map[string]Expr, list *sitter.Node) {
	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)
		switch child.Type() {
		case "line_comment", "block_comment":
			continue
		case "element_value_pair":
			key := e.text(child.ChildByFieldName("key"))
			if value := child.ChildByFieldName("value"); key != "" && value != nil {
				dst[key] = e.expr(value)
			}
		default:
			dst["value"] = e.expr(child)
		}
	}
}

// expr converts an expression node into the index's expression model.
func (e *extractor) expr(n *sitter.Node) Expr {
	text := e.text(n)
	switch n.Type() {
	case "string_literal":
		return Literal{Value: unquoteString(text), Text: text}
	case "text_block":
		return Literal{Value: unquoteTextBlock(text), Text: text}
	case "character_literal":
		return Literal{Value: unquoteChar(text), Text: text}
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		if v, ok := parseInt(text); ok {
			return Literal{Value: v, Text: text}
		}
		return Raw{Text: text}
	case "decimal_floating_point_literal":
		if v, err := strconv.ParseFloat(strings.TrimRight(strings.ReplaceAll(text, "_", ""), "fFdD"), 64); err == nil {
			return Literal{Value: v, Text: text}
		}
		return Raw{Text: text}
	case "true":
		return Literal{Value: true, Text: text}
	case "false":
		return Literal{Value: false, Text: text}
	case "null_literal":
		return Literal{Value: nil, Text: text}
	case "identifier", "scoped_identifier", "field_access":
		if parts, ok := e.nameParts(n); ok {
			return Name{Parts: parts, Text: text}
		}
		return Raw{Text: text}
	case "class_literal":
		if n.NamedChildCount() > 0 {
			return ClassLiteral{Type: e.text(n.NamedChild(0)), Text: text}
		}
		return Raw{Text: text}
	case "element_value_array_initializer", "array_initializer":
		arr := ArrayInit{Text: text}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "line_comment" || child.Type() == "block_comment" {
				continue
			}
			arr.Elements = append(arr.Elements, e.expr(child))
		}
		return arr
	case "binary_expression":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		op := n.ChildByFieldName("operator")
		if left == nil || right == nil || op == nil {
			return Raw{Text: text}
		}
		return Binary{Op: e.text(op), Left: e.expr(left), Right: e.expr(right), Text: text}
	case "parenthesized_expression":
		if n.NamedChildCount() == 1 {
			return e.expr(n.NamedChild(0))
		}
	}
	return Raw{Text: text}
}

// nameParts flattens identifier chains such as a.b.C.
func (e *extractor) nameParts(n *sitter.Node) ([]string, bool) {
	switch n.Type() {
	case "identifier", "type_identifier":
		return []string{e.text(n)}, true
	case "field_access":
		obj, field := n.ChildByFieldName("object"), n.ChildByFieldName("field")
		if obj == nil || field == nil {
			return nil, false
		}
		parts, ok := e.nameParts(obj)
		if !ok {
			return nil, false
		}
		return append(parts, e.text(field)), true
	case "scoped_identifier":
		scope, name := n.ChildByFieldName("scope"), n.ChildByFieldName("name")
		if scope == nil || name == nil {
			return nil, false
		}
		parts, ok := e.nameParts(scope)
		if !ok {
			return nil, false
		}
		return append(parts, e.text(name)), true
	}
	return nil, false
}

func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

func hasModifier(mods *sitter.Node, src []byte, keyword string) bool {
	for i := 0; i < int(mods.ChildCount()); i++ {
		if mods.Child(i).Content(src) == keyword {
			return true
		}
	}
	return false
}

func joinName(outer, name string) string {
	if outer == "" {
		return name
	}
	return outer + "." + name
}

func parseInt(text string) (int64, bool) {
	s := strings.TrimRight(strings.ReplaceAll(text, "_", ""), "lL")
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, s = 8, s[1:]
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// unquoteString decodes a Java string literal. Java escapes are a subset of
// Go's apart from octal forms, which fall back to the raw body.
func unquoteString(text string) string {
	if v, err := strconv.Unquote(text); err == nil {
		return v
	}
	return strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)
}

func unquoteChar(text string) string {
	if v, err := strconv.Unquote(text); err == nil {
		return v
	}
	return strings.TrimSuffix(strings.TrimPrefix(text, "'"), "'")
}

// unquoteTextBlock strips the """ delimiters and the common indentation.
func unquoteTextBlock(text string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`)
	body = strings.TrimPrefix(body, "\n")
	lines := strings.Split(body, "\n")
	indent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, l := range lines {
		if len(l) >= indent && indent > 0 {
			lines[i] = l[indent:]
		}
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}
