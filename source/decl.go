package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"go.jacobcolvin.com/doclint/doctree"
)

// kinds maps grammar node types to declaration kinds.
var kinds = map[string]doctree.DeclKind{
	"package_declaration":                 doctree.DeclPackage,
	"class_declaration":                   doctree.DeclClass,
	"interface_declaration":               doctree.DeclInterface,
	"enum_declaration":                    doctree.DeclEnum,
	"record_declaration":                  doctree.DeclRecord,
	"annotation_type_declaration":         doctree.DeclAnnotation,
	"method_declaration":                  doctree.DeclMethod,
	"constructor_declaration":             doctree.DeclConstructor,
	"compact_constructor_declaration":     doctree.DeclConstructor,
	"field_declaration":                   doctree.DeclField,
	"constant_declaration":                doctree.DeclField,
	"enum_constant":                       doctree.DeclEnumConstant,
	"annotation_type_element_declaration": doctree.DeclAnnotationField,
	"local_variable_declaration":          doctree.DeclLocalVariable,
}

// Declaration is the program element a documentation comment is attached
// to. It implements [doctree.Declaration].
type Declaration struct {
	name       string
	returnType string
	modifiers  []string
	typeParams []string
	params     []string
	kind       doctree.DeclKind
}

// Kind returns the declaration kind, or [doctree.DeclUnknown].
func (d *Declaration) Kind() doctree.DeclKind { return d.kind }

// Name returns the declared name. Fields and local variables declaring
// several variables are named after the first.
func (d *Declaration) Name() string { return d.name }

// Modifiers returns the modifier keywords in source order. Annotations are
// not included.
func (d *Declaration) Modifiers() []string { return d.modifiers }

// TypeParameters returns the type parameter names.
func (d *Declaration) TypeParameters() []string { return d.typeParams }

// Parameters returns the parameter names of methods, constructors and
// records.
func (d *Declaration) Parameters() []string { return d.params }

// ReturnType returns the return type of methods and annotation elements as
// written, with runs of whitespace collapsed to one space.
func (d *Declaration) ReturnType() string { return d.returnType }

// declare describes the declaration node n. A nil or non-declaration node
// gives an unknown declaration.
func declare(n *sitter.Node, src []byte) *Declaration {
	if n == nil {
		return &Declaration{}
	}

	kind, ok := kinds[n.Type()]
	if !ok {
		return &Declaration{}
	}

	d := &Declaration{kind: kind}

	switch kind {
	case doctree.DeclPackage:
		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c.Type() == "scoped_identifier" || c.Type() == "identifier" {
				d.name = c.Content(src)

				break
			}
		}

		return d

	case doctree.DeclField, doctree.DeclLocalVariable:
		if v := n.ChildByFieldName("declarator"); v != nil {
			d.name = field(v, "name", src)
		}

	case doctree.DeclMethod, doctree.DeclAnnotationField:
		d.name = field(n, "name", src)
		d.returnType = strings.Join(strings.Fields(field(n, "type", src)), " ")

	default:
		d.name = field(n, "name", src)
	}

	d.modifiers = modifiers(n, src)
	d.typeParams = typeParams(n.ChildByFieldName("type_parameters"), src)
	d.params = params(n.ChildByFieldName("parameters"), src)

	return d
}

func field(n *sitter.Node, name string, src []byte) string {
	c := n.ChildByFieldName(name)
	if c == nil {
		return ""
	}

	return c.Content(src)
}

// modifiers returns the keywords of the modifiers child of n.
func modifiers(n *sitter.Node, src []byte) []string {
	var out []string

	for i := range int(n.NamedChildCount()) {
		m := n.NamedChild(i)
		if m.Type() != "modifiers" {
			continue
		}

		for j := range int(m.ChildCount()) {
			if k := m.Child(j); !k.IsNamed() {
				out = append(out, k.Content(src))
			}
		}
	}

	return out
}

func typeParams(n *sitter.Node, src []byte) []string {
	if n == nil {
		return nil
	}

	var out []string

	for i := range int(n.NamedChildCount()) {
		p := n.NamedChild(i)
		if p.Type() != "type_parameter" {
			continue
		}

		for j := range int(p.NamedChildCount()) {
			c := p.NamedChild(j)
			if c.Type() == "type_identifier" || c.Type() == "identifier" {
				out = append(out, c.Content(src))

				break
			}
		}
	}

	return out
}

// params returns the parameter names of a formal_parameters node. The
// receiver parameter is not a parameter.
func params(n *sitter.Node, src []byte) []string {
	if n == nil {
		return nil
	}

	var out []string

	for i := range int(n.NamedChildCount()) {
		p := n.NamedChild(i)

		switch p.Type() {
		case "formal_parameter":
			out = append(out, field(p, "name", src))

		case "spread_parameter":
			for j := range int(p.NamedChildCount()) {
				if v := p.NamedChild(j); v.Type() == "variable_declarator" {
					out = append(out, field(v, "name", src))
				}
			}
		}
	}

	return out
}
