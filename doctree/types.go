package doctree

import (
	"errors"
	"fmt"
)

// ErrUnknownType indicates a node type name that is not part of [Type].
var ErrUnknownType = errors.New("unknown node type")

// Type identifies the kind of a [Node]. The set of types is closed.
type Type int

// Structural types.
const (
	// Invalid is the zero Type and never appears in a built tree.
	Invalid Type = iota

	// Javadoc is the root of every comment tree.
	Javadoc
	// EOF is the last child of the root.
	EOF
	// Newline separates two comment lines.
	Newline
	// LeadingAsterisk is the optional "*" decoration at the start of a line,
	// including the indentation before it.
	LeadingAsterisk
	// WS is a whitespace run that separates structural nodes.
	WS
	// Text is a plain text run.
	Text
	// Description holds the free text of a block or inline tag.
	Description

	// JavadocTag is a block tag such as "@param x the x".
	JavadocTag
	AuthorLiteral
	DeprecatedLiteral
	ExceptionLiteral
	ParamLiteral
	ReturnLiteral
	SeeLiteral
	SerialLiteral
	SerialDataLiteral
	SerialFieldLiteral
	SinceLiteral
	ThrowsLiteral
	VersionLiteral
	// CustomName is the name of an unknown block or inline tag.
	CustomName

	ParameterName
	ClassName
	FieldName
	FieldType
	LiteralInclude
	LiteralExclude
	// String is a quoted "@see" target.
	String
	// Reference is a program element reference such as "Foo#bar(int)".
	Reference
	PackageClass
	Hash
	Member
	Parameters

	// JavadocInlineTag is an inline tag such as "{@code x}".
	JavadocInlineTag
	JavadocInlineTagStart
	JavadocInlineTagEnd
	CodeLiteral
	DocRootLiteral
	InheritDocLiteral
	LinkLiteral
	LinkplainLiteral
	LiteralLiteral
	ValueLiteral

	// HTMLElement is a markup element. It holds an [HTMLElementStart], the
	// element content, and an [HTMLElementEnd] when the element was closed
	// explicitly.
	HTMLElement
	HTMLElementStart
	HTMLElementEnd
	HTMLTagName
	Attribute
	Equals
	AttrValue
	// Start is the "<" of a markup tag.
	Start
	// Slash is the "/" of a closing markup tag.
	Slash
	// End is the ">" of a markup tag.
	End
	// SlashEnd is the "/>" of a self-closing markup tag.
	SlashEnd
	HTMLComment

	numTypes
)

var typeNames = [numTypes]string{
	Invalid:               "INVALID",
	Javadoc:               "JAVADOC",
	EOF:                   "EOF",
	Newline:               "NEWLINE",
	LeadingAsterisk:       "LEADING_ASTERISK",
	WS:                    "WS",
	Text:                  "TEXT",
	Description:           "DESCRIPTION",
	JavadocTag:            "JAVADOC_TAG",
	AuthorLiteral:         "AUTHOR_LITERAL",
	DeprecatedLiteral:     "DEPRECATED_LITERAL",
	ExceptionLiteral:      "EXCEPTION_LITERAL",
	ParamLiteral:          "PARAM_LITERAL",
	ReturnLiteral:         "RETURN_LITERAL",
	SeeLiteral:            "SEE_LITERAL",
	SerialLiteral:         "SERIAL_LITERAL",
	SerialDataLiteral:     "SERIAL_DATA_LITERAL",
	SerialFieldLiteral:    "SERIAL_FIELD_LITERAL",
	SinceLiteral:          "SINCE_LITERAL",
	ThrowsLiteral:         "THROWS_LITERAL",
	VersionLiteral:        "VERSION_LITERAL",
	CustomName:            "CUSTOM_NAME",
	ParameterName:         "PARAMETER_NAME",
	ClassName:             "CLASS_NAME",
	FieldName:             "FIELD_NAME",
	FieldType:             "FIELD_TYPE",
	LiteralInclude:        "LITERAL_INCLUDE",
	LiteralExclude:        "LITERAL_EXCLUDE",
	String:                "STRING",
	Reference:             "REFERENCE",
	PackageClass:          "PACKAGE_CLASS",
	Hash:                  "HASH",
	Member:                "MEMBER",
	Parameters:            "PARAMETERS",
	JavadocInlineTag:      "JAVADOC_INLINE_TAG",
	JavadocInlineTagStart: "JAVADOC_INLINE_TAG_START",
	JavadocInlineTagEnd:   "JAVADOC_INLINE_TAG_END",
	CodeLiteral:           "CODE_LITERAL",
	DocRootLiteral:        "DOC_ROOT_LITERAL",
	InheritDocLiteral:     "INHERIT_DOC_LITERAL",
	LinkLiteral:           "LINK_LITERAL",
	LinkplainLiteral:      "LINKPLAIN_LITERAL",
	LiteralLiteral:        "LITERAL_LITERAL",
	ValueLiteral:          "VALUE_LITERAL",
	HTMLElement:           "HTML_ELEMENT",
	HTMLElementStart:      "HTML_ELEMENT_START",
	HTMLElementEnd:        "HTML_ELEMENT_END",
	HTMLTagName:           "HTML_TAG_NAME",
	Attribute:             "ATTRIBUTE",
	Equals:                "EQUALS",
	AttrValue:             "ATTR_VALUE",
	Start:                 "START",
	Slash:                 "SLASH",
	End:                   "END",
	SlashEnd:              "SLASH_END",
	HTMLComment:           "HTML_COMMENT",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, numTypes)
	for t := Javadoc; t < numTypes; t++ {
		name := typeNames[t]
		if name == "" {
			panic(fmt.Sprintf("doctree: missing name for type %d", int(t)))
		}

		m[name] = t
	}

	return m
}()

// String returns the upper-snake name of t, e.g. "JAVADOC_TAG".
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// Valid reports whether t is a member of the closed type set.
func (t Type) Valid() bool {
	return t > Invalid && t < numTypes
}

// ParseType returns the [Type] with the given name.
func ParseType(name string) (Type, error) {
	t, ok := typesByName[name]
	if !ok {
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return t, nil
}

// AllTypes returns every valid [Type] in declaration order.
func AllTypes() []Type {
	types := make([]Type, 0, numTypes-1)
	for t := Javadoc; t < numTypes; t++ {
		types = append(types, t)
	}

	return types
}
