package doctree

import (
	"fmt"
	"slices"
)

// DeclKind is the kind of declaration a documentation comment is attached to.
type DeclKind int

// Declaration kinds.
const (
	DeclUnknown DeclKind = iota
	DeclPackage
	DeclClass
	DeclInterface
	DeclEnum
	DeclRecord
	DeclAnnotation
	DeclMethod
	DeclConstructor
	DeclField
	DeclEnumConstant
	DeclAnnotationField
	DeclLocalVariable
)

var declKindNames = map[DeclKind]string{
	DeclUnknown:         "unknown",
	DeclPackage:         "package",
	DeclClass:           "class",
	DeclInterface:       "interface",
	DeclEnum:            "enum",
	DeclRecord:          "record",
	DeclAnnotation:      "annotation",
	DeclMethod:          "method",
	DeclConstructor:     "constructor",
	DeclField:           "field",
	DeclEnumConstant:    "enum constant",
	DeclAnnotationField: "annotation field",
	DeclLocalVariable:   "local variable",
}

func (k DeclKind) String() string {
	if name, ok := declKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("DeclKind(%d)", int(k))
}

// IsType reports whether k declares a type.
func (k DeclKind) IsType() bool {
	switch k {
	case DeclClass, DeclInterface, DeclEnum, DeclRecord, DeclAnnotation:
		return true
	default:
		return false
	}
}

// Declaration describes the program element a comment documents. The
// analysis core passes declarations through without looking at them; checks
// that care about the documented element type-assert to this interface.
type Declaration interface {
	Kind() DeclKind
	Name() string
	Modifiers() []string
	TypeParameters() []string
	Parameters() []string
	// ReturnType is empty for declarations without one.
	ReturnType() string
}

// TagKind separates block tags from inline tags.
type TagKind int

const (
	BlockTag TagKind = iota
	InlineTag
)

// Tag is one of the standard documentation tags.
type Tag int

// Block tags.
const (
	TagAuthor Tag = iota
	TagDeprecated
	TagException
	TagParam
	TagReturn
	TagSee
	TagSerial
	TagSerialData
	TagSerialField
	TagSince
	TagThrows
	TagVersion

	// Inline tags.
	TagCode
	TagDocRoot
	TagInheritDoc
	TagLink
	TagLinkplain
	TagLiteral
	TagValue

	numTags
)

type tagInfo struct {
	valid   func(d Declaration) bool
	name    string
	literal Type
	kind    TagKind
}

var serialDataMethods = []string{
	"writeObject", "readObject", "writeExternal", "readExternal",
	"writeReplace", "readResolve",
}

var tagInfos = [numTags]tagInfo{
	TagAuthor:      {name: "author", kind: BlockTag, literal: AuthorLiteral, valid: onTypeOrPackage},
	TagDeprecated:  {name: "deprecated", kind: BlockTag, literal: DeprecatedLiteral, valid: onNonLocal},
	TagException:   {name: "exception", kind: BlockTag, literal: ExceptionLiteral, valid: onCallable},
	TagParam:       {name: "param", kind: BlockTag, literal: ParamLiteral, valid: onParameterized},
	TagReturn:      {name: "return", kind: BlockTag, literal: ReturnLiteral, valid: onValueMethod},
	TagSee:         {name: "see", kind: BlockTag, literal: SeeLiteral, valid: onNonLocal},
	TagSerial:      {name: "serial", kind: BlockTag, literal: SerialLiteral, valid: onField},
	TagSerialData:  {name: "serialData", kind: BlockTag, literal: SerialDataLiteral, valid: onSerialMethod},
	TagSerialField: {name: "serialField", kind: BlockTag, literal: SerialFieldLiteral, valid: onField},
	TagSince:       {name: "since", kind: BlockTag, literal: SinceLiteral, valid: onNonLocal},
	TagThrows:      {name: "throws", kind: BlockTag, literal: ThrowsLiteral, valid: onCallable},
	TagVersion:     {name: "version", kind: BlockTag, literal: VersionLiteral, valid: onTypeOrPackage},
	TagCode:        {name: "code", kind: InlineTag, literal: CodeLiteral, valid: onNonLocal},
	TagDocRoot:     {name: "docRoot", kind: InlineTag, literal: DocRootLiteral, valid: onNonLocal},
	TagInheritDoc:  {name: "inheritDoc", kind: InlineTag, literal: InheritDocLiteral, valid: onOverridable},
	TagLink:        {name: "link", kind: InlineTag, literal: LinkLiteral, valid: onNonLocal},
	TagLinkplain:   {name: "linkplain", kind: InlineTag, literal: LinkplainLiteral, valid: onNonLocal},
	TagLiteral:     {name: "literal", kind: InlineTag, literal: LiteralLiteral, valid: onNonLocal},
	TagValue:       {name: "value", kind: InlineTag, literal: ValueLiteral, valid: onNonLocal},
}

// LookupTag returns the tag of the given kind with the given name, without
// the leading "@".
func LookupTag(kind TagKind, name string) (Tag, bool) {
	for t := range numTags {
		if tagInfos[t].kind == kind && tagInfos[t].name == name {
			return t, true
		}
	}

	return 0, false
}

// TagForLiteral returns the tag whose literal node type is lit.
func TagForLiteral(lit Type) (Tag, bool) {
	for t := range numTags {
		if tagInfos[t].literal == lit {
			return t, true
		}
	}

	return 0, false
}

// Name returns the tag name without "@", e.g. "param".
func (t Tag) Name() string { return tagInfos[t].name }

// Kind reports whether t is a block or inline tag.
func (t Tag) Kind() TagKind { return tagInfos[t].kind }

// Literal returns the node type the parser uses for the tag name.
func (t Tag) Literal() Type { return tagInfos[t].literal }

// String returns the tag as written in a comment, e.g. "@param".
func (t Tag) String() string { return "@" + t.Name() }

// ValidOn reports whether tag t may document d.
func ValidOn(t Tag, d Declaration) bool {
	if d == nil {
		return false
	}

	return tagInfos[t].valid(d)
}

func onTypeOrPackage(d Declaration) bool {
	return d.Kind() == DeclPackage || d.Kind().IsType()
}

func onNonLocal(d Declaration) bool {
	return d.Kind() != DeclLocalVariable && d.Kind() != DeclUnknown
}

func onCallable(d Declaration) bool {
	return d.Kind() == DeclMethod || d.Kind() == DeclConstructor
}

func onParameterized(d Declaration) bool {
	switch d.Kind() {
	case DeclClass, DeclInterface, DeclRecord, DeclMethod, DeclConstructor:
		return true
	default:
		return false
	}
}

func onValueMethod(d Declaration) bool {
	if d.Kind() == DeclAnnotationField {
		return true
	}

	return d.Kind() == DeclMethod && d.ReturnType() != "void"
}

func onField(d Declaration) bool {
	return d.Kind() == DeclField
}

func onSerialMethod(d Declaration) bool {
	return d.Kind() == DeclMethod && slices.Contains(serialDataMethods, d.Name())
}

func onOverridable(d Declaration) bool {
	if d.Kind() != DeclMethod {
		return false
	}

	mods := d.Modifiers()

	return !slices.Contains(mods, "static") && !slices.Contains(mods, "private")
}
