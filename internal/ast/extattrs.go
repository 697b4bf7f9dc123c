package ast

// ExtendedAttribute is one entry of a bracketed `[...]` annotation list.
// Value is nil when the attribute carries no value (e.g. `[Clamp]`).
type ExtendedAttribute struct {
	Base
	Name  string
	Value ExtendedAttrValue
}

// ExtendedAttrValue is the tagged union over extended-attribute value forms.
type ExtendedAttrValue interface {
	Node
	extendedAttrValueNode()
}

// ExtAttrIdentifier is `Name = Ident` (also covers `Name = *`, `Name =
// "literal"`, `Name = 42`, `Name = 1.0`: the RHS is stored as its literal
// text).
type ExtAttrIdentifier struct {
	Base
	Identifier string
}

func (*ExtAttrIdentifier) extendedAttrValueNode() {}

// ExtAttrIdentifierList is `Name = ( a, b, c )`, an identifier/literal list.
type ExtAttrIdentifierList struct {
	Base
	Items []string
}

func (*ExtAttrIdentifierList) extendedAttrValueNode() {}

// ExtAttrArgumentList is `Name ( args )` or `Name = ( args )` when the
// parenthesized contents parse as an argument list rather than a plain
// identifier/literal list.
type ExtAttrArgumentList struct {
	Base
	Arguments []*Argument
}

func (*ExtAttrArgumentList) extendedAttrValueNode() {}

// ExtAttrNamedArgumentList is `Name = ( args ) Ident` or `Name = Ident (
// args )`.
type ExtAttrNamedArgumentList struct {
	Base
	Name      string
	Arguments []*Argument
}

func (*ExtAttrNamedArgumentList) extendedAttrValueNode() {}
