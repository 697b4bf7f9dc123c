// Package ast defines the abstract syntax tree produced by
// internal/parser from Web IDL source text.
//
// Every node exposes its source Position for diagnostics. Ownership of
// child nodes is purely structural: a parent's struct fields hold its
// children by pointer or by slice, and the Go garbage collector reclaims
// them once the Document that roots the tree is no longer referenced.
// There is no manual Free/Dispose path. Identifiers and literals are not
// copied: they are substrings of the source text taken from the lexer's
// lexemes (see internal/parser). Go strings are immutable, so the AST stays
// valid after the token stream is dropped.
package ast

import "github.com/zig-whatwg/webidl-sub002/internal/token"

// Node is implemented by every AST entity.
type Node interface {
	Pos() token.Position
}

// Document is the root of the tree: an ordered list of top-level
// Definitions.
type Document struct {
	Definitions []Definition
}

func (d *Document) Pos() token.Position {
	if len(d.Definitions) > 0 {
		return d.Definitions[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Definition is the tagged union over top-level IDL units.
type Definition interface {
	Node
	definitionNode()
}

// Base carries the position shared by most node structs.
type Base struct {
	Position token.Position
}

func (b Base) Pos() token.Position { return b.Position }

// Interface is a `interface Name : Parent { members... };` declaration, or
// a forward declaration `interface Name;` (Members is empty in that case).
type Interface struct {
	Base
	Name                string
	Inherits            string // "" when absent
	HasInherits          bool
	Partial             bool
	ExtendedAttributes  []*ExtendedAttribute
	Members             []InterfaceMember
}

func (*Interface) definitionNode() {}

// InterfaceMixin is `interface mixin Name { members... };`.
type InterfaceMixin struct {
	Base
	Name               string
	Partial            bool
	ExtendedAttributes []*ExtendedAttribute
	Members            []InterfaceMember
}

func (*InterfaceMixin) definitionNode() {}

// Dictionary is `dictionary Name : Parent { members... };`.
type Dictionary struct {
	Base
	Name               string
	Inherits           string
	HasInherits        bool
	Partial            bool
	ExtendedAttributes []*ExtendedAttribute
	Members            []*DictionaryMember
}

func (*Dictionary) definitionNode() {}

// Enum is `enum Name { "a", "b" };`. Values are stored without their
// surrounding quotes.
type Enum struct {
	Base
	Name               string
	Values             []string
	ExtendedAttributes []*ExtendedAttribute
}

func (*Enum) definitionNode() {}

// Typedef is `typedef Type Name;`.
type Typedef struct {
	Base
	Name               string
	Type               Type
	ExtendedAttributes []*ExtendedAttribute
}

func (*Typedef) definitionNode() {}

// Callback is `callback Name = ReturnType (args);`.
type Callback struct {
	Base
	Name               string
	ReturnType         Type
	Arguments          []*Argument
	ExtendedAttributes []*ExtendedAttribute
}

func (*Callback) definitionNode() {}

// CallbackInterface is `callback interface Name { members... };`. It shares
// the interface member grammar.
type CallbackInterface struct {
	Base
	Name               string
	ExtendedAttributes []*ExtendedAttribute
	Members            []InterfaceMember
}

func (*CallbackInterface) definitionNode() {}

// Namespace is `namespace Name { members... };`.
type Namespace struct {
	Base
	Name               string
	Partial            bool
	ExtendedAttributes []*ExtendedAttribute
	Members            []InterfaceMember
}

func (*Namespace) definitionNode() {}

// Includes is `Interface includes Mixin;`.
type Includes struct {
	Base
	Interface string
	Mixin     string
}

func (*Includes) definitionNode() {}
