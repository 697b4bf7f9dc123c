// Package token defines the lexical token vocabulary shared by the lexer
// and parser.
package token

import "fmt"

// Type identifies the lexical class of a Token.
type Type int

// Position locates a token within a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: its kind, its source text, and its
// starting position. Lexeme borrows from the source buffer passed to the
// lexer and is never mutated; the parser keeps lexeme strings as AST names
// and literal text.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Column int
}

// Pos returns the token's starting position.
func (t Token) Pos() Position {
	return Position{Line: t.Line, Column: t.Column}
}

const (
	ILLEGAL Type = iota
	EOF

	// Literals and identifiers.
	IDENT
	INT
	FLOAT
	STRING

	// Structural punctuation.
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;
	COLON     // :
	DOUBLE_COLON // ::
	LT        // <
	GT        // >
	QUESTION  // ?
	EQUALS    // =
	MINUS     // -
	ELLIPSIS  // ...
	ASTERISK  // *

	// Boolean/null/numeric sentinel keywords.
	TRUE
	FALSE
	NULL
	NAN
	INFINITY
	NEG_INFINITY

	// Declaration keywords.
	INTERFACE
	MIXIN
	PARTIAL
	DICTIONARY
	ENUM
	TYPEDEF
	NAMESPACE
	CALLBACK
	CONSTRUCTOR
	INCLUDES
	ATTRIBUTE
	READONLY
	CONST
	STATIC
	INHERIT
	GETTER
	SETTER
	DELETER
	STRINGIFIER
	ITERABLE
	ASYNC
	ASYNC_ITERABLE
	MAPLIKE
	SETLIKE
	REQUIRED
	OPTIONAL
	OR

	// Primitive type keywords.
	ANY
	UNDEFINED
	BOOLEAN
	BYTE
	OCTET
	SHORT
	LONG
	UNSIGNED
	FLOAT_KW
	DOUBLE
	UNRESTRICTED
	BIGINT
	DOMSTRING
	BYTESTRING
	USVSTRING
	OBJECT
	SYMBOL
	SEQUENCE
	FROZEN_ARRAY
	OBSERVABLE_ARRAY
	RECORD
	PROMISE

	// Legacy keywords.
	MODULE
	PRAGMA
	RAISES
	IN
)

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", STRING: "STRING",
	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}", COMMA: ",", SEMICOLON: ";",
	COLON: ":", DOUBLE_COLON: "::", LT: "<", GT: ">", QUESTION: "?",
	EQUALS: "=", MINUS: "-", ELLIPSIS: "...", ASTERISK: "*",
	TRUE: "true", FALSE: "false", NULL: "null", NAN: "NaN",
	INFINITY: "Infinity", NEG_INFINITY: "-Infinity",
	INTERFACE: "interface", MIXIN: "mixin", PARTIAL: "partial",
	DICTIONARY: "dictionary", ENUM: "enum", TYPEDEF: "typedef",
	NAMESPACE: "namespace", CALLBACK: "callback", CONSTRUCTOR: "constructor",
	INCLUDES: "includes", ATTRIBUTE: "attribute", READONLY: "readonly",
	CONST: "const", STATIC: "static", INHERIT: "inherit", GETTER: "getter",
	SETTER: "setter", DELETER: "deleter", STRINGIFIER: "stringifier",
	ITERABLE: "iterable", ASYNC: "async", ASYNC_ITERABLE: "async_iterable",
	MAPLIKE: "maplike", SETLIKE: "setlike", REQUIRED: "required",
	OPTIONAL: "optional", OR: "or",
	ANY: "any", UNDEFINED: "undefined", BOOLEAN: "boolean", BYTE: "byte",
	OCTET: "octet", SHORT: "short", LONG: "long", UNSIGNED: "unsigned",
	FLOAT_KW: "float", DOUBLE: "double", UNRESTRICTED: "unrestricted",
	BIGINT: "bigint", DOMSTRING: "DOMString", BYTESTRING: "ByteString",
	USVSTRING: "USVString", OBJECT: "object", SYMBOL: "symbol",
	SEQUENCE: "sequence", FROZEN_ARRAY: "FrozenArray",
	OBSERVABLE_ARRAY: "ObservableArray", RECORD: "record", PROMISE: "Promise",
	MODULE: "module", PRAGMA: "pragma", RAISES: "raises", IN: "in",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps keyword lexemes to their token type. Identifiers are
// reclassified against this table once scanned.
var Keywords = map[string]Type{
	"true": TRUE, "false": FALSE, "null": NULL, "NaN": NAN,
	"Infinity": INFINITY,
	"interface": INTERFACE, "mixin": MIXIN, "partial": PARTIAL,
	"dictionary": DICTIONARY, "enum": ENUM, "typedef": TYPEDEF,
	"namespace": NAMESPACE, "callback": CALLBACK, "constructor": CONSTRUCTOR,
	"includes": INCLUDES, "attribute": ATTRIBUTE, "readonly": READONLY,
	"const": CONST, "static": STATIC, "inherit": INHERIT, "getter": GETTER,
	"setter": SETTER, "deleter": DELETER, "stringifier": STRINGIFIER,
	"iterable": ITERABLE, "async": ASYNC, "async_iterable": ASYNC_ITERABLE,
	"maplike": MAPLIKE, "setlike": SETLIKE, "required": REQUIRED,
	"optional": OPTIONAL, "or": OR,
	"any": ANY, "undefined": UNDEFINED, "boolean": BOOLEAN, "byte": BYTE,
	"octet": OCTET, "short": SHORT, "long": LONG, "unsigned": UNSIGNED,
	"float": FLOAT_KW, "double": DOUBLE, "unrestricted": UNRESTRICTED,
	"bigint": BIGINT, "DOMString": DOMSTRING, "ByteString": BYTESTRING,
	"USVString": USVSTRING, "object": OBJECT, "symbol": SYMBOL,
	"sequence": SEQUENCE, "FrozenArray": FROZEN_ARRAY,
	"ObservableArray": OBSERVABLE_ARRAY, "record": RECORD, "Promise": PROMISE,
	"module": MODULE, "pragma": PRAGMA, "raises": RAISES, "in": IN,
}

// IdentifierLike is the set of keyword token types the parser accepts in
// name-bearing positions (attribute/argument/operation names, the RHS of a
// namespace qualifier). It spans every declaration keyword, every type
// keyword, and the legacy tokens allowed there.
var IdentifierLike = map[Type]bool{
	INTERFACE: true, MIXIN: true, PARTIAL: true, DICTIONARY: true,
	ENUM: true, TYPEDEF: true, NAMESPACE: true, CALLBACK: true,
	CONSTRUCTOR: true, INCLUDES: true, ATTRIBUTE: true, READONLY: true,
	CONST: true, STATIC: true, INHERIT: true, GETTER: true, SETTER: true,
	DELETER: true, STRINGIFIER: true, ITERABLE: true, ASYNC: true,
	ASYNC_ITERABLE: true, MAPLIKE: true, SETLIKE: true, REQUIRED: true,
	OPTIONAL: true,
	ANY: true, UNDEFINED: true, BOOLEAN: true, BYTE: true, OCTET: true,
	SHORT: true, LONG: true, UNSIGNED: true, FLOAT_KW: true, DOUBLE: true,
	UNRESTRICTED: true, BIGINT: true, DOMSTRING: true, BYTESTRING: true,
	USVSTRING: true, OBJECT: true, SYMBOL: true, SEQUENCE: true,
	FROZEN_ARRAY: true, OBSERVABLE_ARRAY: true, RECORD: true, PROMISE: true,
	MODULE: true, PRAGMA: true, RAISES: true, IN: true,
}

// IsNameToken reports whether tok can be consumed as a name in a
// name-bearing position: an IDENT, or one of the keywords in
// IdentifierLike.
func IsNameToken(t Type) bool {
	return t == IDENT || IdentifierLike[t]
}
