package ast

// Type is the tagged union over primitive and composite type expressions.
type Type interface {
	Node
	typeNode()
}

// PrimitiveKind enumerates the leaf primitive types, including the
// multi-token compound forms (`unsigned short`, `unsigned long long`,
// `unrestricted double`, ...).
type PrimitiveKind int

const (
	PrimAny PrimitiveKind = iota
	PrimUndefined
	PrimBoolean
	PrimByte
	PrimOctet
	PrimShort
	PrimUnsignedShort
	PrimLong
	PrimUnsignedLong
	PrimLongLong
	PrimUnsignedLongLong
	PrimFloat
	PrimUnrestrictedFloat
	PrimDouble
	PrimUnrestrictedDouble
	PrimBigint
	PrimDOMString
	PrimByteString
	PrimUSVString
	PrimObject
	PrimSymbol
)

var primitiveNames = map[PrimitiveKind]string{
	PrimAny: "any", PrimUndefined: "undefined", PrimBoolean: "boolean",
	PrimByte: "byte", PrimOctet: "octet", PrimShort: "short",
	PrimUnsignedShort: "unsigned short", PrimLong: "long",
	PrimUnsignedLong: "unsigned long", PrimLongLong: "long long",
	PrimUnsignedLongLong: "unsigned long long", PrimFloat: "float",
	PrimUnrestrictedFloat: "unrestricted float", PrimDouble: "double",
	PrimUnrestrictedDouble: "unrestricted double", PrimBigint: "bigint",
	PrimDOMString: "DOMString", PrimByteString: "ByteString",
	PrimUSVString: "USVString", PrimObject: "object", PrimSymbol: "symbol",
}

// Name returns the canonical Web IDL spelling of the primitive kind.
func (k PrimitiveKind) Name() string { return primitiveNames[k] }

// PrimitiveType is a leaf type such as `long` or `unsigned long long`.
type PrimitiveType struct {
	Base
	Kind PrimitiveKind
}

func (*PrimitiveType) typeNode() {}

// IdentifierType is a reference to a user-defined type by name, possibly
// namespace-qualified ("Ns::Name", stored flat with "::" retained).
type IdentifierType struct {
	Base
	Name string
}

func (*IdentifierType) typeNode() {}

// SequenceType is `sequence<Inner>`.
type SequenceType struct {
	Base
	Inner Type
}

func (*SequenceType) typeNode() {}

// FrozenArrayType is `FrozenArray<Inner>`.
type FrozenArrayType struct {
	Base
	Inner Type
}

func (*FrozenArrayType) typeNode() {}

// ObservableArrayType is `ObservableArray<Inner>`.
type ObservableArrayType struct {
	Base
	Inner Type
}

func (*ObservableArrayType) typeNode() {}

// RecordType is `record<Key, Value>`. Key may be any type; the parser does
// not check that it is a string type.
type RecordType struct {
	Base
	Key   Type
	Value Type
}

func (*RecordType) typeNode() {}

// PromiseType is `Promise<Inner>`.
type PromiseType struct {
	Base
	Inner Type
}

func (*PromiseType) typeNode() {}

// NullableType is `Inner?`. The grammar admits at most one `?` per type
// position; this wrapper is never nested in another NullableType.
type NullableType struct {
	Base
	Inner Type
}

func (*NullableType) typeNode() {}

// UnionType is `(T1 or T2 or ...)`. Members are order-preserving; the
// parser never deduplicates.
type UnionType struct {
	Base
	Members []Type
}

func (*UnionType) typeNode() {}
