package serializer

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

// serializeType encodes the type grammar: primitive types as a plain
// string, composite types as a single-entry map keyed by their
// constructor.
func serializeType(t ast.Type) *docnode.Node {
	switch ty := t.(type) {
	case *ast.PrimitiveType:
		return docnode.String(ty.Kind.Name())
	case *ast.IdentifierType:
		return docnode.MapNode(docnode.NewMap().Set("identifier", docnode.String(ty.Name)))
	case *ast.SequenceType:
		return wrapType("sequence", ty.Inner)
	case *ast.FrozenArrayType:
		return wrapType("frozen_array", ty.Inner)
	case *ast.ObservableArrayType:
		return wrapType("observable_array", ty.Inner)
	case *ast.PromiseType:
		return wrapType("promise", ty.Inner)
	case *ast.NullableType:
		return wrapType("nullable", ty.Inner)
	case *ast.RecordType:
		inner := docnode.NewMap().
			Set("key", serializeType(ty.Key)).
			Set("value", serializeType(ty.Value))
		return docnode.MapNode(docnode.NewMap().Set("record", docnode.MapNode(inner)))
	case *ast.UnionType:
		items := make([]*docnode.Node, len(ty.Members))
		for i, member := range ty.Members {
			items[i] = serializeType(member)
		}
		return docnode.MapNode(docnode.NewMap().Set("union", docnode.List(items)))
	default:
		return docnode.Null()
	}
}

// nullableType encodes a Type that may be structurally absent (e.g. a
// single-parameter iterable/maplike key type), distinct from NullableType
// which wraps a present-but-nullable Web IDL type.
func nullableType(t ast.Type) *docnode.Node {
	if t == nil {
		return docnode.Null()
	}
	return serializeType(t)
}

func wrapType(tag string, inner ast.Type) *docnode.Node {
	return docnode.MapNode(docnode.NewMap().Set(tag, serializeType(inner)))
}
