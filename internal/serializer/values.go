package serializer

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

func serializeValueOrNull(v ast.Value) *docnode.Node {
	if v == nil {
		return docnode.Null()
	}
	return serializeValue(v)
}

// serializeValue encodes the Value grammar: integer and float
// values keep their original lexeme alongside the numeric value; strings
// encode as plain strings; the sentinel literals encode as their literal
// spelling; empty sequence/dictionary encode as an empty list/map.
func serializeValue(v ast.Value) *docnode.Node {
	switch val := v.(type) {
	case *ast.NullValue:
		return docnode.Null()
	case *ast.BoolValue:
		return docnode.Bool(val.Value)
	case *ast.IntValue:
		return docnode.MapNode(docnode.NewMap().
			Set("value", docnode.Int(val.Value)).
			Set("lexeme", docnode.String(val.Lexeme)))
	case *ast.FloatValue:
		return docnode.MapNode(docnode.NewMap().
			Set("value", docnode.Float(val.Value)).
			Set("lexeme", docnode.String(val.Lexeme)))
	case *ast.StringValue:
		return docnode.String(val.Value)
	case *ast.EmptySequenceValue:
		return docnode.List(nil)
	case *ast.EmptyDictionaryValue:
		return docnode.MapNode(docnode.NewMap())
	case *ast.InfinityValue:
		return docnode.String("Infinity")
	case *ast.NegInfinityValue:
		return docnode.String("-Infinity")
	case *ast.NaNValue:
		return docnode.String("NaN")
	default:
		return docnode.Null()
	}
}

func serializeExtAttrList(attrs []*ast.ExtendedAttribute) *docnode.Node {
	items := make([]*docnode.Node, len(attrs))
	for i, a := range attrs {
		items[i] = serializeExtAttr(a)
	}
	return docnode.List(items)
}

func serializeExtAttr(ea *ast.ExtendedAttribute) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(ea.Name)).
		Set("value", serializeExtAttrValue(ea.Value))
	return docnode.MapNode(m)
}

// serializeExtAttrValue encodes the ExtendedAttrValue grammar:
// identifier -> {"identifier": ...}; identifier-list ->
// {"identifier_list": [...]}; argument-list -> {"argument_list": [...]};
// named-argument list -> {"named_argument_list": {"name": ..., "arguments":
// [...]}}. An attribute with no value encodes as null.
func serializeExtAttrValue(v ast.ExtendedAttrValue) *docnode.Node {
	if v == nil {
		return docnode.Null()
	}
	switch val := v.(type) {
	case *ast.ExtAttrIdentifier:
		return docnode.MapNode(docnode.NewMap().Set("identifier", docnode.String(val.Identifier)))
	case *ast.ExtAttrIdentifierList:
		items := make([]*docnode.Node, len(val.Items))
		for i, s := range val.Items {
			items[i] = docnode.String(s)
		}
		return docnode.MapNode(docnode.NewMap().Set("identifier_list", docnode.List(items)))
	case *ast.ExtAttrArgumentList:
		return docnode.MapNode(docnode.NewMap().Set("argument_list", serializeArguments(val.Arguments)))
	case *ast.ExtAttrNamedArgumentList:
		inner := docnode.NewMap().
			Set("name", docnode.String(val.Name)).
			Set("arguments", serializeArguments(val.Arguments))
		return docnode.MapNode(docnode.NewMap().Set("named_argument_list", docnode.MapNode(inner)))
	default:
		return docnode.Null()
	}
}
