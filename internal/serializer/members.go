package serializer

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

func serializeMembers(members []ast.InterfaceMember) *docnode.Node {
	items := make([]*docnode.Node, len(members))
	for i, m := range members {
		items[i] = serializeMember(m)
	}
	return docnode.List(items)
}

func serializeMember(m ast.InterfaceMember) *docnode.Node {
	switch mem := m.(type) {
	case *ast.Attribute:
		return docnode.Single("attribute", serializeAttributeBody(mem))
	case *ast.Operation:
		return docnode.Single("operation", serializeOperationBody(mem))
	case *ast.Const:
		return docnode.Single("const", serializeConstBody(mem))
	case *ast.Constructor:
		return docnode.Single("constructor", serializeConstructorBody(mem))
	case *ast.Stringifier:
		return docnode.Single("stringifier", serializeStringifierBody(mem))
	case *ast.Iterable:
		return docnode.Single("iterable", serializeIterableBody(mem))
	case *ast.AsyncIterable:
		return docnode.Single("async_iterable", serializeAsyncIterableBody(mem))
	case *ast.Maplike:
		return docnode.Single("maplike", serializeMaplikeBody(mem))
	case *ast.Setlike:
		return docnode.Single("setlike", serializeSetlikeBody(mem))
	default:
		return docnode.Null()
	}
}

func serializeAttributeBody(a *ast.Attribute) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(a.Name)).
		Set("type", serializeType(a.Type)).
		Set("readonly", docnode.Bool(a.Readonly)).
		Set("static", docnode.Bool(a.Static)).
		Set("stringifier", docnode.Bool(a.Stringifier)).
		Set("inherit", docnode.Bool(a.Inherit)).
		Set("extended_attributes", serializeExtAttrList(a.ExtendedAttributes))
	return docnode.MapNode(m)
}

func serializeOperationBody(o *ast.Operation) *docnode.Node {
	m := docnode.NewMap().
		Set("name", nullableString(o.HasName, o.Name)).
		Set("return_type", serializeType(o.ReturnType)).
		Set("arguments", serializeArguments(o.Arguments)).
		Set("static", docnode.Bool(o.Static)).
		Set("special", docnode.String(specialKindName(o.Special))).
		Set("extended_attributes", serializeExtAttrList(o.ExtendedAttributes))
	return docnode.MapNode(m)
}

func specialKindName(k ast.SpecialKind) string {
	switch k {
	case ast.SpecialGetter:
		return "getter"
	case ast.SpecialSetter:
		return "setter"
	case ast.SpecialDeleter:
		return "deleter"
	case ast.SpecialStringifier:
		return "stringifier"
	default:
		return ""
	}
}

func serializeConstBody(c *ast.Const) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(c.Name)).
		Set("type", serializeType(c.Type)).
		Set("value", serializeValueOrNull(c.Value))
	return docnode.MapNode(m)
}

func serializeConstructorBody(c *ast.Constructor) *docnode.Node {
	m := docnode.NewMap().
		Set("arguments", serializeArguments(c.Arguments)).
		Set("extended_attributes", serializeExtAttrList(c.ExtendedAttributes))
	return docnode.MapNode(m)
}

// serializeStringifierBody follows the three stringifier forms: the
// keyword-only form emits the string "keyword"; the attribute and
// operation forms emit a map with the corresponding sub-member.
func serializeStringifierBody(s *ast.Stringifier) *docnode.Node {
	switch s.Tag {
	case ast.StringifierAttribute:
		return docnode.Single("attribute", serializeAttributeBody(s.Attr))
	case ast.StringifierOperation:
		return docnode.Single("operation", serializeOperationBody(s.Op))
	default:
		return docnode.String("keyword")
	}
}

func serializeIterableBody(it *ast.Iterable) *docnode.Node {
	m := docnode.NewMap().
		Set("key_type", nullableType(it.KeyType)).
		Set("value_type", serializeType(it.ValueType))
	return docnode.MapNode(m)
}

func serializeAsyncIterableBody(it *ast.AsyncIterable) *docnode.Node {
	m := docnode.NewMap().
		Set("key_type", nullableType(it.KeyType)).
		Set("value_type", serializeType(it.ValueType)).
		Set("arguments", serializeArguments(it.Arguments))
	return docnode.MapNode(m)
}

func serializeMaplikeBody(ml *ast.Maplike) *docnode.Node {
	m := docnode.NewMap().
		Set("key_type", serializeType(ml.KeyType)).
		Set("value_type", serializeType(ml.ValueType)).
		Set("readonly", docnode.Bool(ml.Readonly))
	return docnode.MapNode(m)
}

func serializeSetlikeBody(sl *ast.Setlike) *docnode.Node {
	m := docnode.NewMap().
		Set("value_type", serializeType(sl.ValueType)).
		Set("readonly", docnode.Bool(sl.Readonly))
	return docnode.MapNode(m)
}

func serializeDictionaryMember(m *ast.DictionaryMember) *docnode.Node {
	body := docnode.NewMap().
		Set("name", docnode.String(m.Name)).
		Set("type", serializeType(m.Type)).
		Set("required", docnode.Bool(m.Required)).
		Set("default_value", serializeValueOrNull(m.Default)).
		Set("extended_attributes", serializeExtAttrList(m.ExtendedAttributes))
	return docnode.MapNode(body)
}

func serializeArguments(args []*ast.Argument) *docnode.Node {
	items := make([]*docnode.Node, len(args))
	for i, a := range args {
		items[i] = serializeArgument(a)
	}
	return docnode.List(items)
}

func serializeArgument(a *ast.Argument) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(a.Name)).
		Set("type", serializeType(a.Type)).
		Set("optional", docnode.Bool(a.Optional)).
		Set("variadic", docnode.Bool(a.Variadic)).
		Set("default", serializeValueOrNull(a.Default)).
		Set("extended_attributes", serializeExtAttrList(a.ExtendedAttributes))
	return docnode.MapNode(m)
}
