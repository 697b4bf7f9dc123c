// Package serializer walks an internal/ast.Document and maps it into an
// internal/docnode document tree, following a fixed canonical encoding:
// every AST node walk generalizes the familiar recursive-descent
// String()-building pattern from string output to document-tree output.
//
// Serialize is pure: it never mutates or consumes the AST, never depends
// on global state, and never fails (the document tree it builds owns
// every string and composite it produces).
package serializer

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

// Serialize converts doc into its canonical document tree.
func Serialize(doc *ast.Document) *docnode.Node {
	items := make([]*docnode.Node, len(doc.Definitions))
	for i, d := range doc.Definitions {
		items[i] = serializeDefinition(d)
	}
	root := docnode.NewMap().Set("definitions", docnode.List(items))
	return docnode.MapNode(root)
}

func serializeDefinition(d ast.Definition) *docnode.Node {
	switch def := d.(type) {
	case *ast.Interface:
		return docnode.Single("interface", serializeInterfaceBody(def))
	case *ast.InterfaceMixin:
		return docnode.Single("interface_mixin", serializeMixinBody(def))
	case *ast.Dictionary:
		return docnode.Single("dictionary", serializeDictionaryBody(def))
	case *ast.Enum:
		return docnode.Single("enum", serializeEnumBody(def))
	case *ast.Typedef:
		return docnode.Single("typedef", serializeTypedefBody(def))
	case *ast.Callback:
		return docnode.Single("callback", serializeCallbackBody(def))
	case *ast.CallbackInterface:
		return docnode.Single("callback_interface", serializeCallbackInterfaceBody(def))
	case *ast.Namespace:
		return docnode.Single("namespace", serializeNamespaceBody(def))
	case *ast.Includes:
		return docnode.Single("includes", serializeIncludesBody(def))
	default:
		return docnode.Null()
	}
}

func serializeInterfaceBody(it *ast.Interface) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(it.Name)).
		Set("inherits", nullableString(it.HasInherits, it.Inherits)).
		Set("partial", docnode.Bool(it.Partial)).
		Set("extended_attributes", serializeExtAttrList(it.ExtendedAttributes)).
		Set("members", serializeMembers(it.Members))
	return docnode.MapNode(m)
}

func serializeMixinBody(mx *ast.InterfaceMixin) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(mx.Name)).
		Set("partial", docnode.Bool(mx.Partial)).
		Set("extended_attributes", serializeExtAttrList(mx.ExtendedAttributes)).
		Set("members", serializeMembers(mx.Members))
	return docnode.MapNode(m)
}

func serializeDictionaryBody(d *ast.Dictionary) *docnode.Node {
	items := make([]*docnode.Node, len(d.Members))
	for i, mem := range d.Members {
		items[i] = serializeDictionaryMember(mem)
	}
	m := docnode.NewMap().
		Set("name", docnode.String(d.Name)).
		Set("inherits", nullableString(d.HasInherits, d.Inherits)).
		Set("partial", docnode.Bool(d.Partial)).
		Set("extended_attributes", serializeExtAttrList(d.ExtendedAttributes)).
		Set("members", docnode.List(items))
	return docnode.MapNode(m)
}

func serializeEnumBody(e *ast.Enum) *docnode.Node {
	values := make([]*docnode.Node, len(e.Values))
	for i, v := range e.Values {
		values[i] = docnode.String(v)
	}
	m := docnode.NewMap().
		Set("name", docnode.String(e.Name)).
		Set("values", docnode.List(values)).
		Set("extended_attributes", serializeExtAttrList(e.ExtendedAttributes))
	return docnode.MapNode(m)
}

func serializeTypedefBody(t *ast.Typedef) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(t.Name)).
		Set("type", serializeType(t.Type)).
		Set("extended_attributes", serializeExtAttrList(t.ExtendedAttributes))
	return docnode.MapNode(m)
}

func serializeCallbackBody(c *ast.Callback) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(c.Name)).
		Set("return_type", serializeType(c.ReturnType)).
		Set("arguments", serializeArguments(c.Arguments)).
		Set("extended_attributes", serializeExtAttrList(c.ExtendedAttributes))
	return docnode.MapNode(m)
}

func serializeCallbackInterfaceBody(ci *ast.CallbackInterface) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(ci.Name)).
		Set("extended_attributes", serializeExtAttrList(ci.ExtendedAttributes)).
		Set("members", serializeMembers(ci.Members))
	return docnode.MapNode(m)
}

func serializeNamespaceBody(n *ast.Namespace) *docnode.Node {
	m := docnode.NewMap().
		Set("name", docnode.String(n.Name)).
		Set("partial", docnode.Bool(n.Partial)).
		Set("extended_attributes", serializeExtAttrList(n.ExtendedAttributes)).
		Set("members", serializeMembers(n.Members))
	return docnode.MapNode(m)
}

func serializeIncludesBody(i *ast.Includes) *docnode.Node {
	m := docnode.NewMap().
		Set("interface", docnode.String(i.Interface)).
		Set("mixin", docnode.String(i.Mixin))
	return docnode.MapNode(m)
}

// nullableString encodes a present-or-absent string field: explicit null
// when absent, the string itself when present — e.g. an interface without
// a parent emits explicit null rather than omitting the field.
func nullableString(present bool, s string) *docnode.Node {
	if !present {
		return docnode.Null()
	}
	return docnode.String(s)
}
