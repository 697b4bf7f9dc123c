package parser

import (
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/ast"
)

func extAttrOf(t *testing.T, source string) *ast.ExtendedAttribute {
	t.Helper()
	doc := mustParse(t, source)
	iface := doc.Definitions[0].(*ast.Interface)
	if len(iface.ExtendedAttributes) != 1 {
		t.Fatalf("expected exactly 1 extended attribute, got %d", len(iface.ExtendedAttributes))
	}
	return iface.ExtendedAttributes[0]
}

func TestExtAttrIdentifierList(t *testing.T) {
	ea := extAttrOf(t, `[Exposed=(Window,Worker)] interface Foo {};`)
	list, ok := ea.Value.(*ast.ExtAttrIdentifierList)
	if !ok {
		t.Fatalf("expected ExtAttrIdentifierList, got %T", ea.Value)
	}
	want := []string{"Window", "Worker"}
	if len(list.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(list.Items))
	}
	for i := range want {
		if list.Items[i] != want[i] {
			t.Fatalf("items[%d]: expected %q, got %q", i, want[i], list.Items[i])
		}
	}
}

func TestExtAttrArgumentList(t *testing.T) {
	ea := extAttrOf(t, `[Constructor(DOMString name)] interface Foo {};`)
	args, ok := ea.Value.(*ast.ExtAttrArgumentList)
	if !ok {
		t.Fatalf("expected ExtAttrArgumentList, got %T", ea.Value)
	}
	if len(args.Arguments) != 1 || args.Arguments[0].Name != "name" {
		t.Fatalf("unexpected arguments: %+v", args.Arguments)
	}
}

func TestExtAttrNamedArgumentList(t *testing.T) {
	ea := extAttrOf(t, `[NamedConstructor=Audio(DOMString src)] interface Foo {};`)
	named, ok := ea.Value.(*ast.ExtAttrNamedArgumentList)
	if !ok {
		t.Fatalf("expected ExtAttrNamedArgumentList, got %T", ea.Value)
	}
	if named.Name != "Audio" || len(named.Arguments) != 1 {
		t.Fatalf("unexpected named argument list: %+v", named)
	}
}

func TestExtAttrParenEqualsArgumentListForm(t *testing.T) {
	// A single-argument parenthesized RHS of the form "Name = ( Type name )"
	// must be classified as an argument list, not an identifier list, since
	// the element is not immediately followed by ',' or ')'.
	ea := extAttrOf(t, `[LegacyFactoryFunction=(DOMString name)] interface Foo {};`)
	if _, ok := ea.Value.(*ast.ExtAttrArgumentList); !ok {
		t.Fatalf("expected ExtAttrArgumentList, got %T", ea.Value)
	}
}

func TestExtAttrEmptyParenIsEmptyIdentifierList(t *testing.T) {
	ea := extAttrOf(t, `[Foo=()] interface Bar {};`)
	list, ok := ea.Value.(*ast.ExtAttrIdentifierList)
	if !ok {
		t.Fatalf("expected ExtAttrIdentifierList, got %T", ea.Value)
	}
	if len(list.Items) != 0 {
		t.Fatalf("expected no items, got %+v", list.Items)
	}
}

func TestExtAttrBareNameHasNoValue(t *testing.T) {
	ea := extAttrOf(t, `[LegacyNoInterfaceObject] interface Foo {};`)
	if ea.Value != nil {
		t.Fatalf("expected no value, got %+v", ea.Value)
	}
}
