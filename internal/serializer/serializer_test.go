package serializer

import (
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/parser"
)

func serializeSource(t *testing.T, source string) string {
	t.Helper()
	doc, sink, err := parser.Parse(source, "test.idl")
	if err != nil {
		t.Fatalf("unexpected parse error: %v (diagnostics: %v)", err, sink.All())
	}
	got, err := Serialize(doc).MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	return string(got)
}

func TestSerializeEmptyInterface(t *testing.T) {
	got := serializeSource(t, `interface Foo {};`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeInterfaceWithInheritance(t *testing.T) {
	got := serializeSource(t, `interface Derived : Base {};`)
	want := `{"definitions":[{"interface":{"name":"Derived","inherits":"Base","partial":false,"extended_attributes":[],"members":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeAttribute(t *testing.T) {
	got := serializeSource(t, `interface Foo { readonly attribute DOMString name; };`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[{"attribute":{"name":"name","type":"DOMString","readonly":true,"static":false,"stringifier":false,"inherit":false,"extended_attributes":[]}}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeOperationWithArguments(t *testing.T) {
	got := serializeSource(t, `interface Foo { undefined run(long x, optional boolean y = true); };`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[{"operation":{"name":"run","return_type":"undefined","arguments":[{"name":"x","type":"long","optional":false,"variadic":false,"default":null,"extended_attributes":[]},{"name":"y","type":"boolean","optional":true,"variadic":false,"default":true,"extended_attributes":[]}],"static":false,"special":"","extended_attributes":[]}}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeConstIntAndFloatValues(t *testing.T) {
	got := serializeSource(t, `interface Foo {
		const long ZERO = 0;
		const double PI = 3.5;
	};`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[{"const":{"name":"ZERO","type":"long","value":{"value":0,"lexeme":"0"}}},{"const":{"name":"PI","type":"double","value":{"value":3.5,"lexeme":"3.5"}}}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeStringifierKeywordForm(t *testing.T) {
	got := serializeSource(t, `interface Foo {
		stringifier;
	};`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[{"stringifier":"keyword"}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeIterableWithoutKeyType(t *testing.T) {
	got := serializeSource(t, `interface Foo { iterable<DOMString>; };`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[],"members":[{"iterable":{"key_type":null,"value_type":"DOMString"}}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeCompositeTypes(t *testing.T) {
	got := serializeSource(t, `typedef sequence<long?> Seq;`)
	want := `{"definitions":[{"typedef":{"name":"Seq","type":{"sequence":{"nullable":"long"}},"extended_attributes":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeUnionAndRecordTypes(t *testing.T) {
	got := serializeSource(t, `typedef (long or DOMString) U;
	typedef record<DOMString, long> R;`)
	want := `{"definitions":[{"typedef":{"name":"U","type":{"union":["long","DOMString"]},"extended_attributes":[]}},{"typedef":{"name":"R","type":{"record":{"key":"DOMString","value":"long"}},"extended_attributes":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeIdentifierType(t *testing.T) {
	got := serializeSource(t, `typedef Foo Bar;`)
	want := `{"definitions":[{"typedef":{"name":"Bar","type":{"identifier":"Foo"},"extended_attributes":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeExtendedAttributeIdentifierValue(t *testing.T) {
	got := serializeSource(t, `[Exposed=Window]
	interface Foo {};`)
	want := `{"definitions":[{"interface":{"name":"Foo","inherits":null,"partial":false,"extended_attributes":[{"name":"Exposed","value":{"identifier":"Window"}}],"members":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeEnum(t *testing.T) {
	got := serializeSource(t, `enum Color { "red", "green" };`)
	want := `{"definitions":[{"enum":{"name":"Color","values":["red","green"],"extended_attributes":[]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeIncludes(t *testing.T) {
	got := serializeSource(t, `Window includes WindowMixin;`)
	want := `{"definitions":[{"includes":{"interface":"Window","mixin":"WindowMixin"}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}

func TestSerializeDictionaryWithDefault(t *testing.T) {
	got := serializeSource(t, `dictionary Options {
		DOMString name = "hi";
		required long count;
	};`)
	want := `{"definitions":[{"dictionary":{"name":"Options","inherits":null,"partial":false,"extended_attributes":[],"members":[{"name":"name","type":"DOMString","required":false,"default_value":"hi","extended_attributes":[]},{"name":"count","type":"long","required":true,"default_value":null,"extended_attributes":[]}]}}]}`
	if got != want {
		t.Fatalf("mismatch:\n got=%s\nwant=%s", got, want)
	}
}
