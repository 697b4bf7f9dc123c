package parser

import (
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/ast"
)

func constValue(t *testing.T, literal string) ast.Value {
	t.Helper()
	doc := mustParse(t, `interface Foo { const long x = `+literal+`; };`)
	return doc.Definitions[0].(*ast.Interface).Members[0].(*ast.Const).Value
}

func TestDefaultValueLiterals(t *testing.T) {
	if _, ok := constValue(t, "null").(*ast.NullValue); !ok {
		t.Fatalf("expected NullValue")
	}
	if b, ok := constValue(t, "true").(*ast.BoolValue); !ok || !b.Value {
		t.Fatalf("expected BoolValue(true)")
	}
	if b, ok := constValue(t, "false").(*ast.BoolValue); !ok || b.Value {
		t.Fatalf("expected BoolValue(false)")
	}
	if _, ok := constValue(t, "Infinity").(*ast.InfinityValue); !ok {
		t.Fatalf("expected InfinityValue")
	}
	if _, ok := constValue(t, "-Infinity").(*ast.NegInfinityValue); !ok {
		t.Fatalf("expected NegInfinityValue")
	}
	if _, ok := constValue(t, "NaN").(*ast.NaNValue); !ok {
		t.Fatalf("expected NaNValue")
	}
	if _, ok := constValue(t, "[]").(*ast.EmptySequenceValue); !ok {
		t.Fatalf("expected EmptySequenceValue")
	}
	if _, ok := constValue(t, "{}").(*ast.EmptyDictionaryValue); !ok {
		t.Fatalf("expected EmptyDictionaryValue")
	}
}

func TestIntegerLiteralBases(t *testing.T) {
	tests := []struct {
		literal string
		want    int64
	}{
		{"0", 0},
		{"42", 42},
		{"0x2A", 42},
		{"052", 42}, // octal, tolerated per spec
	}
	for _, tt := range tests {
		v, ok := constValue(t, tt.literal).(*ast.IntValue)
		if !ok {
			t.Fatalf("literal %q: expected IntValue", tt.literal)
		}
		if v.Value != tt.want {
			t.Fatalf("literal %q: expected value %d, got %d", tt.literal, tt.want, v.Value)
		}
		if v.Lexeme != tt.literal {
			t.Fatalf("literal %q: expected lexeme preserved verbatim, got %q", tt.literal, v.Lexeme)
		}
	}
}

func TestNegativeIntegerLiteral(t *testing.T) {
	v, ok := constValue(t, "-7").(*ast.IntValue)
	if !ok {
		t.Fatalf("expected IntValue")
	}
	if v.Value != -7 {
		t.Fatalf("expected value -7, got %d", v.Value)
	}
	if v.Lexeme != "-7" {
		t.Fatalf("expected lexeme -7, got %q", v.Lexeme)
	}
}

func TestFloatLiteral(t *testing.T) {
	v, ok := constValue(t, "3.5").(*ast.FloatValue)
	if !ok {
		t.Fatalf("expected FloatValue")
	}
	if v.Value != 3.5 {
		t.Fatalf("expected value 3.5, got %v", v.Value)
	}
}

func TestNegativeFloatLiteral(t *testing.T) {
	v, ok := constValue(t, "-2.5").(*ast.FloatValue)
	if !ok {
		t.Fatalf("expected FloatValue")
	}
	if v.Value != -2.5 || v.Lexeme != "-2.5" {
		t.Fatalf("unexpected value/lexeme: %+v", v)
	}
}

func TestStringDefaultValue(t *testing.T) {
	doc := mustParse(t, `dictionary Options { DOMString name = "hello"; };`)
	member := doc.Definitions[0].(*ast.Dictionary).Members[0]
	s, ok := member.Default.(*ast.StringValue)
	if !ok || s.Value != "hello" {
		t.Fatalf("unexpected default: %+v", member.Default)
	}
}
