package lexer

import (
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `interface Foo {
		readonly attribute DOMString name;
	};`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"interface", token.INTERFACE},
		{"Foo", token.IDENT},
		{"{", token.LBRACE},
		{"readonly", token.READONLY},
		{"attribute", token.ATTRIBUTE},
		{"DOMString", token.DOMSTRING},
		{"name", token.IDENT},
		{";", token.SEMICOLON},
		{"}", token.RBRACE},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lexical error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestPunctuation(t *testing.T) {
	input := `( ) [ ] { } , ; : :: < > ? = - ... *`

	tests := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET,
		token.LBRACE, token.RBRACE, token.COMMA, token.SEMICOLON,
		token.COLON, token.DOUBLE_COLON, token.LT, token.GT, token.QUESTION,
		token.EQUALS, token.MINUS, token.ELLIPSIS, token.ASTERISK, token.EOF,
	}

	l := New(input)
	for i, want := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lexical error: %v", i, err)
		}
		if tok.Type != want {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (lexeme=%q)", i, want, tok.Type, tok.Lexeme)
		}
	}
}

func TestNegativeInfinityIsOneToken(t *testing.T) {
	l := New(`-Infinity -Infinitywithtrailer -5`)

	tok, err := l.NextToken()
	if err != nil || tok.Type != token.NEG_INFINITY || tok.Lexeme != "-Infinity" {
		t.Fatalf("expected -Infinity token, got %+v err=%v", tok, err)
	}

	// "-Infinitywithtrailer" must not be misread as NEG_INFINITY followed by
	// garbage: the trailing identifier character rules out the compound form,
	// so this should lex as MINUS then an identifier.
	tok, err = l.NextToken()
	if err != nil || tok.Type != token.MINUS {
		t.Fatalf("expected MINUS, got %+v err=%v", tok, err)
	}
	tok, err = l.NextToken()
	if err != nil || tok.Type != token.IDENT || tok.Lexeme != "Infinitywithtrailer" {
		t.Fatalf("expected IDENT Infinitywithtrailer, got %+v err=%v", tok, err)
	}

	tok, err = l.NextToken()
	if err != nil || tok.Type != token.MINUS {
		t.Fatalf("expected MINUS before 5, got %+v err=%v", tok, err)
	}
	tok, err = l.NextToken()
	if err != nil || tok.Type != token.INT || tok.Lexeme != "5" {
		t.Fatalf("expected INT 5, got %+v err=%v", tok, err)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := New(``)
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Type != token.EOF {
			t.Fatalf("call %d: expected EOF repeatedly, got %s", i, tok.Type)
		}
	}
}
