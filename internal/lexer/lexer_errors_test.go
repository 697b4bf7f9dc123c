package lexer

import (
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

func TestUnterminatedStringIsFatal(t *testing.T) {
	l := New(`"never closed`)
	tok, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an unterminated-string error")
	}
	if err.Kind != UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %v", err.Kind)
	}
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL token alongside the error, got %s", tok.Type)
	}
}

func TestUnterminatedBlockCommentIsFatal(t *testing.T) {
	l := New("/* never closed")
	tok, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an unterminated-comment error")
	}
	if err.Kind != UnterminatedComment {
		t.Fatalf("expected UnterminatedComment, got %v", err.Kind)
	}
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL token alongside the error, got %s", tok.Type)
	}
}

func TestInvalidCharacter(t *testing.T) {
	l := New(`@`)
	tok, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an invalid-character error")
	}
	if err.Kind != InvalidCharacter {
		t.Fatalf("expected InvalidCharacter, got %v", err.Kind)
	}
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL token, got %s", tok.Type)
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	l := New("// a comment\ninterface")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.INTERFACE {
		t.Fatalf("expected INTERFACE after comment, got %s", tok.Type)
	}
	if tok.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Line)
	}
}

func TestBlockCommentsAreSkipped(t *testing.T) {
	l := New("/* skip\nme */interface")
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.INTERFACE {
		t.Fatalf("expected INTERFACE after block comment, got %s", tok.Type)
	}
	if tok.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Line)
	}
}
