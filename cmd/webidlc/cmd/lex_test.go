package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunLexDumpsTokenStream(t *testing.T) {
	var out bytes.Buffer
	if err := runLex(&out, `interface Foo {};`, "foo.idl"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) == 0 {
		t.Fatalf("expected at least one token line")
	}
	if !strings.Contains(lines[0], "INTERFACE") && !strings.Contains(lines[0], "interface") {
		t.Fatalf("expected first token to reflect the 'interface' keyword, got %q", lines[0])
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "EOF") {
		t.Fatalf("expected the stream to end with an EOF token, got %q", last)
	}
}

func TestRunLexReturnsErrorOnLexicalFailure(t *testing.T) {
	var out bytes.Buffer
	err := runLex(&out, `"unterminated`, "bad.idl")
	if err == nil {
		t.Fatalf("expected a lexical error")
	}
	if !strings.Contains(err.Error(), "bad.idl") {
		t.Fatalf("expected the error to mention the source path, got %v", err)
	}
}
