package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

func TestWriteDocumentJSON(t *testing.T) {
	tree := docnode.MapNode(docnode.NewMap().Set("name", docnode.String("Foo")))
	var buf bytes.Buffer
	if err := writeDocument(&buf, tree, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "Foo"`) {
		t.Fatalf("expected indented JSON output, got %q", buf.String())
	}
}

func TestWriteDocumentDefaultsToJSON(t *testing.T) {
	tree := docnode.MapNode(docnode.NewMap().Set("name", docnode.String("Foo")))
	var buf bytes.Buffer
	if err := writeDocument(&buf, tree, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Foo") {
		t.Fatalf("expected JSON fallback output, got %q", buf.String())
	}
}

func TestWriteDocumentYAML(t *testing.T) {
	tree := docnode.MapNode(docnode.NewMap().Set("name", docnode.String("Foo")))
	var buf bytes.Buffer
	if err := writeDocument(&buf, tree, "yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "name: Foo") {
		t.Fatalf("expected YAML output, got %q", buf.String())
	}
}

func TestWriteDocumentUnknownFormat(t *testing.T) {
	tree := docnode.MapNode(docnode.NewMap())
	var buf bytes.Buffer
	if err := writeDocument(&buf, tree, "xml"); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestOutputExtension(t *testing.T) {
	if got := outputExtension("yaml"); got != ".yaml" {
		t.Fatalf("expected .yaml, got %q", got)
	}
	if got := outputExtension("json"); got != ".json" {
		t.Fatalf("expected .json, got %q", got)
	}
	if got := outputExtension(""); got != ".json" {
		t.Fatalf("expected .json as the default, got %q", got)
	}
}
