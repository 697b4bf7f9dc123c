package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zig-whatwg/webidl-sub002/internal/docnode"
)

// writeDocument renders doc to w in the requested format ("json" or
// "yaml"). JSON is rendered via the standard library (docnode.Node
// implements json.Marshaler with key order preserved); YAML goes through
// docnode's goccy/go-yaml encoding path.
func writeDocument(w io.Writer, doc *docnode.Node, format string) error {
	switch format {
	case "yaml":
		return doc.EncodeYAML(w)
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown output format %q (want \"json\" or \"yaml\")", format)
	}
}

// outputExtension returns the file extension used by the build subcommand
// for a given format.
func outputExtension(format string) string {
	if format == "yaml" {
		return ".yaml"
	}
	return ".json"
}
