package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zig-whatwg/webidl-sub002/internal/parser"
	"github.com/zig-whatwg/webidl-sub002/internal/serializer"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <file.idl>",
	Short: "Parse a single Web IDL file and print its document tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return runParse(cmd.OutOrStdout(), os.Stderr, string(source), path, parseFormat)
	},
}

// runParse parses source and writes its document tree to out, or its
// diagnostics to errOut on failure.
func runParse(out, errOut io.Writer, source, path, format string) error {
	doc, sink, err := parser.Parse(source, path)
	if err != nil {
		sink.WriteTo(errOut)
		return fmt.Errorf("parsing %s failed with %d error(s)", path, sink.Len())
	}

	tree := serializer.Serialize(doc)
	return writeDocument(out, tree, format)
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "json", `output format ("json" or "yaml")`)
	rootCmd.AddCommand(parseCmd)
}
