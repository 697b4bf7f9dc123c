package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zig-whatwg/webidl-sub002/internal/parser"
	"github.com/zig-whatwg/webidl-sub002/internal/serializer"
)

var buildFormat string

var buildCmd = &cobra.Command{
	Use:   "build <source-dir> <dest-dir>",
	Short: "Parse every .idl file in a directory tree and write each document tree under a destination directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(os.Stderr, args[0], args[1], buildFormat)
	},
}

// runBuild walks srcDir for *.idl files and builds each one into dstDir.
// A failing file is reported to errOut and counted but does not stop the
// walk; runBuild returns an error only once the walk has finished, so one
// bad file never blocks the rest of the tree from building.
func runBuild(errOut io.Writer, srcDir, dstDir, format string) error {
	failed := 0

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".idl") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		if buildErr := buildOne(errOut, path, filepath.Join(dstDir, rel), format); buildErr != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, buildErr)
			failed++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("build failed for %d file(s)", failed)
	}
	return nil
}

// buildOne parses one source file and writes its document tree to a
// sibling path under the destination tree, with the output format's
// extension substituted for ".idl".
func buildOne(errOut io.Writer, srcPath, dstPath, format string) error {
	source, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	doc, sink, err := parser.Parse(string(source), srcPath)
	if err != nil {
		sink.WriteTo(errOut)
		return fmt.Errorf("parsing failed with %d error(s)", sink.Len())
	}

	outPath := strings.TrimSuffix(dstPath, filepath.Ext(dstPath)) + outputExtension(format)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	tree := serializer.Serialize(doc)
	return writeDocument(out, tree, format)
}

func init() {
	buildCmd.Flags().StringVar(&buildFormat, "format", "json", `output format ("json" or "yaml")`)
	rootCmd.AddCommand(buildCmd)
}
