package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zig-whatwg/webidl-sub002/internal/lexer"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.idl>",
	Short: "Dump the raw token stream for a Web IDL file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return runLex(cmd.OutOrStdout(), string(source), path)
	},
}

// runLex prints the token stream of source, one token per line, until EOF
// or a lexical error.
func runLex(out io.Writer, source, path string) error {
	lx := lexer.New(source, lexer.WithFilename(path))
	for {
		tok, lexErr := lx.NextToken()
		if lexErr != nil {
			return fmt.Errorf("%s:%d:%d: error: %s", path, lexErr.Pos.Line, lexErr.Pos.Column, lexErr.Message)
		}
		fmt.Fprintf(out, "%-20s %-20q %d:%d\n", tok.Type, tok.Lexeme, tok.Line, tok.Column)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
