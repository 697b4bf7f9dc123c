// Command webidlc lexes, parses, and serializes WHATWG Web IDL source.
package main

import (
	"fmt"
	"os"

	"github.com/zig-whatwg/webidl-sub002/cmd/webidlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
