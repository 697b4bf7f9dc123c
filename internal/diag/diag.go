// Package diag implements a single-line diagnostic channel: one line per
// failure, of the form
//
//	<filename>:<line>:<column>: error: <message>
//
// Diagnostics are built with fmt/strings alone rather than a structured
// logging library, matching how compiler-error formatting is built
// elsewhere in this codebase.
package diag

import (
	"fmt"
	"io"

	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// Diagnostic is one reported failure.
type Diagnostic struct {
	Filename string
	Pos      token.Position
	Message  string
}

// String renders the diagnostic in the required one-line form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", d.Filename, d.Pos.Line, d.Pos.Column, d.Message)
}

// Sink accumulates diagnostics in emission order and can replay them to a
// writer, one line per diagnostic.
type Sink struct {
	Filename string
	items    []Diagnostic
}

// NewSink creates a Sink that stamps every diagnostic with filename.
func NewSink(filename string) *Sink {
	return &Sink{Filename: filename}
}

// Report records one diagnostic.
func (s *Sink) Report(pos token.Position, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		Filename: s.Filename,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Len returns the number of diagnostics recorded so far.
func (s *Sink) Len() int { return len(s.items) }

// All returns the accumulated diagnostics in emission order.
func (s *Sink) All() []Diagnostic { return s.items }

// WriteTo writes every diagnostic to w, one per line.
func (s *Sink) WriteTo(w io.Writer) error {
	for _, d := range s.items {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}
