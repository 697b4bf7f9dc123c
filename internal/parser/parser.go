// Package parser implements a recursive-descent parser for Web IDL source
// text, producing an internal/ast.Document.
//
// The parser holds a mutable cursor over two tokens (current, previous) and
// a sticky hadError/panicMode pair, in the classic recursive-descent,
// panic-mode-recovery style. Every speculative decision point — the
// top-level "identifier includes" lookahead, the attribute-vs-operation
// disambiguation inside interface member dispatch, and a handful of smaller
// one-token lookaheads such as the extended attribute value disambiguation —
// goes through the same snapshot/restore primitive.
package parser

import (
	"errors"

	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/diag"
	"github.com/zig-whatwg/webidl-sub002/internal/lexer"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// ErrUnexpectedToken is returned by Parse when one or more syntactic errors
// were reported; diagnostics describing each failure are available from the
// returned Sink.
var ErrUnexpectedToken = errors.New("webidl: parse failed")

// ErrLexical is returned by Parse when a fatal, non-recoverable lexical
// error (unterminated comment/string, invalid character) aborted the parse.
var ErrLexical = errors.New("webidl: lexical error")

// base builds the position-carrying embed shared by every AST node.
func base(pos token.Position) ast.Base { return ast.Base{Position: pos} }

// snapshot captures the full backtracking state: the lexer's cursor plus
// the parser's two-token window. Restoring one is O(1) and allocation-free.
type snapshot struct {
	lex      lexer.State
	current  token.Token
	previous token.Token
}

type parser struct {
	lex      *lexer.Lexer
	current  token.Token
	previous token.Token

	hadError  bool
	panicMode bool

	sink *diag.Sink

	fatal *lexer.Error
}

// Parse tokenizes and parses source, returning the completed Document on
// success. On any failure (lexical or a sticky syntactic error) it returns
// a nil Document, the diagnostics emitted so far, and a non-nil error; no
// partial AST is ever returned.
func Parse(source, filename string) (*ast.Document, *diag.Sink, error) {
	p := &parser{
		lex:  lexer.New(source, lexer.WithFilename(filename)),
		sink: diag.NewSink(filename),
	}

	p.advance() // prime p.current
	if p.fatal != nil {
		p.reportFatal()
		return nil, p.sink, ErrLexical
	}

	doc := &ast.Document{}
	for p.current.Type != token.EOF {
		def, err := p.parseTopLevelDefinition()
		if p.fatal != nil {
			p.reportFatal()
			return nil, p.sink, ErrLexical
		}
		if err != nil {
			if p.panicMode {
				p.synchronize()
				if p.fatal != nil {
					p.reportFatal()
					return nil, p.sink, ErrLexical
				}
				continue
			}
			return nil, p.sink, err
		}
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}

	if p.hadError {
		return nil, p.sink, ErrUnexpectedToken
	}
	return doc, p.sink, nil
}

// advance consumes p.current into p.previous and pulls the next token from
// the lexer. A lexical error is sticky and fatal: it is recorded in
// p.fatal and the parse loop aborts on the next check, without attempting
// panic-mode recovery: lexical errors are never recoverable. Once p.fatal
// is set, every further advance leaves p.current at EOF.
func (p *parser) advance() {
	p.previous = p.current
	if p.fatal != nil {
		p.current = token.Token{Type: token.EOF}
		return
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		p.fatal = err
		p.current = token.Token{Type: token.EOF}
		return
	}
	p.current = tok
}

func (p *parser) reportFatal() {
	p.sink.Report(p.fatal.Pos, "%s", p.fatal.Message)
}

// snapshotState captures the current backtracking point.
func (p *parser) snapshotState() snapshot {
	return snapshot{lex: p.lex.Save(), current: p.current, previous: p.previous}
}

// restoreState restores a previously captured backtracking point.
func (p *parser) restoreState(s snapshot) {
	p.lex.Restore(s.lex)
	p.current = s.current
	p.previous = s.previous
}

// fail records one diagnostic (suppressing cascades while already in panic
// mode, and after a fatal lexical error, which Parse reports on its own),
// marks the parse as having failed, enters panic mode, and returns the
// sentinel syntactic error.
func (p *parser) fail(format string, args ...any) error {
	if !p.panicMode && p.fatal == nil {
		p.sink.Report(p.current.Pos(), format, args...)
	}
	p.hadError = true
	p.panicMode = true
	return ErrUnexpectedToken
}

// definitionKeyword reports whether t can start a top-level Definition;
// these are the resynchronization anchors used by synchronize.
func definitionKeyword(t token.Type) bool {
	switch t {
	case token.INTERFACE, token.DICTIONARY, token.ENUM, token.CALLBACK,
		token.TYPEDEF, token.NAMESPACE, token.PARTIAL:
		return true
	}
	return false
}

// synchronize implements panic-mode recovery: it clears
// panicMode and advances tokens until the previous token was ';' and the
// current token starts a definition, until the current token itself starts
// a definition, or until EOF.
func (p *parser) synchronize() {
	p.panicMode = false
	for p.current.Type != token.EOF {
		if p.previous.Type == token.SEMICOLON && definitionKeyword(p.current.Type) {
			return
		}
		if definitionKeyword(p.current.Type) {
			return
		}
		p.advance()
		if p.fatal != nil {
			return
		}
	}
}

// parseName consumes a name-bearing token (an identifier, or a keyword
// from the allowed-as-identifier set) and returns its text.
func (p *parser) parseName(context string) (string, error) {
	if !token.IsNameToken(p.current.Type) {
		return "", p.fail("expected %s", context)
	}
	name := p.current.Lexeme
	p.advance()
	return name, nil
}

// parseQualifiedName consumes a possibly namespace-qualified name
// ("Ns::Name", or a chain "A::B::C"), returning it flattened into a single
// string with "::" retained.
func (p *parser) parseQualifiedName(context string) (string, error) {
	name, err := p.parseName(context)
	if err != nil {
		return "", err
	}
	for p.current.Type == token.DOUBLE_COLON {
		p.advance()
		rhs, err := p.parseName("identifier after '::'")
		if err != nil {
			return "", err
		}
		name = name + "::" + rhs
	}
	return name, nil
}

// unquote strips the surrounding double quotes from a string-literal
// lexeme. The lexer performs no escape processing, so neither does this.
func unquote(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
