package parser

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseArgumentList parses a parenthesized, comma-separated argument list
// starting at the opening '('.
func (p *parser) parseArgumentList() ([]*ast.Argument, error) {
	if p.current.Type != token.LPAREN {
		return nil, p.fail("expected '('")
	}
	p.advance()
	return p.parseArgumentListContents()
}

// parseArgumentListContents parses the comma-separated arguments up to and
// including the closing ')'; the opening '(' has already been consumed.
func (p *parser) parseArgumentListContents() ([]*ast.Argument, error) {
	if p.current.Type == token.RPAREN {
		p.advance()
		return nil, nil
	}
	var args []*ast.Argument
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.current.Type != token.RPAREN {
		return nil, p.fail("expected ')'")
	}
	p.advance()
	return args, nil
}

// parseArgument parses one operation/constructor/callback parameter (spec
// §4.3.6): an optional extended-attribute list, optional `optional`, a
// discarded legacy `in` qualifier, a type, optional `...` variadic marker,
// a name, and an optional `= DefaultValue`.
func (p *parser) parseArgument() (*ast.Argument, error) {
	pos := p.current.Pos()
	extAttrs, err := p.parseExtendedAttributesOpt()
	if err != nil {
		return nil, err
	}

	optional := false
	if p.current.Type == token.OPTIONAL {
		optional = true
		p.advance()
	}
	if p.current.Type == token.IN {
		p.advance() // legacy qualifier, discarded
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	variadic := false
	if p.current.Type == token.ELLIPSIS {
		variadic = true
		p.advance()
	}

	name, err := p.parseName("argument name")
	if err != nil {
		return nil, err
	}

	var def ast.Value
	if p.current.Type == token.EQUALS {
		p.advance()
		def, err = p.parseDefaultValue()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Argument{
		Base: base(pos), Name: name, Type: typ, Optional: optional,
		Variadic: variadic, Default: def, ExtendedAttributes: extAttrs,
	}, nil
}

// parseReturnType parses an operation or callback return type: `undefined`
// is recognized directly, any other return type goes through parseType.
func (p *parser) parseReturnType() (ast.Type, error) {
	if p.current.Type == token.UNDEFINED {
		pos := p.current.Pos()
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUndefined}, nil
	}
	return p.parseType()
}

// parseOperation parses a (possibly static or special) operation: a return
// type, an optional name, an argument list, a discarded legacy `raises`
// clause, and a terminating ';'.
func (p *parser) parseOperation(pos token.Position, extAttrs []*ast.ExtendedAttribute, static bool, special ast.SpecialKind) (*ast.Operation, error) {
	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	name := ""
	hasName := false
	if token.IsNameToken(p.current.Type) {
		name = p.current.Lexeme
		hasName = true
		p.advance()
	}

	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}

	if err := p.parseOptionalRaisesClause(); err != nil {
		return nil, err
	}

	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()

	return &ast.Operation{
		Base: base(pos), Name: name, HasName: hasName, ReturnType: retType,
		Arguments: args, Static: static, Special: special, ExtendedAttributes: extAttrs,
	}, nil
}

// parseOptionalRaisesClause skips and discards a legacy `raises(...)`
// clause if present: it is consumed and produces no AST node. It tolerates
// both the flat `raises(Exn, Exn)` form and the doubly-parenthesized
// `raises((Exn, Exn))` form by balancing parens.
func (p *parser) parseOptionalRaisesClause() error {
	if p.current.Type != token.RAISES {
		return nil
	}
	p.advance()
	if p.current.Type != token.LPAREN {
		return p.fail("expected '(' after 'raises'")
	}
	depth := 0
	for {
		switch p.current.Type {
		case token.LPAREN:
			depth++
			p.advance()
		case token.RPAREN:
			depth--
			p.advance()
			if depth == 0 {
				return nil
			}
		case token.EOF:
			return p.fail("unterminated 'raises' clause")
		default:
			p.advance()
		}
	}
}
