package parser

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseExtendedAttributesOpt parses an optional bracketed `[...]`
// extended-attribute list. It returns a nil slice (not an error) when the
// current token isn't '['.
func (p *parser) parseExtendedAttributesOpt() ([]*ast.ExtendedAttribute, error) {
	if p.current.Type != token.LBRACKET {
		return nil, nil
	}
	p.advance()
	var attrs []*ast.ExtendedAttribute
	for {
		attr, err := p.parseExtendedAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		if p.current.Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.current.Type != token.RBRACKET {
		return nil, p.fail("expected ']'")
	}
	p.advance()
	return attrs, nil
}

// parseExtendedAttribute parses one entry of an extended-attribute list:
// a bare name, `Name = value`, or `Name ( args )`.
func (p *parser) parseExtendedAttribute() (*ast.ExtendedAttribute, error) {
	pos := p.current.Pos()
	name, err := p.parseName("extended attribute name")
	if err != nil {
		return nil, err
	}
	ea := &ast.ExtendedAttribute{Base: base(pos), Name: name}

	switch p.current.Type {
	case token.EQUALS:
		p.advance()
		switch {
		case p.current.Type == token.LPAREN:
			val, err := p.parseExtAttrParenValue(pos)
			if err != nil {
				return nil, err
			}
			ea.Value = val
		case p.isLiteralOrNameToken():
			text := p.literalOrNameText()
			p.advance()
			if p.current.Type == token.LPAREN {
				args, err := p.parseArgumentList()
				if err != nil {
					return nil, err
				}
				ea.Value = &ast.ExtAttrNamedArgumentList{Base: base(pos), Name: text, Arguments: args}
			} else {
				ea.Value = &ast.ExtAttrIdentifier{Base: base(pos), Identifier: text}
			}
		default:
			return nil, p.fail("expected an identifier or literal after '='")
		}
	case token.LPAREN:
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		ea.Value = &ast.ExtAttrArgumentList{Base: base(pos), Arguments: args}
	}
	return ea, nil
}

// parseExtAttrParenValue parses the parenthesized RHS of `Name = ( ... )`.
// It distinguishes an identifier/literal list from an argument list with a
// second, one-token speculative lookahead: if the first
// element is a name or literal immediately followed by ',' or ')', the
// contents are a list; otherwise they are an argument list. A trailing
// name after the closing ')' turns an argument list into a named-argument
// list.
func (p *parser) parseExtAttrParenValue(pos token.Position) (ast.ExtendedAttrValue, error) {
	p.advance() // consume '('

	if p.current.Type == token.RPAREN {
		p.advance()
		if name, ok := p.tryTrailingName(); ok {
			return &ast.ExtAttrNamedArgumentList{Base: base(pos), Name: name}, nil
		}
		return &ast.ExtAttrIdentifierList{Base: base(pos)}, nil
	}

	if p.isLiteralOrNameToken() && p.nextIsCommaOrRParen() {
		items, err := p.parseIdentifierOrLiteralList()
		if err != nil {
			return nil, err
		}
		if p.current.Type != token.RPAREN {
			return nil, p.fail("expected ')'")
		}
		p.advance()
		return &ast.ExtAttrIdentifierList{Base: base(pos), Items: items}, nil
	}

	args, err := p.parseArgumentListContents()
	if err != nil {
		return nil, err
	}
	if name, ok := p.tryTrailingName(); ok {
		return &ast.ExtAttrNamedArgumentList{Base: base(pos), Name: name, Arguments: args}, nil
	}
	return &ast.ExtAttrArgumentList{Base: base(pos), Arguments: args}, nil
}

func (p *parser) parseIdentifierOrLiteralList() ([]string, error) {
	items := []string{p.literalOrNameText()}
	p.advance()
	for p.current.Type == token.COMMA {
		p.advance()
		if !p.isLiteralOrNameToken() {
			return nil, p.fail("expected an identifier or literal")
		}
		items = append(items, p.literalOrNameText())
		p.advance()
	}
	return items, nil
}

// nextIsCommaOrRParen peeks one token past p.current without consuming it.
func (p *parser) nextIsCommaOrRParen() bool {
	snap := p.snapshotState()
	p.advance()
	ok := p.current.Type == token.COMMA || p.current.Type == token.RPAREN
	p.restoreState(snap)
	return ok
}

func (p *parser) tryTrailingName() (string, bool) {
	if !token.IsNameToken(p.current.Type) {
		return "", false
	}
	name := p.current.Lexeme
	p.advance()
	return name, true
}

func (p *parser) isLiteralOrNameToken() bool {
	switch p.current.Type {
	case token.STRING, token.INT, token.FLOAT, token.ASTERISK:
		return true
	default:
		return token.IsNameToken(p.current.Type)
	}
}

func (p *parser) literalOrNameText() string {
	switch p.current.Type {
	case token.STRING:
		return unquote(p.current.Lexeme)
	case token.ASTERISK:
		return "*"
	default:
		return p.current.Lexeme
	}
}
