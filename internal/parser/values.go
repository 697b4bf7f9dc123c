package parser

import (
	"strconv"

	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseDefaultValue parses the literal grammar shared by argument defaults,
// dictionary member defaults, and const values.
func (p *parser) parseDefaultValue() (ast.Value, error) {
	pos := p.current.Pos()
	switch p.current.Type {
	case token.NULL:
		p.advance()
		return &ast.NullValue{Base: base(pos)}, nil
	case token.TRUE:
		p.advance()
		return &ast.BoolValue{Base: base(pos), Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.BoolValue{Base: base(pos), Value: false}, nil
	case token.INFINITY:
		p.advance()
		return &ast.InfinityValue{Base: base(pos)}, nil
	case token.NEG_INFINITY:
		p.advance()
		return &ast.NegInfinityValue{Base: base(pos)}, nil
	case token.NAN:
		p.advance()
		return &ast.NaNValue{Base: base(pos)}, nil
	case token.STRING:
		s := unquote(p.current.Lexeme)
		p.advance()
		return &ast.StringValue{Base: base(pos), Value: s}, nil
	case token.INT:
		return p.parseIntValue(pos, p.current.Lexeme, true)
	case token.FLOAT:
		return p.parseFloatValue(pos, p.current.Lexeme, true)
	case token.MINUS:
		p.advance()
		switch p.current.Type {
		case token.INT:
			return p.parseIntValue(pos, "-"+p.current.Lexeme, true)
		case token.FLOAT:
			return p.parseFloatValue(pos, "-"+p.current.Lexeme, true)
		default:
			return nil, p.fail("expected a number after '-'")
		}
	case token.LBRACKET:
		p.advance()
		if p.current.Type != token.RBRACKET {
			return nil, p.fail("expected ']'")
		}
		p.advance()
		return &ast.EmptySequenceValue{Base: base(pos)}, nil
	case token.LBRACE:
		p.advance()
		if p.current.Type != token.RBRACE {
			return nil, p.fail("expected '}'")
		}
		p.advance()
		return &ast.EmptyDictionaryValue{Base: base(pos)}, nil
	default:
		return nil, p.fail("expected a default value")
	}
}

// parseIntValue parses lexeme as an integer literal (decimal, 0x hex, or
// 0-prefixed octal, via strconv's base-0 auto-detection) and, if advance is
// true, consumes the current token.
func (p *parser) parseIntValue(pos token.Position, lexeme string, advance bool) (ast.Value, error) {
	v, err := strconv.ParseInt(lexeme, 0, 64)
	if err != nil {
		return nil, p.fail("invalid integer literal %q", lexeme)
	}
	if advance {
		p.advance()
	}
	return &ast.IntValue{Base: base(pos), Value: v, Lexeme: lexeme}, nil
}

func (p *parser) parseFloatValue(pos token.Position, lexeme string, advance bool) (ast.Value, error) {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, p.fail("invalid float literal %q", lexeme)
	}
	if advance {
		p.advance()
	}
	return &ast.FloatValue{Base: base(pos), Value: v, Lexeme: lexeme}, nil
}
