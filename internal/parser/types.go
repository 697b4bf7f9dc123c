package parser

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseType parses the full type grammar: an optional leading
// extended-attribute list in type position (parsed and discarded),
// a union or non-union type, and an optional trailing '?' that wraps the
// result in a NullableType.
func (p *parser) parseType() (ast.Type, error) {
	pos := p.current.Pos()
	if p.current.Type == token.LBRACKET {
		if _, err := p.parseExtendedAttributesOpt(); err != nil {
			return nil, err
		}
	}

	var t ast.Type
	var err error
	if p.current.Type == token.LPAREN {
		t, err = p.parseUnionType(pos)
	} else {
		t, err = p.parseNonUnionType(pos)
	}
	if err != nil {
		return nil, err
	}

	if p.current.Type == token.QUESTION {
		p.advance()
		t = &ast.NullableType{Base: base(pos), Inner: t}
	}
	return t, nil
}

func (p *parser) parseUnionType(pos token.Position) (ast.Type, error) {
	p.advance() // consume '('
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	members := []ast.Type{first}
	for p.current.Type == token.OR {
		p.advance()
		m, err := p.parseType()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if p.current.Type != token.RPAREN {
		return nil, p.fail("expected ')'")
	}
	p.advance()
	return &ast.UnionType{Base: base(pos), Members: members}, nil
}

func (p *parser) parseNonUnionType(pos token.Position) (ast.Type, error) {
	switch p.current.Type {
	case token.ANY:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimAny}, nil
	case token.UNDEFINED:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUndefined}, nil
	case token.BOOLEAN:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimBoolean}, nil
	case token.BYTE:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimByte}, nil
	case token.OCTET:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimOctet}, nil
	case token.SHORT:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimShort}, nil
	case token.LONG:
		p.advance()
		if p.current.Type == token.LONG {
			p.advance()
			return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimLongLong}, nil
		}
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimLong}, nil
	case token.UNSIGNED:
		p.advance()
		switch p.current.Type {
		case token.SHORT:
			p.advance()
			return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUnsignedShort}, nil
		case token.LONG:
			p.advance()
			if p.current.Type == token.LONG {
				p.advance()
				return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUnsignedLongLong}, nil
			}
			return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUnsignedLong}, nil
		default:
			return nil, p.fail("expected 'short' or 'long' after 'unsigned'")
		}
	case token.FLOAT_KW:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimFloat}, nil
	case token.DOUBLE:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimDouble}, nil
	case token.UNRESTRICTED:
		p.advance()
		switch p.current.Type {
		case token.FLOAT_KW:
			p.advance()
			return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUnrestrictedFloat}, nil
		case token.DOUBLE:
			p.advance()
			return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUnrestrictedDouble}, nil
		default:
			return nil, p.fail("expected 'float' or 'double' after 'unrestricted'")
		}
	case token.BIGINT:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimBigint}, nil
	case token.DOMSTRING:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimDOMString}, nil
	case token.BYTESTRING:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimByteString}, nil
	case token.USVSTRING:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimUSVString}, nil
	case token.OBJECT:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimObject}, nil
	case token.SYMBOL:
		p.advance()
		return &ast.PrimitiveType{Base: base(pos), Kind: ast.PrimSymbol}, nil
	case token.SEQUENCE:
		return p.parseParameterizedType(pos, func(inner ast.Type) ast.Type {
			return &ast.SequenceType{Base: base(pos), Inner: inner}
		})
	case token.FROZEN_ARRAY:
		return p.parseParameterizedType(pos, func(inner ast.Type) ast.Type {
			return &ast.FrozenArrayType{Base: base(pos), Inner: inner}
		})
	case token.OBSERVABLE_ARRAY:
		return p.parseParameterizedType(pos, func(inner ast.Type) ast.Type {
			return &ast.ObservableArrayType{Base: base(pos), Inner: inner}
		})
	case token.PROMISE:
		return p.parseParameterizedType(pos, func(inner ast.Type) ast.Type {
			return &ast.PromiseType{Base: base(pos), Inner: inner}
		})
	case token.RECORD:
		return p.parseRecordType(pos)
	default:
		if token.IsNameToken(p.current.Type) {
			name, err := p.parseQualifiedName("type name")
			if err != nil {
				return nil, err
			}
			return &ast.IdentifierType{Base: base(pos), Name: name}, nil
		}
		return nil, p.fail("expected a type")
	}
}

// parseParameterizedType parses `Keyword<Inner>` for the single-parameter
// wrapper types (sequence, FrozenArray, ObservableArray, Promise). If the
// closing '>' is missing, the speculatively parsed inner type is simply
// dropped on return (ast.Type values carry no external resources, so Go's
// garbage collector reclaims them without an explicit release step).
func (p *parser) parseParameterizedType(pos token.Position, wrap func(ast.Type) ast.Type) (ast.Type, error) {
	p.advance() // consume the keyword
	if p.current.Type != token.LT {
		return nil, p.fail("expected '<'")
	}
	p.advance()
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()
	return wrap(inner), nil
}

func (p *parser) parseRecordType(pos token.Position) (ast.Type, error) {
	p.advance() // consume 'record'
	if p.current.Type != token.LT {
		return nil, p.fail("expected '<'")
	}
	p.advance()
	key, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.COMMA {
		return nil, p.fail("expected ','")
	}
	p.advance()
	value, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()
	return &ast.RecordType{Base: base(pos), Key: key, Value: value}, nil
}
