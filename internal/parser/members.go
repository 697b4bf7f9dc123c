package parser

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseInterfaceMemberBody parses a brace-delimited member list shared by
// interfaces, mixins, callback interfaces, and namespaces.
func (p *parser) parseInterfaceMemberBody() ([]ast.InterfaceMember, error) {
	if p.current.Type != token.LBRACE {
		return nil, p.fail("expected '{'")
	}
	p.advance()

	var members []ast.InterfaceMember
	for p.current.Type != token.RBRACE {
		if p.current.Type == token.EOF {
			return nil, p.fail("expected '}'")
		}
		extAttrs, err := p.parseExtendedAttributesOpt()
		if err != nil {
			return nil, err
		}
		member, err := p.parseInterfaceMember(extAttrs)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	p.advance() // consume '}'
	return members, nil
}

// parseInterfaceMember dispatches on the leading token of one member,
// following a fixed precedence table: constructor,
// stringifier, static, iterable, async iterable, maplike, setlike,
// readonly, inherit, attribute, const, getter/setter/deleter, and finally
// the speculative attribute-vs-operation fallback.
func (p *parser) parseInterfaceMember(extAttrs []*ast.ExtendedAttribute) (ast.InterfaceMember, error) {
	pos := p.current.Pos()

	switch p.current.Type {
	case token.CONSTRUCTOR:
		p.advance()
		args, err := p.parseArgumentList()
		if err != nil {
			return nil, err
		}
		if p.current.Type != token.SEMICOLON {
			return nil, p.fail("expected ';'")
		}
		p.advance()
		return &ast.Constructor{Base: base(pos), Arguments: args, ExtendedAttributes: extAttrs}, nil

	case token.STRINGIFIER:
		return p.parseStringifier(pos)

	case token.STATIC:
		p.advance()
		readonly := false
		if p.current.Type == token.READONLY {
			readonly = true
			p.advance()
		}
		if p.current.Type == token.ATTRIBUTE {
			return p.parseAttributeAfterKeyword(pos, extAttrs, true, false, false, readonly)
		}
		return p.parseOperation(pos, extAttrs, true, ast.SpecialNone)

	case token.ITERABLE:
		return p.parseIterable(pos)

	case token.ASYNC, token.ASYNC_ITERABLE:
		return p.parseAsyncIterable(pos)

	case token.MAPLIKE:
		return p.parseMaplike(pos, false)

	case token.SETLIKE:
		return p.parseSetlike(pos, false)

	case token.READONLY:
		p.advance()
		switch p.current.Type {
		case token.MAPLIKE:
			return p.parseMaplike(pos, true)
		case token.SETLIKE:
			return p.parseSetlike(pos, true)
		case token.ATTRIBUTE:
			return p.parseAttributeAfterKeyword(pos, extAttrs, false, false, false, true)
		default:
			return nil, p.fail("expected 'maplike', 'setlike', or 'attribute' after 'readonly'")
		}

	case token.INHERIT:
		p.advance()
		if p.current.Type != token.ATTRIBUTE {
			return nil, p.fail("expected 'attribute' after 'inherit'")
		}
		return p.parseAttributeAfterKeyword(pos, extAttrs, false, true, false, false)

	case token.ATTRIBUTE:
		return p.parseAttributeAfterKeyword(pos, extAttrs, false, false, false, false)

	case token.CONST:
		return p.parseConst(pos)

	case token.GETTER:
		p.advance()
		return p.parseOperation(pos, extAttrs, false, ast.SpecialGetter)
	case token.SETTER:
		p.advance()
		return p.parseOperation(pos, extAttrs, false, ast.SpecialSetter)
	case token.DELETER:
		p.advance()
		return p.parseOperation(pos, extAttrs, false, ast.SpecialDeleter)

	default:
		return p.parseAttributeOrOperationFallback(pos, extAttrs)
	}
}

// parseAttributeOrOperationFallback is the speculative disambiguation
// between a legacy un-prefixed attribute ("Type name;") and a regular
// operation ("Type name(args);"). It snapshots the
// cursor, tries to parse a type followed by a name followed by ';'; if
// that fails to match, it restores the snapshot (discarding any
// speculative diagnostic state along with the pre-parsed type, which Go's
// garbage collector reclaims) and re-enters the operation production.
// The speculative parse runs in panic mode so that a failure inside it
// writes no diagnostic.
func (p *parser) parseAttributeOrOperationFallback(pos token.Position, extAttrs []*ast.ExtendedAttribute) (ast.InterfaceMember, error) {
	snap := p.snapshotState()
	savedHadError, savedPanicMode := p.hadError, p.panicMode
	p.panicMode = true

	typ, typErr := p.parseType()
	if typErr == nil && token.IsNameToken(p.current.Type) {
		name := p.current.Lexeme
		p.advance()
		if p.current.Type == token.SEMICOLON {
			p.advance()
			p.panicMode = savedPanicMode
			return &ast.Attribute{Base: base(pos), Name: name, Type: typ, ExtendedAttributes: extAttrs}, nil
		}
	}

	p.restoreState(snap)
	p.hadError, p.panicMode = savedHadError, savedPanicMode
	return p.parseOperation(pos, extAttrs, false, ast.SpecialNone)
}

func (p *parser) parseAttributeAfterKeyword(pos token.Position, extAttrs []*ast.ExtendedAttribute, static, inherit, stringifier, readonly bool) (*ast.Attribute, error) {
	p.advance() // consume 'attribute'
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName("attribute name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Attribute{
		Base: base(pos), Name: name, Type: typ, Readonly: readonly,
		Static: static, Stringifier: stringifier, Inherit: inherit, ExtendedAttributes: extAttrs,
	}, nil
}

// parseStringifier parses the three stringifier member forms: bare
// `stringifier;`, `stringifier [readonly]
// attribute Type name;`, and `stringifier Type name(args);`. Any extended
// attributes captured ahead of the `stringifier` keyword have no slot on
// this variant and are dropped.
func (p *parser) parseStringifier(pos token.Position) (*ast.Stringifier, error) {
	p.advance() // consume 'stringifier'

	if p.current.Type == token.SEMICOLON {
		p.advance()
		return &ast.Stringifier{Base: base(pos), Tag: ast.StringifierKeyword}, nil
	}

	readonly := false
	if p.current.Type == token.READONLY {
		readonly = true
		p.advance()
	}
	if p.current.Type == token.ATTRIBUTE {
		attr, err := p.parseAttributeAfterKeyword(pos, nil, false, false, true, readonly)
		if err != nil {
			return nil, err
		}
		return &ast.Stringifier{Base: base(pos), Tag: ast.StringifierAttribute, Attr: attr}, nil
	}

	op, err := p.parseOperation(pos, nil, false, ast.SpecialStringifier)
	if err != nil {
		return nil, err
	}
	return &ast.Stringifier{Base: base(pos), Tag: ast.StringifierOperation, Op: op}, nil
}

func (p *parser) parseConst(pos token.Position) (*ast.Const, error) {
	p.advance() // consume 'const'
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName("const name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.EQUALS {
		return nil, p.fail("expected '='")
	}
	p.advance()
	val, err := p.parseDefaultValue()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Const{Base: base(pos), Name: name, Type: typ, Value: val}, nil
}

func (p *parser) parseIterable(pos token.Position) (*ast.Iterable, error) {
	p.advance() // consume 'iterable'
	if p.current.Type != token.LT {
		return nil, p.fail("expected '<'")
	}
	p.advance()
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var keyType, valType ast.Type
	if p.current.Type == token.COMMA {
		p.advance()
		second, err := p.parseType()
		if err != nil {
			return nil, err
		}
		keyType, valType = first, second
	} else {
		valType = first
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Iterable{Base: base(pos), KeyType: keyType, ValueType: valType}, nil
}

func (p *parser) parseAsyncIterable(pos token.Position) (*ast.AsyncIterable, error) {
	if p.current.Type == token.ASYNC {
		p.advance()
		if p.current.Type != token.ITERABLE {
			return nil, p.fail("expected 'iterable' after 'async'")
		}
		p.advance()
	} else {
		p.advance() // consume the legacy 'async_iterable' token
	}
	if p.current.Type != token.LT {
		return nil, p.fail("expected '<'")
	}
	p.advance()
	first, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var keyType, valType ast.Type
	if p.current.Type == token.COMMA {
		p.advance()
		second, err := p.parseType()
		if err != nil {
			return nil, err
		}
		keyType, valType = first, second
	} else {
		valType = first
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()

	var args []*ast.Argument
	if p.current.Type == token.LPAREN {
		args, err = p.parseArgumentList()
		if err != nil {
			return nil, err
		}
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.AsyncIterable{Base: base(pos), KeyType: keyType, ValueType: valType, Arguments: args}, nil
}

func (p *parser) parseMaplike(pos token.Position, readonly bool) (*ast.Maplike, error) {
	p.advance() // consume 'maplike'
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
	val, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Maplike{Base: base(pos), KeyType: key, ValueType: val, Readonly: readonly}, nil
}

func (p *parser) parseSetlike(pos token.Position, readonly bool) (*ast.Setlike, error) {
	p.advance() // consume 'setlike'
	if p.current.Type != token.LT {
		return nil, p.fail("expected '<'")
	}
	p.advance()
	val, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.GT {
		return nil, p.fail("expected '>'")
	}
	p.advance()
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Setlike{Base: base(pos), ValueType: val, Readonly: readonly}, nil
}

// parseDictionaryMember parses one member of a Dictionary body: an
// optional extended-attribute list, optional `required`, a
// type, a name, and an optional `= DefaultValue`.
func (p *parser) parseDictionaryMember() (*ast.DictionaryMember, error) {
	pos := p.current.Pos()
	extAttrs, err := p.parseExtendedAttributesOpt()
	if err != nil {
		return nil, err
	}
	required := false
	if p.current.Type == token.REQUIRED {
		required = true
		p.advance()
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName("dictionary member name")
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
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.DictionaryMember{
		Base: base(pos), Name: name, Type: typ, Required: required,
		Default: def, ExtendedAttributes: extAttrs,
	}, nil
}
