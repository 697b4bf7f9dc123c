package parser

import (
	"github.com/zig-whatwg/webidl-sub002/internal/ast"
	"github.com/zig-whatwg/webidl-sub002/internal/token"
)

// parseTopLevelDefinition dispatches one top-level unit following a
// fixed order: skip any pragmas, handle a legacy module block, parse an
// optional extended-attribute list, then dispatch on
// partial/callback/interface/dictionary/enum/typedef/namespace, finally
// falling back to the "identifier includes mixin" lookahead.
func (p *parser) parseTopLevelDefinition() (ast.Definition, error) {
	for p.current.Type == token.PRAGMA {
		if err := p.skipPragma(); err != nil {
			return nil, err
		}
	}

	if p.current.Type == token.MODULE {
		return p.parseModuleBlock()
	}

	extAttrs, err := p.parseExtendedAttributesOpt()
	if err != nil {
		return nil, err
	}

	switch p.current.Type {
	case token.PARTIAL:
		return p.parsePartial(extAttrs)
	case token.CALLBACK:
		return p.parseCallbackOrCallbackInterface(extAttrs)
	case token.INTERFACE:
		return p.parseInterfaceOrMixin(extAttrs, false)
	case token.DICTIONARY:
		return p.parseDictionary(extAttrs, false)
	case token.ENUM:
		return p.parseEnum(extAttrs)
	case token.TYPEDEF:
		return p.parseTypedef(extAttrs)
	case token.NAMESPACE:
		return p.parseNamespace(extAttrs, false)
	}

	if token.IsNameToken(p.current.Type) && p.peekIsIncludes() {
		return p.parseIncludes()
	}

	return nil, p.fail("expected a definition")
}

// skipPragma consumes a legacy `pragma ...;` directive up to and including
// its terminating ';', discarding its contents entirely.
func (p *parser) skipPragma() error {
	p.advance() // consume 'pragma'
	for p.current.Type != token.SEMICOLON && p.current.Type != token.EOF {
		p.advance()
		if p.fatal != nil {
			return nil
		}
	}
	if p.current.Type == token.SEMICOLON {
		p.advance()
	}
	return nil
}

// parseModuleBlock parses a legacy `module Name { Definitions... };` block.
// Only the first nested definition is kept; the rest of the block is
// parsed (and resynchronized on failure) but discarded, matching the
// Open Question decision recorded for this legacy form.
func (p *parser) parseModuleBlock() (ast.Definition, error) {
	p.advance() // consume 'module'
	if _, err := p.parseName("module name"); err != nil {
		return nil, err
	}
	if p.current.Type != token.LBRACE {
		return nil, p.fail("expected '{'")
	}
	p.advance()

	var first ast.Definition
	for p.current.Type != token.RBRACE {
		if p.current.Type == token.EOF {
			return nil, p.fail("expected '}'")
		}
		def, err := p.parseTopLevelDefinition()
		if p.fatal != nil {
			return nil, nil
		}
		if err != nil {
			if !p.panicMode {
				return nil, err
			}
			p.synchronize()
			if p.fatal != nil {
				return nil, nil
			}
			if p.current.Type == token.RBRACE || p.current.Type == token.EOF {
				break
			}
			continue
		}
		if first == nil {
			first = def
		}
	}

	if p.current.Type != token.RBRACE {
		return nil, p.fail("expected '}'")
	}
	p.advance()
	if p.current.Type == token.SEMICOLON {
		p.advance()
	}
	return first, nil
}

func (p *parser) parsePartial(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	p.advance() // consume 'partial'
	switch p.current.Type {
	case token.INTERFACE:
		return p.parseInterfaceOrMixin(extAttrs, true)
	case token.DICTIONARY:
		return p.parseDictionary(extAttrs, true)
	case token.NAMESPACE:
		return p.parseNamespace(extAttrs, true)
	default:
		return nil, p.fail("expected 'interface', 'dictionary', or 'namespace' after 'partial'")
	}
}

func (p *parser) parseInterfaceOrMixin(extAttrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'interface'

	if p.current.Type == token.MIXIN {
		p.advance()
		name, err := p.parseName("mixin name")
		if err != nil {
			return nil, err
		}
		members, err := p.parseInterfaceMemberBody()
		if err != nil {
			return nil, err
		}
		if p.current.Type != token.SEMICOLON {
			return nil, p.fail("expected ';'")
		}
		p.advance()
		return &ast.InterfaceMixin{Base: base(pos), Name: name, Partial: partial, ExtendedAttributes: extAttrs, Members: members}, nil
	}

	name, err := p.parseName("interface name")
	if err != nil {
		return nil, err
	}

	inherits, hasInherits := "", false
	if p.current.Type == token.COLON {
		p.advance()
		parent, err := p.parseQualifiedName("parent interface name")
		if err != nil {
			return nil, err
		}
		inherits, hasInherits = parent, true
	}

	if p.current.Type == token.SEMICOLON {
		p.advance()
		return &ast.Interface{
			Base: base(pos), Name: name, Inherits: inherits, HasInherits: hasInherits,
			Partial: partial, ExtendedAttributes: extAttrs,
		}, nil
	}

	members, err := p.parseInterfaceMemberBody()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Interface{
		Base: base(pos), Name: name, Inherits: inherits, HasInherits: hasInherits,
		Partial: partial, ExtendedAttributes: extAttrs, Members: members,
	}, nil
}

func (p *parser) parseDictionary(extAttrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'dictionary'
	name, err := p.parseName("dictionary name")
	if err != nil {
		return nil, err
	}

	inherits, hasInherits := "", false
	if p.current.Type == token.COLON {
		p.advance()
		parent, err := p.parseQualifiedName("parent dictionary name")
		if err != nil {
			return nil, err
		}
		inherits, hasInherits = parent, true
	}

	if p.current.Type != token.LBRACE {
		return nil, p.fail("expected '{'")
	}
	p.advance()

	var members []*ast.DictionaryMember
	for p.current.Type != token.RBRACE {
		if p.current.Type == token.EOF {
			return nil, p.fail("expected '}'")
		}
		m, err := p.parseDictionaryMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	p.advance() // consume '}'
	if p.current.Type == token.SEMICOLON {
		p.advance()
	}

	return &ast.Dictionary{
		Base: base(pos), Name: name, Inherits: inherits, HasInherits: hasInherits,
		Partial: partial, ExtendedAttributes: extAttrs, Members: members,
	}, nil
}

func (p *parser) parseEnum(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'enum'
	name, err := p.parseName("enum name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.LBRACE {
		return nil, p.fail("expected '{'")
	}
	p.advance()

	var values []string
	if p.current.Type != token.RBRACE {
		for {
			if p.current.Type != token.STRING {
				return nil, p.fail("expected a string literal")
			}
			values = append(values, unquote(p.current.Lexeme))
			p.advance()
			if p.current.Type == token.COMMA {
				p.advance()
				if p.current.Type == token.RBRACE {
					break
				}
				continue
			}
			break
		}
	}
	if p.current.Type != token.RBRACE {
		return nil, p.fail("expected '}'")
	}
	p.advance()
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Enum{Base: base(pos), Name: name, Values: values, ExtendedAttributes: extAttrs}, nil
}

func (p *parser) parseTypedef(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'typedef'
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName("typedef name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Typedef{Base: base(pos), Name: name, Type: typ, ExtendedAttributes: extAttrs}, nil
}

func (p *parser) parseCallbackOrCallbackInterface(extAttrs []*ast.ExtendedAttribute) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'callback'

	if p.current.Type == token.INTERFACE {
		p.advance()
		name, err := p.parseName("callback interface name")
		if err != nil {
			return nil, err
		}
		members, err := p.parseInterfaceMemberBody()
		if err != nil {
			return nil, err
		}
		if p.current.Type != token.SEMICOLON {
			return nil, p.fail("expected ';'")
		}
		p.advance()
		return &ast.CallbackInterface{Base: base(pos), Name: name, ExtendedAttributes: extAttrs, Members: members}, nil
	}

	name, err := p.parseName("callback name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.EQUALS {
		return nil, p.fail("expected '='")
	}
	p.advance()
	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Callback{Base: base(pos), Name: name, ReturnType: retType, Arguments: args, ExtendedAttributes: extAttrs}, nil
}

func (p *parser) parseNamespace(extAttrs []*ast.ExtendedAttribute, partial bool) (ast.Definition, error) {
	pos := p.current.Pos()
	p.advance() // consume 'namespace'
	name, err := p.parseName("namespace name")
	if err != nil {
		return nil, err
	}
	members, err := p.parseInterfaceMemberBody()
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Namespace{Base: base(pos), Name: name, Partial: partial, ExtendedAttributes: extAttrs, Members: members}, nil
}

// peekIsIncludes performs the bounded one-token lookahead that
// distinguishes "Name includes Mixin;" from any other construct starting
// with a bare name at the top level. The snapshot is always restored
// regardless of the outcome.
func (p *parser) peekIsIncludes() bool {
	snap := p.snapshotState()
	p.advance()
	isIncludes := p.current.Type == token.INCLUDES
	p.restoreState(snap)
	return isIncludes
}

func (p *parser) parseIncludes() (ast.Definition, error) {
	pos := p.current.Pos()
	name, err := p.parseName("interface name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.INCLUDES {
		return nil, p.fail("expected 'includes'")
	}
	p.advance()
	mixin, err := p.parseName("mixin name")
	if err != nil {
		return nil, err
	}
	if p.current.Type != token.SEMICOLON {
		return nil, p.fail("expected ';'")
	}
	p.advance()
	return &ast.Includes{Base: base(pos), Interface: name, Mixin: mixin}, nil
}
