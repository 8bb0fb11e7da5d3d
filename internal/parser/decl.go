// Package parser: C/C++ declaration-syntax parsing (spec §4.9's
// DeclBuild state machine, upstream half of the explain/typedef
// commands' parser boundary described in spec §9).
//
// C declarators nest outside-in while the AST nests inside-out (spec
// §9's declarator-inversion note): `*a[10]` declares an array of
// pointers (Array wraps Pointer) while `(*a)[10]` declares a pointer to
// an array (Pointer wraps Array), even though both read left-to-right
// as "star, then brackets". This file resolves that by collecting
// prefix operators (`*`, `&`, `&&`, `Class::*`) without pushing them,
// parsing the direct-declarator with its postfix `[...]`/`(...)`
// suffixes pushed onto the ast.Chain immediately as they're seen (so
// they become the outermost layers), and only then pushing the
// collected prefix operators in reverse of their collection order —
// the prefix closest to the identifier ends up outermost among the
// prefixes, nested inside whatever postfix layers already claimed the
// chain's head. internal/ast/build_test.go's TestChainInversionShape and internal/render/decl's
// parenthesization tests are the ground truth this was derived against.
package parser

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/sname"
	"github.com/cdeclish/cdeclish/internal/token"
	"github.com/cdeclish/cdeclish/internal/typedef"
)

// DeclContext carries the typedef registry and active dialect a decl
// parse needs to resolve typedef-name leaves and gate their visibility.
type DeclContext struct {
	Reg    *typedef.Registry
	Active dialect.Dialect
}

// ParseDeclString parses one full C/C++ declaration (spec §6's
// `explain`/`typedef` upstream interface) into its declarator root,
// collecting diagnostics into bag.
func ParseDeclString(src string, arena *ast.Arena, bag *diagnostics.Bag, ctx DeclContext) *ast.Node {
	p := New(src, arena, bag)
	return p.parseOneDeclarator(ctx)
}

// DeclaredIdent finds the identifier the parser stamped onto a
// declarator's leaf (internal/ast/node.go: "Ident ... on the
// declarator's leaf"), since neither renderer reads it back off the
// tree itself — each expects the caller to pass the name in separately.
func DeclaredIdent(root *ast.Node) string {
	if root == nil {
		return ""
	}
	if root.Ident != "" {
		return root.Ident
	}
	for _, c := range root.Children {
		if id := DeclaredIdent(c); id != "" {
			return id
		}
	}
	return ""
}

// parseOneDeclarator implements one full pass of DeclBuild: ExpectBase
// (parseBaseRun), then the declarator chain, then Close + DeclFlags
// stamping. It is also the engine for each parameter of a function's
// parameter list; it returns the assembled declarator's root (the leaf
// itself when no declarator operator was seen).
func (p *Parser) parseOneDeclarator(ctx DeclContext) *ast.Node {
	base := p.parseBaseRun(ctx.Active)
	leaf := p.parseBaseLeaf(base, ctx)
	chain, ident := p.parseDeclaratorChain(ctx)
	leaf.Ident = ident
	root := chain.Close(p.arena, leaf)
	storage := ctype.Type{Storage: base.Storage}
	stampDeclFlags(root, storage)
	return root
}

func stampDeclFlags(n *ast.Node, flags ctype.Type) {
	n.DeclFlags = flags
	for _, c := range n.Children {
		stampDeclFlags(c, flags)
	}
}

// parseBaseLeaf builds the innermost node of a declarator: a tag
// reference (struct/class/union/enum), a typedef reference, or a plain
// Builtin carrying base's base-type and cv-qualifier bits.
func (p *Parser) parseBaseLeaf(base ctype.Type, ctx DeclContext) *ast.Node {
	switch {
	case p.curTokenIs("struct") || p.curTokenIs("class") || p.curTokenIs("union") || p.curTokenIs("enum"):
		return p.parseTagLeaf(ctx)
	case p.curToken.Type == token.IDENT:
		if ctx.Reg != nil {
			name := sname.New(p.curToken.Lexeme)
			if entry, ok := ctx.Reg.Find(name, ctx.Active); ok {
				p.nextToken()
				return p.arena.NewTypedef(p.spanAtCur(), name, entry.Ref)
			}
		}
		fallthrough
	default:
		span := p.spanAtCur()
		n := p.arena.NewBuiltin(span)
		n.Type = ctype.Type{Base: base.Base, Attr: base.Attr}
		return n
	}
}

var tagKinds = map[string]ast.Kind{
	"struct": ast.KindStruct,
	"class":  ast.KindClass,
	"union":  ast.KindUnion,
	"enum":   ast.KindEnum,
}

// parseTagLeaf parses `struct|class|union|enum NAME [{ ... }]`. The
// AST models a single declarator, not a member list, so a trailing
// brace-delimited body (scenario 6's `typedef struct S { int x; } S;`)
// is skipped as a balanced span rather than parsed.
func (p *Parser) parseTagLeaf(ctx DeclContext) *ast.Node {
	kind := tagKinds[p.curToken.Lexeme]
	span := p.spanAtCur()
	p.nextToken()
	name := p.parseSName()
	if p.curIsType(token.LBRACE) {
		p.skipBalancedBraces()
	}
	return p.arena.NewTag(span, kind, name, nil)
}

func (p *Parser) skipBalancedBraces() {
	depth := 0
	for {
		switch {
		case p.curIsType(token.LBRACE):
			depth++
			p.nextToken()
		case p.curIsType(token.RBRACE):
			depth--
			p.nextToken()
			if depth == 0 {
				return
			}
		case p.curIsType(token.EOF):
			p.errorf("unterminated brace body")
			return
		default:
			p.nextToken()
		}
	}
}

// parseSName consumes IDENT (:: IDENT)*.
func (p *Parser) parseSName() sname.SName {
	name := sname.New(p.parseIdent())
	for p.curIsType(token.COLON_COLON) {
		p.nextToken()
		name = name.AppendName(p.parseIdent())
	}
	return name
}

type prefixKind int

const (
	prefixPointer prefixKind = iota
	prefixReference
	prefixRvalueReference
	prefixPointerToMember
)

type prefixOp struct {
	kind    prefixKind
	ofClass *ast.Node
	span    ast.Span
}

// parseDeclaratorChain parses one declarator (possibly parenthesized)
// and returns its not-yet-closed ast.Chain together with the declared
// identifier ("" for an abstract declarator, e.g. a cast target or an
// unnamed parameter).
func (p *Parser) parseDeclaratorChain(ctx DeclContext) (*ast.Chain, string) {
	var prefixes []prefixOp
collect:
	for {
		switch {
		case p.curIsType(token.STAR):
			prefixes = append(prefixes, prefixOp{kind: prefixPointer, span: p.spanAtCur()})
			p.nextToken()
		case p.curIsType(token.AMP):
			prefixes = append(prefixes, prefixOp{kind: prefixReference, span: p.spanAtCur()})
			p.nextToken()
		case p.curIsType(token.AMP_AMP):
			prefixes = append(prefixes, prefixOp{kind: prefixRvalueReference, span: p.spanAtCur()})
			p.nextToken()
		case p.curToken.Type == token.IDENT && p.peekIsType(token.COLON_COLON):
			span := p.spanAtCur()
			ofClass := p.parsePointerToMemberClass(ctx)
			if !p.curIsType(token.STAR) {
				p.errorf("expected '*' after %q", ofClass.SName.GlobalName()+"::")
				break collect
			}
			p.nextToken()
			prefixes = append(prefixes, prefixOp{kind: prefixPointerToMember, ofClass: ofClass, span: span})
		default:
			break collect
		}
	}

	chain := ast.NewChain()
	ident := ""
	switch {
	case p.curIsType(token.LPAREN):
		p.nextToken()
		inner, innerIdent := p.parseDeclaratorChain(ctx)
		chain = inner
		ident = innerIdent
		if p.curIsType(token.RPAREN) {
			p.nextToken()
		} else {
			p.errorf("expected ')', got %q", p.curToken.String())
		}
	case p.curToken.Type == token.IDENT:
		ident = p.curToken.Lexeme
		p.nextToken()
	}

	p.parsePostfix(chain, ctx)
	p.pushPrefixes(chain, prefixes)
	return chain, ident
}

// parsePostfix pushes each `[...]`/`(...)` suffix onto chain as soon as
// it's seen, so the first one encountered becomes the chain's head.
func (p *Parser) parsePostfix(chain *ast.Chain, ctx DeclContext) {
	for {
		switch {
		case p.curIsType(token.LBRACKET):
			span := p.spanAtCur()
			p.nextToken()
			size := p.parseArraySize()
			if p.curIsType(token.RBRACKET) {
				p.nextToken()
			} else {
				p.errorf("expected ']', got %q", p.curToken.String())
			}
			arr, err := p.arena.NewArray(span, nil, size)
			if err != nil {
				p.errorf("%s", err.Error())
				continue
			}
			chain.Push(arr, func(inner *ast.Node) { arr.Of = inner })

		case p.curIsType(token.LPAREN):
			span := p.spanAtCur()
			p.nextToken()
			params, variadic := p.parseParamList(ctx)
			if p.curIsType(token.RPAREN) {
				p.nextToken()
			} else {
				p.errorf("expected ')', got %q", p.curToken.String())
			}
			qualifiers := p.parseFunctionQualifiers()
			fn := p.arena.NewFunction(span, nil, params, qualifiers, variadic)
			chain.Push(fn, func(inner *ast.Node) { fn.Ret = inner })

		default:
			return
		}
	}
}

// parseFunctionQualifiers consumes trailing cv-qualifiers, ref-
// qualifiers, and noexcept on a function declarator
// (`int f() const noexcept`), combining them into one Type the same way
// parseBaseRun does for the base-type specifier.
func (p *Parser) parseFunctionQualifiers() ctype.Type {
	var acc ctype.Type
	for {
		switch p.curToken.Lexeme {
		case "const", "volatile", "noexcept":
			a, ok := wordAtoms[p.curToken.Lexeme]
			if !ok {
				return acc
			}
			acc = p.combine(acc, atomType(a))
			p.nextToken()
			continue
		}
		if p.curIsType(token.AMP) {
			acc = p.combine(acc, atomType(wordAtoms["&"]))
			p.nextToken()
			continue
		}
		if p.curIsType(token.AMP_AMP) {
			acc = p.combine(acc, atomType(wordAtoms["&&"]))
			p.nextToken()
			continue
		}
		return acc
	}
}

// pushPrefixes pushes the collected prefix operators in reverse of
// their collection order: the one nearest the identifier was collected
// last and must become the outermost of the prefixes (nested inside
// whatever postfix layer already claimed the chain's head).
func (p *Parser) pushPrefixes(chain *ast.Chain, prefixes []prefixOp) {
	for i := len(prefixes) - 1; i >= 0; i-- {
		op := prefixes[i]
		switch op.kind {
		case prefixPointer:
			ptr := p.arena.NewPointer(op.span, nil)
			chain.Push(ptr, func(inner *ast.Node) { ptr.To = inner })
		case prefixReference:
			ref, err := p.arena.NewReference(op.span, nil)
			if err != nil {
				p.errorf("%s", err.Error())
				continue
			}
			chain.Push(ref, func(inner *ast.Node) { ref.To = inner })
		case prefixRvalueReference:
			ref, err := p.arena.NewRvalueReference(op.span, nil)
			if err != nil {
				p.errorf("%s", err.Error())
				continue
			}
			chain.Push(ref, func(inner *ast.Node) { ref.To = inner })
		case prefixPointerToMember:
			ptm, err := p.arena.NewPointerToMember(op.span, op.ofClass, nil)
			if err != nil {
				p.errorf("%s", err.Error())
				continue
			}
			chain.Push(ptm, func(inner *ast.Node) { ptm.To = inner })
		}
	}
}

// parsePointerToMemberClass parses `Name::` (already knowing Name is
// followed by `::`) and resolves it to a Class/Struct/Union/Typedef
// node via the registry, defaulting to an unresolved Class tag when the
// name isn't a known typedef — the checker is where full legality
// (must actually name a class/struct/union) is enforced (spec §4.3's
// NewPointerToMember invariant covers only the dialect-independent
// half).
func (p *Parser) parsePointerToMemberClass(ctx DeclContext) *ast.Node {
	span := p.spanAtCur()
	name := p.parseSName()
	// curToken is now "::"; caller already peeked it to get here.
	if p.curIsType(token.COLON_COLON) {
		p.nextToken()
	}
	if ctx.Reg != nil {
		if entry, ok := ctx.Reg.Find(name, ctx.Active); ok {
			return p.arena.NewTypedef(span, name, entry.Ref)
		}
	}
	return p.arena.NewTag(span, ast.KindClass, name, nil)
}

func (p *Parser) parseArraySize() ast.ArraySize {
	switch {
	case p.curIsType(token.RBRACKET):
		return ast.ArraySize{Kind: ast.ArraySizeNone}
	case p.curToken.Lexeme == "*":
		p.nextToken()
		return ast.ArraySize{Kind: ast.ArraySizeStar}
	case p.curToken.Type == token.NUMBER:
		n := parseIntLiteral(p.curToken.Lexeme)
		p.nextToken()
		return ast.ArraySize{Kind: ast.ArraySizeN, N: n}
	default:
		// A non-constant expression: consume tokens up to ']' without
		// modeling their value (spec §3's ArraySizeVariable).
		for !p.curIsType(token.RBRACKET) && !p.curIsType(token.EOF) {
			p.nextToken()
		}
		return ast.ArraySize{Kind: ast.ArraySizeVariable}
	}
}

func parseIntLiteral(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// parseParamList parses a function declarator's parameter list:
// comma-separated declarations, a bare `void` meaning zero parameters,
// or a trailing `...` marking the function variadic.
func (p *Parser) parseParamList(ctx DeclContext) ([]*ast.Node, bool) {
	if p.curIsType(token.RPAREN) {
		return nil, false
	}
	if p.curTokenIs("void") && p.peekIsType(token.RPAREN) {
		p.nextToken()
		return nil, false
	}
	var params []*ast.Node
	variadic := false
	for {
		if p.curIsType(token.ELLIPSIS) {
			variadic = true
			p.nextToken()
			break
		}
		params = append(params, p.parseOneDeclarator(ctx))
		if p.curIsType(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	return params, variadic
}
