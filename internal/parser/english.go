// Package parser: the English DSL parser, the mirror image of
// internal/render/english — it recognizes the exact phrase shapes that
// renderer emits ("pointer to", "array N of", "function (...) returning
// ...", the tag words "enumeration"/"structure", and so on) and builds
// the same ast.Node tree Render would have been given.
//
// Two deliberate, documented scope cuts keep this from chasing every
// prose spelling the renderer can produce:
//
//   - Storage-class and cv-qualifier keywords are recognized by their
//     C-keyword spelling ("static", "const", "_Noreturn", "restrict"),
//     not the renderer's narrative prose ("automatic", "const",
//     "non-returning", "restricted") — real cdecl's English input takes
//     the same shortcut, since those prose spellings exist only to read
//     naturally in `explain` output, not to be retyped. A qualifier
//     directly in front of a wrapper keyword ("const pointer to int",
//     as opposed to "pointer to const int") is unsupported; qual* in
//     the grammar only ever attaches to the base-type leaf it's
//     adjacent to, never to a wrapper.
//   - Hyphenated renderer output ("variable-length", "non-returning",
//     "user-defined") cannot come back through this lexer as one word
//     (the hyphen isn't an identifier character), so the parser accepts
//     "variable length" as two words instead, and does not accept
//     user-defined conversions/literals as English input at all.
package parser

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/sname"
	"github.com/cdeclish/cdeclish/internal/token"
)

// ParseEnglishString parses one bare English type phrase ("pointer to
// const int", with no leading "declare IDENT as"/"cast IDENT into") into
// its declarator root. internal/engine's Declare/Cast entry points peel
// the identifier and connector word off the command argument themselves
// before calling this (see ParseEnglishDeclare/ParseEnglishCast).
func ParseEnglishString(src string, arena *ast.Arena, bag *diagnostics.Bag, ctx DeclContext) *ast.Node {
	p := New(src, arena, bag)
	root := p.parseEnglishDeclaration(ctx)
	ast.WireTree(arena, root)
	return root
}

// ParseEnglishDeclare parses a `declare` command's full argument,
// "IDENT as ENGLISH" (the caller has already stripped the leading
// `declare` verb), returning the declared identifier and the type tree
// with Ident stamped on its leaf exactly as ParseDeclString does for C
// syntax.
func ParseEnglishDeclare(src string, arena *ast.Arena, bag *diagnostics.Bag, ctx DeclContext) (string, *ast.Node) {
	return parseEnglishNamedPhrase(src, arena, bag, ctx, "as")
}

// ParseEnglishCast parses a `cast` command's full argument, "IDENT into
// ENGLISH" (the caller has already stripped the leading `cast` verb),
// the same shape as ParseEnglishDeclare with cdecl's "into" connector in
// place of "as".
func ParseEnglishCast(src string, arena *ast.Arena, bag *diagnostics.Bag, ctx DeclContext) (string, *ast.Node) {
	return parseEnglishNamedPhrase(src, arena, bag, ctx, "into")
}

func parseEnglishNamedPhrase(src string, arena *ast.Arena, bag *diagnostics.Bag, ctx DeclContext, connector string) (string, *ast.Node) {
	p := New(src, arena, bag)
	ident := p.parseIdent()
	p.expectCur(connector)
	root := p.parseEnglishDeclaration(ctx)
	stampIdent(root, ident)
	ast.WireTree(arena, root)
	return ident, root
}

// stampIdent sets ident on the declarator's innermost leaf, following
// the same spine (To/Of/Ret, never Params) decl.go's parseBaseLeaf
// bottoms out at — mirrored here rather than shared since the English
// tree is already fully built top-down instead of assembled via Chain.
func stampIdent(n *ast.Node, ident string) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindPointer, ast.KindReference, ast.KindRvalueReference,
		ast.KindUserDefinedConversion, ast.KindPointerToMember:
		stampIdent(n.To, ident)
	case ast.KindArray:
		stampIdent(n.Of, ident)
	case ast.KindFunction, ast.KindOperator, ast.KindUserDefinedLiteral, ast.KindApplBlock:
		if n.Ret != nil {
			stampIdent(n.Ret, ident)
		} else {
			n.Ident = ident
		}
	default:
		n.Ident = ident
	}
}

// parseEnglishDeclaration implements "english := storage* qual* kind":
// storage words are recognized only once, at the very top, and stamped
// across the whole chain exactly as parseOneDeclarator does for C
// declaration syntax; qual* is left to whichever base-type leaf
// parseEnglishType eventually bottoms out at.
func (p *Parser) parseEnglishDeclaration(ctx DeclContext) *ast.Node {
	storage := p.parseStorageRun(ctx.Active)
	root := p.parseEnglishType(ctx)
	stampDeclFlags(root, ctype.Type{Storage: storage.Storage})
	return root
}

func (p *Parser) parseStorageRun(active dialect.Dialect) ctype.Type {
	var acc ctype.Type
	for {
		if p.curToken.Lexeme == "auto" {
			if autoAtom(active) != ctype.StorageAuto {
				// post-C++11 "auto" is the deduced-type placeholder, not
				// a storage word here; leave it for parseEnglishType's
				// base-run lookup.
				return acc
			}
			acc = p.combine(acc, atomType(ctype.StorageAuto))
			p.nextToken()
			continue
		}
		a, ok := wordAtoms[p.curToken.Lexeme]
		if !ok || a.TPID != ctype.TPStorage {
			return acc
		}
		acc = p.combine(acc, atomType(a))
		p.nextToken()
	}
}

var englishTagKinds = map[string]ast.Kind{
	"enumeration": ast.KindEnum,
	"class":       ast.KindClass,
	"structure":   ast.KindStruct,
	"union":       ast.KindUnion,
}

// parseEnglishType parses one "kind" phrase, recursing for every nested
// type the grammar names (a pointer's target, an array's element, a
// function's parameters and return type, ...).
func (p *Parser) parseEnglishType(ctx DeclContext) *ast.Node {
	switch p.curToken.Lexeme {
	case "pointer":
		return p.parseEnglishPointer(ctx)
	case "reference":
		span := p.spanAtCur()
		p.nextToken()
		p.expectCur("to")
		to := p.parseEnglishType(ctx)
		ref, err := p.arena.NewReference(span, to)
		if err != nil {
			p.errorf("%s", err.Error())
			return to
		}
		return ref
	case "rvalue":
		span := p.spanAtCur()
		p.nextToken()
		p.expectCur("reference")
		p.expectCur("to")
		to := p.parseEnglishType(ctx)
		ref, err := p.arena.NewRvalueReference(span, to)
		if err != nil {
			p.errorf("%s", err.Error())
			return to
		}
		return ref
	case "array":
		return p.parseEnglishArray(ctx)
	case "function", "block":
		return p.parseEnglishFunction(ctx)
	case "operator":
		return p.parseEnglishOperator(ctx)
	case "constructor":
		span := p.spanAtCur()
		p.nextToken()
		params := p.parseEnglishOptionalParens(ctx)
		return p.arena.NewConstructor(span, sname.SName{}, params)
	case "destructor":
		span := p.spanAtCur()
		p.nextToken()
		return p.arena.NewDestructor(span, sname.SName{})
	}

	if kind, ok := englishTagKinds[p.curToken.Lexeme]; ok {
		span := p.spanAtCur()
		p.nextToken()
		name := p.parseSName()
		return p.arena.NewTag(span, kind, name, nil)
	}

	base := p.parseBaseRun(ctx.Active)
	return p.parseBaseLeaf(base, ctx)
}

// parseEnglishPointer handles both plain "pointer to X" and
// "pointer to member of NAME to X", matching the exact phrase
// internal/render/english emits (no tag keyword before NAME: the
// renderer only ever writes the bare scoped name there).
func (p *Parser) parseEnglishPointer(ctx DeclContext) *ast.Node {
	span := p.spanAtCur()
	p.nextToken()
	var ofClass *ast.Node
	if p.curTokenIs("to") && p.peekTokenIs("member") {
		p.nextToken()
		p.nextToken()
		p.expectCur("of")
		classSpan := p.spanAtCur()
		name := p.parseSName()
		ofClass = p.arena.NewTag(classSpan, ast.KindClass, name, nil)
	}
	p.expectCur("to")
	to := p.parseEnglishType(ctx)
	if ofClass != nil {
		ptm, err := p.arena.NewPointerToMember(span, ofClass, to)
		if err != nil {
			p.errorf("%s", err.Error())
			return to
		}
		return ptm
	}
	return p.arena.NewPointer(span, to)
}

// parseEnglishArray matches "array N of X", "array of X" (no size), and
// "array variable length of X" — the latter spelled with a space since
// the renderer's own "variable-length" can't come back through the
// lexer as one word.
func (p *Parser) parseEnglishArray(ctx DeclContext) *ast.Node {
	span := p.spanAtCur()
	p.nextToken()
	var size ast.ArraySize
	switch {
	case p.curToken.Type == token.NUMBER:
		size = ast.ArraySize{Kind: ast.ArraySizeN, N: parseIntLiteral(p.curToken.Lexeme)}
		p.nextToken()
	case p.curTokenIs("variable") && p.peekTokenIs("length"):
		p.nextToken()
		p.nextToken()
		size = ast.ArraySize{Kind: ast.ArraySizeVariable}
	default:
		size = ast.ArraySize{Kind: ast.ArraySizeNone}
	}
	p.expectCur("of")
	of := p.parseEnglishType(ctx)
	arr, err := p.arena.NewArray(span, of, size)
	if err != nil {
		p.errorf("%s", err.Error())
		return of
	}
	return arr
}

func (p *Parser) parseEnglishFunction(ctx DeclContext) *ast.Node {
	isBlock := p.curToken.Lexeme == "block"
	span := p.spanAtCur()
	p.nextToken()
	var params []*ast.Node
	variadic := false
	if p.curIsType(token.LPAREN) {
		p.nextToken()
		params, variadic = p.parseEnglishParamList(ctx)
		p.expectCur(")")
	}
	var ret *ast.Node
	if p.curTokenIs("returning") {
		p.nextToken()
		ret = p.parseEnglishType(ctx)
	}
	if isBlock {
		return p.arena.NewApplBlock(span, ret, params)
	}
	return p.arena.NewFunction(span, ret, params, ctype.Type{}, variadic)
}

func (p *Parser) parseEnglishOperator(ctx DeclContext) *ast.Node {
	span := p.spanAtCur()
	p.nextToken()
	opID := p.readOperatorID()
	var params []*ast.Node
	variadic := false
	if p.curIsType(token.LPAREN) {
		p.nextToken()
		params, variadic = p.parseEnglishParamList(ctx)
		p.expectCur(")")
	}
	var ret *ast.Node
	if p.curTokenIs("returning") {
		p.nextToken()
		ret = p.parseEnglishType(ctx)
	}
	return p.arena.NewOperator(span, opID, ret, params, ctype.Type{}, variadic)
}

// readOperatorID reads the operator token following "operator":
// "operator[]" and "operator()" are each two adjacent tokens collapsed
// to one id, everything else (+, ==, ->, ...) is whatever single PUNCT/
// STAR/AMP token the lexer already produced.
func (p *Parser) readOperatorID() string {
	switch {
	case p.curIsType(token.LBRACKET) && p.peekIsType(token.RBRACKET):
		p.nextToken()
		p.nextToken()
		return "[]"
	case p.curIsType(token.LPAREN) && p.peekIsType(token.RPAREN):
		p.nextToken()
		p.nextToken()
		return "()"
	default:
		id := p.curToken.Lexeme
		p.nextToken()
		return id
	}
}

func (p *Parser) parseEnglishOptionalParens(ctx DeclContext) []*ast.Node {
	if !p.curIsType(token.LPAREN) {
		return nil
	}
	p.nextToken()
	params, _ := p.parseEnglishParamList(ctx)
	p.expectCur(")")
	return params
}

// parseEnglishParamList parses comma-separated English type phrases (no
// parameter names — the English grammar never names them, per
// render/english's renderArgs) and a trailing "..." for variadic.
func (p *Parser) parseEnglishParamList(ctx DeclContext) ([]*ast.Node, bool) {
	if p.curIsType(token.RPAREN) {
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
		params = append(params, p.parseEnglishType(ctx))
		if p.curIsType(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	return params, variadic
}

// expectCur advances past curToken if it has the wanted lexeme,
// otherwise records a syntax diagnostic without advancing.
func (p *Parser) expectCur(lexeme string) bool {
	if p.curTokenIs(lexeme) {
		p.nextToken()
		return true
	}
	p.errorf("expected %q, got %q", lexeme, p.curToken.String())
	return false
}
