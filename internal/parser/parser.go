// Package parser implements recursive-descent parsers that turn either
// cdeclish surface syntax into an ast.Node tree via the arena/Chain
// machinery of internal/ast, grounded on the teacher's curToken/
// peekToken/nextToken/expectPeek idiom (internal/parser/types.go,
// parser_kind.go) — the teacher repo's own Parser struct definition
// could not be located in the retrieved pack, so the struct below is
// reconstructed from how every call site in that package uses it.
package parser

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/lexer"
	"github.com/cdeclish/cdeclish/internal/token"
)

// Parser holds the two-token lookahead window the recursive-descent
// rules below are written against.
type Parser struct {
	toks []token.Token
	pos  int

	curToken  token.Token
	peekToken token.Token

	arena *ast.Arena
	bag   *diagnostics.Bag
}

// New starts a Parser over src's token stream, allocating nodes in
// arena and collecting diagnostics into bag.
func New(src string, arena *ast.Arena, bag *diagnostics.Bag) *Parser {
	p := &Parser{toks: lexer.Tokenize(src), arena: arena, bag: bag}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.toks) {
		p.peekToken = p.toks[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(lexeme string) bool  { return p.curToken.Lexeme == lexeme }
func (p *Parser) peekTokenIs(lexeme string) bool { return p.peekToken.Lexeme == lexeme }

func (p *Parser) curIsType(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIsType(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it has the wanted lexeme,
// otherwise records a syntax diagnostic and returns false.
func (p *Parser) expectPeek(lexeme string) bool {
	if p.peekTokenIs(lexeme) {
		p.nextToken()
		return true
	}
	p.errorf("expected %q, got %q", lexeme, p.peekToken.String())
	return false
}

func (p *Parser) expectPeekType(t token.Type, what string) bool {
	if p.peekIsType(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %q", what, p.peekToken.String())
	return false
}

func (p *Parser) errorf(format string, args ...any) {
	p.bag.Addf(diagnostics.Error, diagnostics.CodeSyntaxUnexpectedToken, p.spanAtCur(), format, args...)
}

func (p *Parser) spanAtCur() ast.Span {
	pos := ast.Pos{Line: p.curToken.Line, Column: p.curToken.Column}
	return ast.Span{Start: pos, End: pos}
}

// parseIdent consumes an IDENT token and returns its lexeme, or "" with
// a diagnostic if curToken isn't one.
func (p *Parser) parseIdent() string {
	if p.curToken.Type != token.IDENT {
		p.errorf("expected an identifier, got %q", p.curToken.String())
		return ""
	}
	name := p.curToken.Lexeme
	p.nextToken()
	return name
}
