package parser

import (
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
)

// wordAtoms indexes every single-word Decl spelling to its atom, except
// "auto": ctype.StorageAuto (the pre-C++11 storage class) and
// ctype.AutoType (the C++11 deduced-type placeholder) both spell
// "auto", and their Dialects masks are complementary, so parseBaseRun
// resolves that one collision itself by consulting the active dialect
// instead of this table. "long long" is handled specially in
// parseBaseRun since it is the only multi-word spelling reachable
// through ordinary keyword tokens; the bracketed attributes
// ([[nodiscard]] and friends) are out of scope — they never lex as one
// word, and no scenario exercises parsing them back in.
var wordAtoms = indexWordAtoms()

func indexWordAtoms() map[string]*ctype.Atom {
	atoms := ctype.Atoms()
	m := make(map[string]*ctype.Atom, len(atoms))
	for i := range atoms {
		a := &atoms[i]
		switch a.Decl {
		case "auto", "long long", "[[nodiscard]]", "[[deprecated]]", "[[maybe_unused]]":
			continue
		}
		m[a.Decl] = a
	}
	return m
}

// parseBaseRun implements the ExpectBase state of spec §4.9's DeclBuild
// machine: greedily consume storage/qualifier/base-type keyword tokens,
// combining them into one Type, stopping at the first token that isn't
// a recognized atom spelling (a declarator operator, an identifier, a
// tag keyword, or end of input).
func (p *Parser) parseBaseRun(active dialect.Dialect) ctype.Type {
	var acc ctype.Type
	for {
		if p.curToken.Lexeme == "long" && p.peekToken.Lexeme == "long" {
			acc = p.combine(acc, ctype.Type{Base: ctype.LongLong.Bit})
			p.nextToken()
			p.nextToken()
			continue
		}
		if p.curToken.Lexeme == "auto" {
			acc = p.combine(acc, atomType(autoAtom(active)))
			p.nextToken()
			continue
		}
		a, ok := wordAtoms[p.curToken.Lexeme]
		if !ok {
			return acc
		}
		acc = p.combine(acc, atomType(a))
		p.nextToken()
	}
}

// autoAtom picks which "auto" atom a bare "auto" token means under
// active: the C++11-and-later deduced-type placeholder, or the older
// storage-class keyword every earlier dialect (and C throughout) uses.
func autoAtom(active dialect.Dialect) *ctype.Atom {
	if active&dialect.AtLeast(dialect.CPP11) != 0 && active.IsCPP() {
		return ctype.AutoType
	}
	return ctype.StorageAuto
}

func atomType(a *ctype.Atom) ctype.Type {
	switch a.TPID {
	case ctype.TPBase:
		return ctype.Type{Base: a.Bit}
	case ctype.TPStorage:
		return ctype.Type{Storage: a.Bit}
	default:
		return ctype.Type{Attr: a.Bit}
	}
}

func (p *Parser) combine(a, b ctype.Type) ctype.Type {
	combined, conflict := ctype.Combine(a, b)
	if conflict != nil {
		p.errorf("conflicting type specifiers at %q", p.curToken.Lexeme)
		return a
	}
	return combined
}
