package typedef

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/sname"
)

// predefinedArena owns the AST nodes backing every built-in alias. It is
// never pushed onto an ast.ArenaStack and never released — predefined
// entries outlive any one command the way the teacher's prelude
// SymbolTable outlives any one compilation unit (symbols.GetPrelude).
var predefinedArena = ast.NewArena()

type predefined struct {
	name      string
	base      ctype.TID
	definedIn dialect.Dialect
}

// builtinAliases lists the standard-library width-typedefs and similar
// predefined names a cdecl-like tool recognizes out of the box, each
// gated by the dialect it was actually introduced in (spec §4.7,
// "dialects_defined_in ... tested against the active dialect").
var builtinAliases = []predefined{
	{"size_t", ctype.Unsigned.Bit | ctype.Long.Bit, dialect.Any},
	{"ptrdiff_t", ctype.Long.Bit, dialect.Any},
	{"wchar_t", ctype.WcharT.Bit, dialect.Any &^ dialect.KNRC},
	{"int8_t", ctype.Signed.Bit | ctype.Char.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"uint8_t", ctype.Unsigned.Bit | ctype.Char.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"int16_t", ctype.Signed.Bit | ctype.Short.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"uint16_t", ctype.Unsigned.Bit | ctype.Short.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"int32_t", ctype.Signed.Bit | ctype.Int.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"uint32_t", ctype.Unsigned.Bit | ctype.Int.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"int64_t", ctype.Signed.Bit | ctype.LongLong.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"uint64_t", ctype.Unsigned.Bit | ctype.LongLong.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"intptr_t", ctype.Signed.Bit | ctype.Long.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
	{"uintptr_t", ctype.Unsigned.Bit | ctype.Long.Bit, dialect.C99 | dialect.C11 | dialect.C17 | dialect.C23 | dialect.AllCPP},
}

func (r *Registry) loadPredefined() {
	for _, p := range builtinAliases {
		n := predefinedArena.NewBuiltin(ast.Span{})
		n.Type = ctype.Type{Base: p.base}
		consumed, name := sname.Parse(p.name)
		_ = consumed
		e := &Entry{Name: name, Ref: n, DialectsDefinedIn: p.definedIn, Predefined: true}
		k := r.key(name)
		r.entries[k] = e
		r.order = append(r.order, name)
	}
}
