// Package decl implements the declaration renderer of spec §4.6 (C6):
// declarator inversion with precedence-driven parenthesization, east/west
// const placement, digraph/trigraph rewriting, and alt-token spelling.
package decl

import (
	"fmt"
	"strings"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/options"
)

// explicitIntMask translates the option-layer bitmask into ctype's
// rendering-layer mask, same translation internal/render/english carries
// (see its doc comment) and duplicated rather than shared because the
// two renderers otherwise have no reason to depend on each other.
func explicitIntMask(o options.ExplicitIntBit) ctype.ExplicitIntMask {
	var m ctype.ExplicitIntMask
	if o&options.ExplicitSignedShort != 0 {
		m |= ctype.ExplicitSignedShort
	}
	if o&options.ExplicitUnsignedShort != 0 {
		m |= ctype.ExplicitUnsignedShort
	}
	if o&options.ExplicitSignedInt != 0 {
		m |= ctype.ExplicitSignedInt
	}
	if o&options.ExplicitUnsignedInt != 0 {
		m |= ctype.ExplicitUnsignedInt
	}
	if o&options.ExplicitSignedLong != 0 {
		m |= ctype.ExplicitSignedLong
	}
	if o&options.ExplicitUnsignedLong != 0 {
		m |= ctype.ExplicitUnsignedLong
	}
	if o&options.ExplicitSignedLongLong != 0 {
		m |= ctype.ExplicitSignedLongLong
	}
	if o&options.ExplicitUnsignedLongLong != 0 {
		m |= ctype.ExplicitUnsignedLongLong
	}
	return m
}

// altTokenSpelling is the iso646.h alternative spelling table consulted
// when opts.AltTokens is set (spec §4.8, "C6 emits and, or, etc.").
var altTokenSpelling = map[string]string{
	"&&": "and", "||": "or", "!": "not", "!=": "not_eq",
	"&": "bitand", "|": "bitor", "^": "xor", "~": "compl",
	"&=": "and_eq", "|=": "or_eq", "^=": "xor_eq",
}

func opSpelling(op string, opts options.Options) string {
	if opts.AltTokens {
		if alt, ok := altTokenSpelling[op]; ok {
			return alt
		}
	}
	return op
}

// operatorSuffix is the token that follows "operator" in an operator
// declaration: alt-token spellings are words (`and`, `bitand`, ...) and
// need a separating space, unlike the punctuation spellings they stand
// in for (`operator+`, `operator[]`).
func operatorSuffix(op string, opts options.Options) string {
	spelled := opSpelling(op, opts)
	if spelled != op {
		return " " + spelled
	}
	return spelled
}

// trigraphTable and digraphTable are the ISO rewrite tables for the nine
// (resp. five) punctuation characters each scheme covers (spec §4.6).
var trigraphTable = map[rune]string{
	'#': "??=", '[': "??(", ']': "??)", '{': "??<", '}': "??>",
	'|': "??!", '^': "??'", '~': "??-", '\\': "??/",
}

var digraphTable = map[rune]string{
	'[': "<:", ']': ":>", '{': "<%", '}': "%>", '#': "%:",
}

func graphRewrite(s string, mode options.GraphMode) string {
	var table map[rune]string
	switch mode {
	case options.GraphDigraphs:
		table = digraphTable
	case options.GraphTrigraphs:
		table = trigraphTable
	default:
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if rep, ok := table[r]; ok {
			b.WriteString(rep)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render turns n into its C/C++ declaration string under opts, inserting
// ident at the declared name's position, e.g. Render(n, "x", opts) →
// "const int *x[10];".
func Render(n *ast.Node, ident string, opts options.Options) string {
	s := rootDecl(n, ident, opts)
	if prefix := declFlagsPrefix(n, opts); prefix != "" {
		s = prefix + " " + s
	}
	s = graphRewrite(s, opts.Graph)
	if opts.Semicolon {
		s += ";"
	}
	return s
}

// declFlagsPrefix emits the storage-class keywords the declarator chain
// was parsed under (spec §3, DeclFlags — "static", "typedef", "mutable"
// and similar), which qualify the whole declaration rather than any one
// node in its chain.
func declFlagsPrefix(n *ast.Node, opts options.Options) string {
	return ctype.DeclBase(ctype.Type{Storage: n.DeclFlags.Storage}, 0)
}

// RenderTypedef renders n the way `show` always wants a registry entry
// spelled: under a single leading "typedef" keyword, whether or not the
// declaration that originally registered it spelled one itself (`show`
// after `typedef struct S {...} S;` still owes the reader "typedef
// struct S S;"). Any typedef keyword already baked into n's own
// DeclFlags is suppressed so it isn't doubled.
func RenderTypedef(n *ast.Node, ident string, opts options.Options) string {
	s := rootDecl(n, ident, opts)
	if prefix := ctype.DeclBase(ctype.Type{Storage: n.DeclFlags.Storage &^ ctype.TypedefKw.Bit}, 0); prefix != "" {
		s = prefix + " " + s
	}
	s = "typedef " + s
	s = graphRewrite(s, opts.Graph)
	if opts.Semicolon {
		s += ";"
	}
	return s
}

// rootDecl dispatches the handful of kinds that are always the
// declarator's root and never an intermediate link — constructors,
// destructors, and conversion/literal operators don't nest under a
// further pointer/array/function the way ordinary declarators do.
func rootDecl(n *ast.Node, ident string, opts options.Options) string {
	switch n.Kind {
	case ast.KindConstructor:
		args := renderParamList(n.Params, false, opts)
		return n.SName.GlobalName() + "(" + args + ")"

	case ast.KindDestructor:
		return "~" + n.SName.GlobalName() + "()"

	case ast.KindUserDefinedConversion:
		return "operator " + declare(n.To, "", opts) + "()"

	case ast.KindUserDefinedLiteral:
		args := renderParamList(n.Params, false, opts)
		ret := declare(n.Ret, "", opts)
		core := `operator"" ` + ident + "(" + args + ")"
		if ret == "" {
			return core
		}
		return ret + " " + core

	case ast.KindOperator:
		return declare(n, "operator"+operatorSuffix(n.OpID, opts), opts)

	default:
		return declare(n, ident, opts)
	}
}

// declare walks one declarator chain, accumulating core (the string that
// belongs where the identifier goes) outward from the leaf, injecting
// parentheses whenever a pointer/reference/pointer-to-member wraps an
// array or function (spec §4.6, "array/function bind tighter than
// pointer/reference"; P5).
func declare(n *ast.Node, core string, opts options.Options) string {
	if n == nil {
		return core
	}

	switch n.Kind {
	case ast.KindPointer:
		s := "*" + core
		if needsParens(n.To) {
			s = "(" + s + ")"
		}
		return declare(n.To, s, opts)

	case ast.KindReference:
		s := opSpelling("&", opts) + core
		if needsParens(n.To) {
			s = "(" + s + ")"
		}
		return declare(n.To, s, opts)

	case ast.KindRvalueReference:
		s := opSpelling("&&", opts) + core
		if needsParens(n.To) {
			s = "(" + s + ")"
		}
		return declare(n.To, s, opts)

	case ast.KindPointerToMember:
		cls := ""
		if n.OfClass != nil {
			cls = n.OfClass.SName.GlobalName() + "::"
		}
		s := cls + "*" + core
		if needsParens(n.To) {
			s = "(" + s + ")"
		}
		return declare(n.To, s, opts)

	case ast.KindArray:
		s := core + "[" + arraySizeToken(n.ArraySize) + "]"
		return declare(n.Of, s, opts)

	case ast.KindFunction, ast.KindOperator:
		args := renderParamList(n.Params, n.Variadic, opts)
		s := core + "(" + args + ")" + funcQualifiers(n.Type, opts)
		return declare(n.Ret, s, opts)

	case ast.KindApplBlock:
		args := renderParamList(n.Params, n.Variadic, opts)
		s := "^" + core + "(" + args + ")"
		return declare(n.Ret, s, opts)

	default:
		return baseTypeDecl(n, core, opts)
	}
}

// needsParens reports whether a pointer/reference/pointer-to-member
// wrapping child must be parenthesized: true exactly when child is one
// of the tighter-binding declarator kinds (array, function, block).
func needsParens(child *ast.Node) bool {
	if child == nil {
		return false
	}
	switch child.Kind {
	case ast.KindArray, ast.KindFunction, ast.KindOperator, ast.KindApplBlock:
		return true
	}
	return false
}

func arraySizeToken(sz ast.ArraySize) string {
	switch sz.Kind {
	case ast.ArraySizeN:
		return fmt.Sprintf("%d", sz.N)
	case ast.ArraySizeStar:
		return "*"
	default:
		return ""
	}
}

// funcQualifiers renders a function/operator's trailing cv-ref-qualifiers
// and noexcept-specifier (spec §3's Function/Operator qualifier set,
// stored on Type since they're not storage or base atoms).
func funcQualifiers(t ctype.Type, opts options.Options) string {
	var parts []string
	if t.Has(ctype.ConstKw) {
		parts = append(parts, "const")
	}
	if t.Has(ctype.VolatileKw) {
		parts = append(parts, "volatile")
	}
	if t.Has(ctype.RefLvalue) {
		parts = append(parts, opSpelling("&", opts))
	}
	if t.Has(ctype.RefRvalue) {
		parts = append(parts, opSpelling("&&", opts))
	}
	if t.Has(ctype.NoexceptKw) {
		parts = append(parts, "noexcept")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// baseTypeDecl is the terminal step of declare: n is a Builtin, Typedef,
// tag, or bare Name, and core is the fully-built declarator string to
// its right.
func baseTypeDecl(n *ast.Node, core string, opts options.Options) string {
	base := baseTypeString(n, opts)
	switch {
	case base == "":
		return core
	case core == "":
		return base
	default:
		return base + " " + core
	}
}

func baseTypeString(n *ast.Node, opts options.Options) string {
	switch n.Kind {
	case ast.KindBuiltin:
		mask := explicitIntMask(opts.ExplicitInt)
		base := ctype.DeclBase(n.Type, mask)
		cv := ctype.DeclCV(n.Type)
		switch {
		case cv == "":
			return base
		case base == "":
			return cv
		case opts.EastConst:
			return base + " " + cv
		default:
			return cv + " " + base
		}

	case ast.KindTypedef:
		return n.SName.GlobalName()

	case ast.KindEnum, ast.KindClass, ast.KindStruct, ast.KindUnion:
		return tagTypeString(n, opts)

	case ast.KindName:
		return n.SName.GlobalName()

	default:
		return ""
	}
}

// tagTypeString spells a tag type's reference: C always needs the tag
// keyword, C++ allows the bare name once the tag is declared unless
// explicit_ecsu asks for it anyway (spec §4.8).
func tagTypeString(n *ast.Node, opts options.Options) string {
	name := n.SName.GlobalName()
	if opts.Dialect.IsCPP() && !opts.HasExplicitECSU(ecsuBit(n.Kind)) {
		return name
	}
	return tagKeyword(n.Kind) + " " + name
}

func ecsuBit(k ast.Kind) options.ExplicitECSUBit {
	switch k {
	case ast.KindEnum:
		return options.ExplicitEnum
	case ast.KindClass:
		return options.ExplicitClass
	case ast.KindStruct:
		return options.ExplicitStruct
	case ast.KindUnion:
		return options.ExplicitUnion
	default:
		return 0
	}
}

func tagKeyword(k ast.Kind) string {
	switch k {
	case ast.KindEnum:
		return "enum"
	case ast.KindClass:
		return "class"
	case ast.KindStruct:
		return "struct"
	case ast.KindUnion:
		return "union"
	default:
		return ""
	}
}

func renderParamList(params []*ast.Node, variadic bool, opts options.Options) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, declare(p, "", opts))
	}
	if variadic {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
