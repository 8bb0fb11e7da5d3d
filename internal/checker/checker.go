// Package checker implements the AST semantic checker of spec §4.4
// (C4): a top-down walk that computes each subtree's derived Type and
// enforces type legality, declarator shape, storage-class unicity,
// function/class-member constraints, scope checks, alignas, and
// operator arity — collecting diagnostics rather than stopping at the
// first one, mirroring the teacher's "accumulate everything a stage can
// say, let the command dispatcher decide" pipeline discipline
// (internal/pipeline/pipeline.go).
package checker

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
	"github.com/cdeclish/cdeclish/internal/options"
	"github.com/cdeclish/cdeclish/internal/typedef"
)

// Check validates root under opts, consulting reg for scope-kind
// resolution (C2's SetAllTypes) and returns every diagnostic found. An
// empty Bag (Len() == 0) means root passed every check.
func Check(root *ast.Node, opts options.Options, reg *typedef.Registry) *diagnostics.Bag {
	bag := &diagnostics.Bag{}
	if root == nil {
		return bag
	}
	c := &checkerState{opts: opts, reg: reg, bag: bag}
	ast.Visit(root, ast.Down, func(n *ast.Node) bool {
		c.checkNode(n)
		return true
	})
	return bag
}

type checkerState struct {
	opts options.Options
	reg  *typedef.Registry
	bag  *diagnostics.Bag
}

func (c *checkerState) checkNode(n *ast.Node) {
	c.checkTypeLegality(n)
	c.checkDeclaratorShape(n)
	c.checkStorageUnicity(n)
	c.checkFunction(n)
	c.checkClassMember(n)
	c.checkScope(n)
	c.checkAlignas(n)
	c.checkOperator(n)
}

// --- 1. Type legality ---------------------------------------------------

func (c *checkerState) checkTypeLegality(n *ast.Node) {
	if !hasMeaningfulType(n) {
		return
	}
	v := ctype.IsLegal(n.Type, c.opts.Dialect)
	if v.Legal {
		return
	}
	d := c.bag.Addf(diagnostics.Error, diagnostics.CodeDialectUnavailable, n.Span,
		"type is not legal in %s", c.opts.Dialect)
	if v.MinDialect != 0 {
		d.MinDialect = v.MinDialect
		d.HasMinDialect = true
	}
}

func hasMeaningfulType(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindBuiltin, ast.KindFunction, ast.KindOperator, ast.KindUserDefinedConversion:
		return true
	default:
		return false
	}
}

// --- 2. Declarator shape -------------------------------------------------

func (c *checkerState) checkDeclaratorShape(n *ast.Node) {
	switch n.Kind {
	case ast.KindFunction, ast.KindOperator:
		if n.Ret != nil && (n.Ret.Kind == ast.KindFunction || n.Ret.Kind == ast.KindArray) {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"function returning %s is not allowed", n.Ret.Kind)
		}
	case ast.KindPointer:
		if n.To != nil && (n.To.Kind == ast.KindReference || n.To.Kind == ast.KindRvalueReference) {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"pointer to %s is not allowed", n.To.Kind)
		}
	case ast.KindReference, ast.KindRvalueReference:
		if n.To != nil && n.To.Kind == ast.KindBuiltin && n.To.Type.Has(ctype.Void) {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"reference to void is not allowed")
		}
		if n.To != nil && n.To.BitfieldWidth != nil {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"reference to bitfield is not allowed")
		}
	case ast.KindArray:
		// NewArray's construction-time guard only sees n.Of when the
		// array is built bottom-up with its element already in hand; the
		// C-declarator parser instead builds Array nodes with a nil Of
		// and wires it in later through the chain-closure mechanism, so
		// this is the only place array-of-reference and array-of-function
		// are actually caught on that path.
		if n.Of != nil {
			switch n.Of.Kind {
			case ast.KindReference, ast.KindRvalueReference:
				c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
					"array of %s is not allowed", n.Of.Kind)
			case ast.KindFunction:
				c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
					"array of function is not allowed")
			}
		}
	}

	if n.BitfieldWidth != nil {
		if n.Kind != ast.KindBuiltin || !isIntegral(n.Type) {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"bitfield on non-integral type is not allowed")
		}
	}

	if n.Type.Has(ctype.RestrictKw) && n.Kind != ast.KindPointer {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"'restrict' is only allowed on pointers")
	}

	if n.Type.Has(ctype.Register) && c.opts.Dialect.IsCPP() &&
		c.opts.Dialect&dialect.AtLeast(dialect.CPP17) != 0 {
		c.bag.Addf(diagnostics.Warning, diagnostics.CodeDeclaratorShape, n.Span,
			"'register' is deprecated and removed as of C++17")
	}

	if n.Type.Has(ctype.AtomicKw) && (n.Kind == ast.KindFunction || n.Kind == ast.KindArray) {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"'_Atomic' on %s is not allowed", n.Kind)
	}
}

func isIntegral(t ctype.Type) bool {
	integral := ctype.Bool.Bit | ctype.Char.Bit | ctype.Char8T.Bit | ctype.Char16T.Bit |
		ctype.Char32T.Bit | ctype.WcharT.Bit | ctype.Short.Bit | ctype.Int.Bit |
		ctype.Long.Bit | ctype.LongLong.Bit
	if t.Base&(ctype.Void.Bit|ctype.Float.Bit|ctype.Double.Bit|ctype.AutoType.Bit) != 0 {
		return false
	}
	return t.Base == 0 || t.Base&integral != 0
}

// --- 3. Storage class unicity --------------------------------------------

func (c *checkerState) checkStorageUnicity(n *ast.Node) {
	// The pairwise unicity group {auto,extern,register,static,
	// thread_local,mutable} is already enforced by ctype.TidAdd/Combine
	// at AST-construction time via the legality table (internal/ctype/
	// legality.go); by the time the checker walks a finished AST, any
	// such conflict already failed to construct. Nothing further to do
	// here beyond the type-legality pass above, which re-validates the
	// combined Type against the active dialect.
}

// --- 4. Function constraints ---------------------------------------------

func (c *checkerState) checkFunction(n *ast.Node) {
	if n.Kind != ast.KindFunction && n.Kind != ast.KindOperator {
		return
	}
	hasKNRNames := false
	for _, p := range n.Params {
		if p.Kind == ast.KindName {
			hasKNRNames = true
		}
	}
	if hasKNRNames && c.opts.Dialect != dialect.KNRC {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"K&R identifier-only parameter lists are only allowed pre-C89")
	}
	allowedUnnamedVariadic := c.opts.Dialect&dialect.AtLeast(dialect.C23) != 0 ||
		c.opts.Dialect&dialect.AtLeast(dialect.CPP23) != 0
	if n.Variadic && len(n.Params) == 0 && !allowedUnnamedVariadic {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"a variadic function requires at least one named parameter before C23")
	}
}

// --- 5. Class-member constraints ------------------------------------------

func (c *checkerState) checkClassMember(n *ast.Node) {
	inClass := ancestorIsClass(n)
	if n.Type.Has(ctype.VirtualKw) && !inClass {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"'virtual' is only allowed on a class member")
	}
	if n.Type.Has(ctype.FriendKw) && !inClass {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"'friend' is only allowed inside a class")
	}
	if n.Kind == ast.KindFunction || n.Kind == ast.KindOperator {
		qualifiesMemberOnly := n.Type.Has(ctype.ConstKw) ||
			n.Type.Has(ctype.VolatileKw) ||
			n.Type.Has(ctype.RefLvalue) ||
			n.Type.Has(ctype.RefRvalue)
		if qualifiesMemberOnly && !inClass {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
				"cv/ref-qualifiers on a function are only allowed on a member function")
		}
	}
}

func ancestorIsClass(n *ast.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Kind == ast.KindClass || p.Kind == ast.KindStruct || p.Kind == ast.KindUnion {
			return true
		}
	}
	return false
}

// --- 6. Scope checks -------------------------------------------------------

// stdPermitted lists the std:: members a strict-mode check allows
// extending (spec §4.4 item 6, "a permitted set of names").
var stdPermitted = map[string]bool{
	"string": true, "wstring": true, "vector": true, "map": true, "set": true,
	"pair": true, "function": true, "nullptr_t": true, "size_t": true,
	"unique_ptr": true, "shared_ptr": true, "weak_ptr": true, "optional": true,
	"variant": true, "tuple": true, "array": true, "initializer_list": true,
}

func (c *checkerState) checkScope(n *ast.Node) {
	if n.SName.Count() == 0 {
		return
	}
	if err := n.SName.Validate(); err != nil {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeNameScope, n.Span, "%s", err.Error())
	}
	if !c.opts.Strict {
		return
	}
	scopes := n.SName.Scopes
	if len(scopes) >= 2 && scopes[0].Name == "std" {
		if !stdPermitted[scopes[1].Name] {
			c.bag.Addf(diagnostics.Error, diagnostics.CodeNameScope, n.Span,
				"'std::%s' is not a permitted extension of namespace std", scopes[1].Name)
		}
	}
}

// --- 7. Alignas -------------------------------------------------------------

// maxAlignment is the implementation-defined ceiling spec §4.4 item 7
// refers to as "implementation max"; cdeclish models a typical 64-bit
// target's largest natively supported alignment.
const maxAlignment = 4096

func (c *checkerState) checkAlignas(n *ast.Node) {
	if !n.Alignas.Set {
		return
	}
	if n.Alignas.AsType != nil {
		return
	}
	if n.Alignas.Bytes <= 0 || n.Alignas.Bytes&(n.Alignas.Bytes-1) != 0 {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"alignas value must be a power of two")
		return
	}
	if n.Alignas.Bytes > maxAlignment {
		c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
			"alignas value exceeds the implementation maximum of %d", maxAlignment)
	}
}

// --- 8. Operators ------------------------------------------------------------

// arity describes one operator's accepted parameter counts, separately
// for member (implicit first operand is the object) and non-member
// (both operands explicit) declarations, per spec §4.4 item 8.
type arity struct {
	member    []int
	nonMember []int
}

var operatorArity = map[string]arity{
	"+": {member: []int{0, 1}, nonMember: []int{1, 2}},
	"-": {member: []int{0, 1}, nonMember: []int{1, 2}},
	"*": {member: []int{0, 1}, nonMember: []int{1, 2}},
	"/": {member: []int{1}, nonMember: []int{2}},
	"%": {member: []int{1}, nonMember: []int{2}},
	"^": {member: []int{1}, nonMember: []int{2}},
	"&": {member: []int{0, 1}, nonMember: []int{1, 2}},
	"|": {member: []int{1}, nonMember: []int{2}},
	"~": {member: []int{0}, nonMember: []int{1}},
	"!": {member: []int{0}, nonMember: []int{1}},
	"=": {member: []int{1}, nonMember: nil},
	"<": {member: []int{1}, nonMember: []int{2}},
	">": {member: []int{1}, nonMember: []int{2}},
	"+=": {member: []int{1}, nonMember: []int{2}},
	"-=": {member: []int{1}, nonMember: []int{2}},
	"*=": {member: []int{1}, nonMember: []int{2}},
	"/=": {member: []int{1}, nonMember: []int{2}},
	"%=": {member: []int{1}, nonMember: []int{2}},
	"^=": {member: []int{1}, nonMember: []int{2}},
	"&=": {member: []int{1}, nonMember: []int{2}},
	"|=": {member: []int{1}, nonMember: []int{2}},
	"<<": {member: []int{1}, nonMember: []int{2}},
	">>": {member: []int{1}, nonMember: []int{2}},
	"<<=": {member: []int{1}, nonMember: []int{2}},
	">>=": {member: []int{1}, nonMember: []int{2}},
	"==": {member: []int{1}, nonMember: []int{2}},
	"!=": {member: []int{1}, nonMember: []int{2}},
	"<=": {member: []int{1}, nonMember: []int{2}},
	">=": {member: []int{1}, nonMember: []int{2}},
	"<=>": {member: []int{1}, nonMember: []int{2}},
	"&&": {member: []int{1}, nonMember: []int{2}},
	"||": {member: []int{1}, nonMember: []int{2}},
	"++": {member: []int{0, 1}, nonMember: []int{1, 2}}, // 1/2 distinguishes post-increment's dummy int
	"--": {member: []int{0, 1}, nonMember: []int{1, 2}},
	",": {member: []int{1}, nonMember: []int{2}},
	"->": {member: []int{0}, nonMember: nil},
	"->*": {member: []int{1}, nonMember: []int{2}},
	"()": {member: nil, nonMember: nil}, // any arity, including zero
	"[]": {member: []int{1}, nonMember: nil},
	"new": {member: []int{1}, nonMember: []int{1}},
	"new[]": {member: []int{1}, nonMember: []int{1}},
	"delete": {member: []int{1}, nonMember: []int{1}},
	"delete[]": {member: []int{1}, nonMember: []int{1}},
}

func (c *checkerState) checkOperator(n *ast.Node) {
	if n.Kind != ast.KindOperator {
		return
	}
	spec, ok := operatorArity[n.OpID]
	if !ok {
		return
	}
	allowed := spec.nonMember
	if ancestorIsClass(n) {
		allowed = spec.member
	}
	if allowed == nil {
		return // unconstrained arity (call operator) or not valid for this form
	}
	got := len(n.Params)
	for _, want := range allowed {
		if got == want {
			return
		}
	}
	c.bag.Addf(diagnostics.Error, diagnostics.CodeDeclaratorShape, n.Span,
		"operator%s takes an unexpected number of parameters (%d)", n.OpID, got)
}

