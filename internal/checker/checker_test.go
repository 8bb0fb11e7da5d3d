package checker

import (
	"testing"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/options"
	"github.com/cdeclish/cdeclish/internal/typedef"
)

func testOpts(d dialect.Dialect) options.Options {
	o := options.Default()
	o.Dialect = d
	return o
}

func TestCharSixteenTIllegalInC89(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Char16T.Bit}

	bag := Check(n, testOpts(dialect.C89), typedef.New())
	if !bag.HasErrors() {
		t.Fatalf("expected char16_t to be rejected in C89")
	}
	if bag.All()[0].Code != "T002" {
		t.Fatalf("got code %v, want T002", bag.All()[0].Code)
	}
}

func TestCharSixteenTLegalInC11(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Char16T.Bit}

	bag := Check(n, testOpts(dialect.C11), typedef.New())
	if bag.HasErrors() {
		t.Fatalf("expected char16_t to be legal in C11, got %v", bag.All())
	}
}

func TestRestrictOnNonPointerRejected(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Int.Bit, Attr: ctype.RestrictKw.Bit}

	bag := Check(n, testOpts(dialect.C99), typedef.New())
	if !bag.HasErrors() {
		t.Fatalf("expected restrict on non-pointer to be rejected")
	}
}

func TestBitfieldOnNonIntegralRejected(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Float.Bit}
	w := 4
	n.BitfieldWidth = &w

	bag := Check(n, testOpts(dialect.CPP17), typedef.New())
	if !bag.HasErrors() {
		t.Fatalf("expected bitfield on float to be rejected")
	}
}

func TestAlignasNonPowerOfTwoRejected(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Int.Bit}
	n.Alignas = ast.Alignas{Set: true, Bytes: 6}

	bag := Check(n, testOpts(dialect.CPP17), typedef.New())
	if !bag.HasErrors() {
		t.Fatalf("expected alignas(6) to be rejected")
	}
}

func TestOperatorArityMismatchRejected(t *testing.T) {
	a := ast.NewArena()
	op := a.NewOperator(ast.Span{}, "/", a.NewBuiltin(ast.Span{}),
		[]*ast.Node{a.NewBuiltin(ast.Span{}), a.NewBuiltin(ast.Span{}), a.NewBuiltin(ast.Span{})},
		ctype.Type{}, false)

	bag := Check(op, testOpts(dialect.CPP17), typedef.New())
	if !bag.HasErrors() {
		t.Fatalf("expected operator/ with 3 params (non-member) to be rejected")
	}
}
