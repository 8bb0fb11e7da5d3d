package decl

import (
	"testing"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/options"
	"github.com/cdeclish/cdeclish/internal/sname"
)

func nameOf(s string) sname.SName {
	_, n := sname.Parse(s)
	return n
}

// P5: Pointer(Array(Builtin int)) must parenthesize; Array(Pointer(Builtin
// int)) must not.
func TestDeclaratorInversionParenthesization(t *testing.T) {
	a := ast.NewArena()
	leaf := a.NewBuiltin(ast.Span{})
	leaf.Type = ctype.Type{Base: ctype.Int.Bit}
	arr, err := a.NewArray(ast.Span{}, leaf, ast.ArraySize{Kind: ast.ArraySizeN, N: 10})
	if err != nil {
		t.Fatal(err)
	}
	ptr := a.NewPointer(ast.Span{}, arr)

	opts := options.Default()
	opts.Semicolon = false
	got := Render(ptr, "x", opts)
	want := "int (*x)[10]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeclaratorInversionNoParensWhenArrayOuter(t *testing.T) {
	a := ast.NewArena()
	leaf := a.NewBuiltin(ast.Span{})
	leaf.Type = ctype.Type{Base: ctype.Int.Bit}
	ptr := a.NewPointer(ast.Span{}, leaf)
	arr, err := a.NewArray(ast.Span{}, ptr, ast.ArraySize{Kind: ast.ArraySizeN, N: 10})
	if err != nil {
		t.Fatal(err)
	}

	opts := options.Default()
	opts.Semicolon = false
	got := Render(arr, "x", opts)
	want := "int *x[10]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 1: pointer to function (char, double) returning int.
func TestPointerToFunction(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	p1 := a.NewBuiltin(ast.Span{})
	p1.Type = ctype.Type{Base: ctype.Char.Bit}
	p2 := a.NewBuiltin(ast.Span{})
	p2.Type = ctype.Type{Base: ctype.Double.Bit}
	fn := a.NewFunction(ast.Span{}, ret, []*ast.Node{p1, p2}, ctype.Type{}, false)
	ptr := a.NewPointer(ast.Span{}, fn)

	opts := options.Default()
	opts.Semicolon = false
	got := Render(ptr, "f", opts)
	want := "int (*f)(char, double)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 2: array 10 of pointer to const int, west then east const.
func TestArrayOfPointerToConstIntWestAndEastConst(t *testing.T) {
	build := func() *ast.Node {
		a := ast.NewArena()
		inner := a.NewBuiltin(ast.Span{})
		inner.Type = ctype.Type{Base: ctype.Int.Bit, Attr: ctype.ConstKw.Bit}
		ptr := a.NewPointer(ast.Span{}, inner)
		arr, err := a.NewArray(ast.Span{}, ptr, ast.ArraySize{Kind: ast.ArraySizeN, N: 10})
		if err != nil {
			t.Fatal(err)
		}
		return arr
	}

	west := options.Default()
	west.EastConst = false
	if got, want := Render(build(), "x", west), "const int *x[10];"; got != want {
		t.Fatalf("west: got %q, want %q", got, want)
	}

	east := options.Default()
	east.EastConst = true
	if got, want := Render(build(), "x", east), "int const *x[10];"; got != want {
		t.Fatalf("east: got %q, want %q", got, want)
	}
}

// Scenario 3: pointer to member of class C of int, C++20.
func TestPointerToMemberOfClass(t *testing.T) {
	a := ast.NewArena()
	class := a.NewTag(ast.Span{}, ast.KindClass, nameOf("C"), nil)
	to := a.NewBuiltin(ast.Span{})
	to.Type = ctype.Type{Base: ctype.Int.Bit}
	ptm, err := a.NewPointerToMember(ast.Span{}, class, to)
	if err != nil {
		t.Fatal(err)
	}

	opts := options.Default()
	opts.Dialect = dialect.CPP20
	got := Render(ptm, "p", opts)
	want := "int C::*p;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 5: array of int with trigraphs enabled.
func TestTrigraphRewrite(t *testing.T) {
	a := ast.NewArena()
	elem := a.NewBuiltin(ast.Span{})
	elem.Type = ctype.Type{Base: ctype.Int.Bit}
	arr, err := a.NewArray(ast.Span{}, elem, ast.ArraySize{Kind: ast.ArraySizeNone})
	if err != nil {
		t.Fatal(err)
	}

	opts := options.Default()
	opts.Dialect = dialect.C17
	opts.Graph = options.GraphTrigraphs
	got := Render(arr, "a", opts)
	want := "int a??(??);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDigraphRewrite(t *testing.T) {
	a := ast.NewArena()
	elem := a.NewBuiltin(ast.Span{})
	elem.Type = ctype.Type{Base: ctype.Int.Bit}
	arr, err := a.NewArray(ast.Span{}, elem, ast.ArraySize{Kind: ast.ArraySizeN, N: 5})
	if err != nil {
		t.Fatal(err)
	}

	opts := options.Default()
	opts.Graph = options.GraphDigraphs
	opts.Semicolon = false
	got := Render(arr, "a", opts)
	want := "int a<:5:>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExplicitIntFaithfulRoundTripString(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Unsigned.Bit | ctype.Short.Bit}

	opts := options.Default()
	opts.Semicolon = false
	opts.ExplicitInt = options.ExplicitUnsignedShort
	got := Render(n, "x", opts)
	want := "unsigned short int x"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTagTypeOmitsKeywordInCppUnlessExplicitECSU(t *testing.T) {
	a := ast.NewArena()
	s := a.NewTag(ast.Span{}, ast.KindStruct, nameOf("S"), nil)

	opts := options.Default()
	opts.Dialect = dialect.CPP17
	opts.Semicolon = false
	if got, want := Render(s, "x", opts), "struct S x"; got != want {
		t.Fatalf("real cdecl's default explicit-ecsu=su always spells struct: got %q, want %q", got, want)
	}

	opts.ExplicitECSU = 0
	if got, want := Render(s, "x", opts), "S x"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	opts.ExplicitECSU = options.ExplicitStruct
	if got, want := Render(s, "x", opts), "struct S x"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	opts.Dialect = dialect.C17
	opts.ExplicitECSU = 0
	if got, want := Render(s, "x", opts), "struct S x"; got != want {
		t.Fatalf("C always needs the tag keyword: got %q, want %q", got, want)
	}
}

func TestOperatorDeclaration(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	rhs := a.NewBuiltin(ast.Span{})
	rhs.Type = ctype.Type{Base: ctype.Int.Bit}
	op := a.NewOperator(ast.Span{}, "+", ret, []*ast.Node{rhs}, ctype.Type{}, false)

	opts := options.Default()
	opts.Semicolon = false
	got := Render(op, "", opts)
	want := "int operator+(int)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAltTokensRewritesOperatorSpelling(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Bool.Bit}
	rhs := a.NewBuiltin(ast.Span{})
	rhs.Type = ctype.Type{Base: ctype.Bool.Bit}
	op := a.NewOperator(ast.Span{}, "&&", ret, []*ast.Node{rhs}, ctype.Type{}, false)

	opts := options.Default()
	opts.Semicolon = false
	opts.AltTokens = true
	got := Render(op, "", opts)
	want := "bool operator and(bool)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeclFlagsPrefixEmitsStorageClass(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Int.Bit}
	n.DeclFlags = ctype.Type{Storage: ctype.Static.Bit}

	opts := options.Default()
	opts.Semicolon = false
	got := Render(n, "x", opts)
	want := "static int x"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVariadicFunctionAppendsEllipsis(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	p1 := a.NewBuiltin(ast.Span{})
	p1.Type = ctype.Type{Base: ctype.Char.Bit}
	fn := a.NewFunction(ast.Span{}, ret, []*ast.Node{p1}, ctype.Type{}, true)

	opts := options.Default()
	opts.Semicolon = false
	got := Render(fn, "f", opts)
	want := "int f(char, ...)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
