package english

import (
	"strings"
	"testing"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/options"
	"github.com/cdeclish/cdeclish/internal/sname"
)

func nameOf(s string) sname.SName {
	_, n := sname.Parse(s)
	return n
}

func TestBuiltinOrdersQualifierBeforeKind(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Int.Bit, Attr: ctype.ConstKw.Bit}

	got := Render(n, options.Default())
	if got != "const int" {
		t.Fatalf("got %q, want %q", got, "const int")
	}
}

func TestPointerToConstInt(t *testing.T) {
	a := ast.NewArena()
	inner := a.NewBuiltin(ast.Span{})
	inner.Type = ctype.Type{Base: ctype.Int.Bit, Attr: ctype.ConstKw.Bit}
	ptr := a.NewPointer(ast.Span{}, inner)

	got := Render(ptr, options.Default())
	want := "pointer to const int"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArrayFixedSize(t *testing.T) {
	a := ast.NewArena()
	elem := a.NewBuiltin(ast.Span{})
	elem.Type = ctype.Type{Base: ctype.Char.Bit}
	arr, err := a.NewArray(ast.Span{}, elem, ast.ArraySize{Kind: ast.ArraySizeN, N: 10})
	if err != nil {
		t.Fatal(err)
	}

	got := Render(arr, options.Default())
	want := "array 10 of char"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArrayNoneSizeOmitsNumber(t *testing.T) {
	a := ast.NewArena()
	elem := a.NewBuiltin(ast.Span{})
	elem.Type = ctype.Type{Base: ctype.Int.Bit}
	arr, err := a.NewArray(ast.Span{}, elem, ast.ArraySize{Kind: ast.ArraySizeNone})
	if err != nil {
		t.Fatal(err)
	}

	got := Render(arr, options.Default())
	want := "array of int"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArrayStarIsVariableLength(t *testing.T) {
	a := ast.NewArena()
	elem := a.NewBuiltin(ast.Span{})
	elem.Type = ctype.Type{Base: ctype.Int.Bit}
	arr, err := a.NewArray(ast.Span{}, elem, ast.ArraySize{Kind: ast.ArraySizeStar})
	if err != nil {
		t.Fatal(err)
	}

	got := Render(arr, options.Default())
	if got != "array variable-length of int" {
		t.Fatalf("got %q", got)
	}
}

func TestFunctionReturningBuiltin(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	fn := a.NewFunction(ast.Span{}, ret, nil, ctype.Type{}, false)

	got := Render(fn, options.Default())
	if got != "function returning int" {
		t.Fatalf("got %q, want %q", got, "function returning int")
	}
}

func TestFunctionWithParams(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Void.Bit}
	p1 := a.NewBuiltin(ast.Span{})
	p1.Type = ctype.Type{Base: ctype.Int.Bit}
	p2 := a.NewBuiltin(ast.Span{})
	p2.Type = ctype.Type{Base: ctype.Char.Bit}
	fn := a.NewFunction(ast.Span{}, ret, []*ast.Node{p1, p2}, ctype.Type{}, false)

	got := Render(fn, options.Default())
	want := "function (int, char) returning void"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionVariadicAppendsEllipsis(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	p1 := a.NewBuiltin(ast.Span{})
	p1.Type = ctype.Type{Base: ctype.Char.Bit}
	fn := a.NewFunction(ast.Span{}, ret, []*ast.Node{p1}, ctype.Type{}, true)

	got := Render(fn, options.Default())
	if !strings.HasSuffix(got, "char, ...) returning int") {
		t.Fatalf("got %q", got)
	}
}

func TestConstructorOmitsReturning(t *testing.T) {
	a := ast.NewArena()
	p1 := a.NewBuiltin(ast.Span{})
	p1.Type = ctype.Type{Base: ctype.Int.Bit}
	ctor := a.NewConstructor(ast.Span{}, nameOf("widget"), []*ast.Node{p1})

	got := Render(ctor, options.Default())
	if got != "constructor (int)" {
		t.Fatalf("got %q, want %q", got, "constructor (int)")
	}
	if strings.Contains(got, "returning") {
		t.Fatalf("constructor must never say returning: %q", got)
	}
}

func TestDestructorIsBare(t *testing.T) {
	a := ast.NewArena()
	dtor := a.NewDestructor(ast.Span{}, nameOf("widget"))

	got := Render(dtor, options.Default())
	if got != "destructor" {
		t.Fatalf("got %q, want %q", got, "destructor")
	}
}

func TestTagWordsPerKind(t *testing.T) {
	cases := []struct {
		kind ast.Kind
		want string
	}{
		{ast.KindEnum, "enumeration widget"},
		{ast.KindClass, "class widget"},
		{ast.KindStruct, "structure widget"},
		{ast.KindUnion, "union widget"},
	}
	for _, c := range cases {
		a := ast.NewArena()
		n := a.NewTag(ast.Span{}, c.kind, nameOf("widget"), nil)
		got := Render(n, options.Default())
		if got != c.want {
			t.Fatalf("kind %v: got %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestOperatorIncludesOpID(t *testing.T) {
	a := ast.NewArena()
	ret := a.NewBuiltin(ast.Span{})
	ret.Type = ctype.Type{Base: ctype.Int.Bit}
	rhs := a.NewBuiltin(ast.Span{})
	rhs.Type = ctype.Type{Base: ctype.Int.Bit}
	op := a.NewOperator(ast.Span{}, "+", ret, []*ast.Node{rhs}, ctype.Type{}, false)

	got := Render(op, options.Default())
	want := "operator + (int) returning int"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExplicitIntMaskTranslatesConfigLayerToRenderLayer(t *testing.T) {
	a := ast.NewArena()
	n := a.NewBuiltin(ast.Span{})
	n.Type = ctype.Type{Base: ctype.Unsigned.Bit | ctype.Long.Bit}

	opts := options.Default()
	opts.ExplicitInt = options.ExplicitUnsignedLong

	got := Render(n, opts)
	if got != "unsigned long int" {
		t.Fatalf("got %q, want %q", got, "unsigned long int")
	}

	opts.ExplicitInt = 0
	got = Render(n, opts)
	if got != "unsigned long" {
		t.Fatalf("got %q, want %q", got, "unsigned long")
	}
}

func TestReferenceAndRvalueReference(t *testing.T) {
	a := ast.NewArena()
	inner := a.NewBuiltin(ast.Span{})
	inner.Type = ctype.Type{Base: ctype.Int.Bit}

	ref, err := a.NewReference(ast.Span{}, inner)
	if err != nil {
		t.Fatal(err)
	}
	if got := Render(ref, options.Default()); got != "reference to int" {
		t.Fatalf("got %q", got)
	}

	rref, err := a.NewRvalueReference(ast.Span{}, inner)
	if err != nil {
		t.Fatal(err)
	}
	if got := Render(rref, options.Default()); got != "rvalue reference to int" {
		t.Fatalf("got %q", got)
	}
}

func TestPointerToMemberNamesEnclosingClass(t *testing.T) {
	a := ast.NewArena()
	class := a.NewTag(ast.Span{}, ast.KindClass, nameOf("widget"), nil)
	to := a.NewBuiltin(ast.Span{})
	to.Type = ctype.Type{Base: ctype.Int.Bit}

	ptm, err := a.NewPointerToMember(ast.Span{}, class, to)
	if err != nil {
		t.Fatal(err)
	}

	got := Render(ptm, options.Default())
	want := "pointer to member of widget to int"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
