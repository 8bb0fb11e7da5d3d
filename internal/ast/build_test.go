package ast

import "testing"

func TestArrayOfReferenceRejected(t *testing.T) {
	a := NewArena()
	ref, err := a.NewReference(Span{}, a.NewBuiltin(Span{}))
	if err != nil {
		t.Fatalf("unexpected error building reference: %v", err)
	}
	if _, err := a.NewArray(Span{}, ref, ArraySize{Kind: ArraySizeN, N: 4}); err == nil {
		t.Fatalf("expected array-of-reference to be rejected")
	}
}

func TestReferenceToReferenceRejected(t *testing.T) {
	a := NewArena()
	ref, _ := a.NewReference(Span{}, a.NewBuiltin(Span{}))
	if _, err := a.NewReference(Span{}, ref); err == nil {
		t.Fatalf("expected reference-to-reference to be rejected")
	}
}

func TestChainInversionShape(t *testing.T) {
	// `(*x)[10]` — a pointer to an array of 10 int. The parser meets the
	// `*` first, then the `[10]` that follows the parens, so the chain
	// is pushed Pointer-then-Array even though the resulting AST nests
	// the array inside the pointer: Pointer(Array(Builtin)).
	a := NewArena()
	chain := NewChain()

	ptr := a.NewPointer(Span{}, nil)
	chain.Push(ptr, func(inner *Node) { ptr.To = inner })

	arr := a.New(KindArray, Span{})
	arr.ArraySize = ArraySize{Kind: ArraySizeN, N: 10}
	chain.Push(arr, func(inner *Node) { arr.Of = inner })

	root := chain.Close(a, a.NewBuiltin(Span{}))

	var order []Kind
	Visit(root, Down, func(n *Node) bool {
		order = append(order, n.Kind)
		return true
	})
	want := []Kind{KindPointer, KindArray, KindBuiltin}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
