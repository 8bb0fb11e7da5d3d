package ast

import (
	"fmt"

	"github.com/cdeclish/cdeclish/internal/ctype"
)

// InvariantError reports a dialect-independent structural violation of
// spec §4.3's AST invariants, caught at construction time rather than
// deferred to the checker (C4).
type InvariantError struct{ Msg string }

func (e *InvariantError) Error() string { return e.Msg }

// NewBuiltin creates a Builtin(tids) leaf.
func (a *Arena) NewBuiltin(span Span) *Node {
	return a.New(KindBuiltin, span)
}

// NewPointer creates Pointer(to).
func (a *Arena) NewPointer(span Span, to *Node) *Node {
	n := a.New(KindPointer, span)
	n.To = to
	return n
}

// NewReference creates Reference(to), rejecting the dialect-independent
// half of spec §4.3's invariant: a reference cannot target another
// reference or rvalue-reference.
func (a *Arena) NewReference(span Span, to *Node) (*Node, error) {
	if to != nil && (to.Kind == KindReference || to.Kind == KindRvalueReference) {
		return nil, &InvariantError{Msg: "reference to reference is not allowed"}
	}
	n := a.New(KindReference, span)
	n.To = to
	return n, nil
}

// NewRvalueReference creates RvalueReference(to), with the same
// reference-to-reference restriction as NewReference.
func (a *Arena) NewRvalueReference(span Span, to *Node) (*Node, error) {
	if to != nil && (to.Kind == KindReference || to.Kind == KindRvalueReference) {
		return nil, &InvariantError{Msg: "rvalue reference to reference is not allowed"}
	}
	n := a.New(KindRvalueReference, span)
	n.To = to
	return n, nil
}

// NewPointerToMember creates PointerToMember(of_class, to), rejecting
// the dialect-independent half of spec §4.3's invariant: of_class must
// be a Class/Struct/Union/Typedef node (full typedef resolution to such
// a kind is left to the checker, which has registry access).
func (a *Arena) NewPointerToMember(span Span, ofClass, to *Node) (*Node, error) {
	if ofClass != nil && !(ofClass.Kind.IsTag() && ofClass.Kind != KindEnum || ofClass.Kind == KindTypedef) {
		return nil, &InvariantError{Msg: "pointer-to-member requires a class/struct/union (or typedef to one)"}
	}
	n := a.New(KindPointerToMember, span)
	n.OfClass = ofClass
	n.To = to
	return n, nil
}

// NewArray creates Array(of, size), rejecting spec §4.3's invariant that
// Array.Of must not be Function, Reference, or RvalueReference. (A
// function *returning* an array is a different shape, checked by C4.)
func (a *Arena) NewArray(span Span, of *Node, size ArraySize) (*Node, error) {
	if of != nil {
		switch of.Kind {
		case KindFunction, KindReference, KindRvalueReference:
			return nil, &InvariantError{Msg: fmt.Sprintf("array of %s is not allowed", of.Kind)}
		}
	}
	n := a.New(KindArray, span)
	n.Of = of
	n.ArraySize = size
	return n, nil
}

// NewFunction creates Function(ret, params, qualifiers).
func (a *Arena) NewFunction(span Span, ret *Node, params []*Node, qualifiers ctype.Type, variadic bool) *Node {
	n := a.New(KindFunction, span)
	n.Ret = ret
	n.Params = params
	n.Type = qualifiers
	n.Variadic = variadic
	return n
}

// NewOperator creates Operator(op_id, ret, params, qualifiers).
func (a *Arena) NewOperator(span Span, opID string, ret *Node, params []*Node, qualifiers ctype.Type, variadic bool) *Node {
	n := a.New(KindOperator, span)
	n.OpID = opID
	n.Ret = ret
	n.Params = params
	n.Type = qualifiers
	n.Variadic = variadic
	return n
}
