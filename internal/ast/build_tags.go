package ast

import (
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/sname"
)

// NewTag creates an Enum/Class/Struct/Union node, per which kind is
// passed.
func (a *Arena) NewTag(span Span, kind Kind, name sname.SName, base *Node) *Node {
	n := a.New(kind, span)
	n.SName = name
	n.To = base // enum's optional fixed underlying type
	return n
}

// NewTypedef creates Typedef(ref): a reference to a registry entry's AST,
// not owned by this arena (spec §3, "Typedef record").
func (a *Arena) NewTypedef(span Span, name sname.SName, ref *Node) *Node {
	n := a.New(KindTypedef, span)
	n.SName = name
	n.TypedefRef = ref
	return n
}

// NewName creates a bare Name(sname) leaf, used for K&R identifier-only
// parameters and other untyped references.
func (a *Arena) NewName(span Span, name sname.SName) *Node {
	n := a.New(KindName, span)
	n.SName = name
	return n
}

// NewConstructor creates Constructor(sname, params).
func (a *Arena) NewConstructor(span Span, name sname.SName, params []*Node) *Node {
	n := a.New(KindConstructor, span)
	n.SName = name
	n.Params = params
	return n
}

// NewDestructor creates Destructor(sname).
func (a *Arena) NewDestructor(span Span, name sname.SName) *Node {
	n := a.New(KindDestructor, span)
	n.SName = name
	return n
}

// NewUserDefinedConversion creates UserDefinedConversion(to, qualifiers).
func (a *Arena) NewUserDefinedConversion(span Span, to *Node, qualifiers ctype.Type) *Node {
	n := a.New(KindUserDefinedConversion, span)
	n.To = to
	n.Type = qualifiers
	return n
}

// NewUserDefinedLiteral creates UserDefinedLiteral(ret, params).
func (a *Arena) NewUserDefinedLiteral(span Span, ret *Node, params []*Node) *Node {
	n := a.New(KindUserDefinedLiteral, span)
	n.Ret = ret
	n.Params = params
	return n
}

// NewApplBlock creates ApplBlock(ret, params) (an Apple "block" type).
func (a *Arena) NewApplBlock(span Span, ret *Node, params []*Node) *Node {
	n := a.New(KindApplBlock, span)
	n.Ret = ret
	n.Params = params
	return n
}
