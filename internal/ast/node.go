// Package ast implements the declarator AST model (spec §3, §4.3,
// component C3): a tagged-variant node over declarator kinds, built into
// an arena and visited deterministically. Kinds are distinguished by an
// enum tag on a single struct (Go's idiom for a sum type without a real
// union), and every operation dispatches by exhaustive switch on Kind
// rather than per-kind dynamic dispatch, per the spec's design note.
package ast

import (
	"github.com/cdeclish/cdeclish/internal/ctype"
	"github.com/cdeclish/cdeclish/internal/sname"
)

// Kind tags which declarator variant a Node holds.
type Kind int

const (
	KindBuiltin Kind = iota
	KindTypedef
	KindEnum
	KindClass
	KindStruct
	KindUnion
	KindPointer
	KindReference
	KindRvalueReference
	KindPointerToMember
	KindArray
	KindFunction
	KindOperator
	KindConstructor
	KindDestructor
	KindUserDefinedConversion
	KindUserDefinedLiteral
	KindApplBlock
	KindName
)

func (k Kind) String() string {
	switch k {
	case KindBuiltin:
		return "builtin"
	case KindTypedef:
		return "typedef"
	case KindEnum:
		return "enum"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindPointer:
		return "pointer"
	case KindReference:
		return "reference"
	case KindRvalueReference:
		return "rvalue reference"
	case KindPointerToMember:
		return "pointer-to-member"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindOperator:
		return "operator"
	case KindConstructor:
		return "constructor"
	case KindDestructor:
		return "destructor"
	case KindUserDefinedConversion:
		return "user-defined conversion"
	case KindUserDefinedLiteral:
		return "user-defined literal"
	case KindApplBlock:
		return "block"
	case KindName:
		return "name"
	default:
		return "?"
	}
}

// IsTag reports whether k is one of the enum/class/struct/union kinds.
func (k Kind) IsTag() bool {
	return k == KindEnum || k == KindClass || k == KindStruct || k == KindUnion
}

// ArraySizeKind distinguishes the four array-size forms of spec §3.
type ArraySizeKind int

const (
	ArraySizeN        ArraySizeKind = iota // fixed size N >= 0
	ArraySizeNone                          // `[]`
	ArraySizeVariable                      // a non-constant expression; value not modeled
	ArraySizeStar                          // C99 `[*]` in a function prototype
)

// ArraySize is Array's size field.
type ArraySize struct {
	Kind ArraySizeKind
	N    int
}

// Pos is a single source location (1-based line/column).
type Pos struct {
	Line, Column int
}

// Span is a node's source range: a start and end Pos.
type Span struct {
	Start, End Pos
}

// Alignas models the `alignas` clause: either a byte count or a
// referenced type (spec §3).
type Alignas struct {
	Set    bool
	Bytes  int
	AsType *Node
}

// ID is an opaque, arena-scoped node handle (spec's "cross-node links
// ... are opaque indices or non-owning references").
type ID int

// Node is the single tagged-variant struct backing every declarator
// kind. Only the fields relevant to Kind are meaningful; which ones
// those are is documented per field below.
type Node struct {
	ID    ID
	Kind  Kind
	Span  Span
	Depth int

	// Alignas and BitfieldWidth are valid on any node that can appear as
	// a struct/union member (spec §3).
	Alignas       Alignas
	BitfieldWidth *int

	// DeclFlags carries the storage-class/qualifier atoms the declarator
	// chain was parsed under (spec §3, "the declaration flags it was
	// observed under"): e.g. `static`, `typedef`, `mutable`. It is set
	// identically across every node of one declarator chain.
	DeclFlags ctype.Type

	Ident string    // the declared identifier, on the declarator's leaf
	SName sname.SName // Typedef/Enum/Class/Struct/Union/Name/Constructor/Destructor

	Type ctype.Type // Builtin's full type; also Function/Operator's cv/ref/noexcept qualifiers

	To      *Node // Pointer/Reference/RvalueReference/UserDefinedConversion's target
	OfClass *Node // PointerToMember's enclosing class (a Class/Struct/Union/Typedef node)
	Of      *Node // Array's element type

	ArraySize ArraySize

	Ret      *Node   // Function/Operator/UserDefinedLiteral/ApplBlock's return type
	Params   []*Node // Function/Operator/Constructor/UserDefinedLiteral/ApplBlock's parameters
	Variadic bool    // Function/Operator: trailing `...`

	OpID string // Operator's operator token, e.g. "+", "[]", "()"

	TypedefRef *Node // Typedef's resolved target AST (owned by the registry, not this arena)

	Parent   *Node // non-owning; nil for the declarator root
	Children []*Node
}

// childList returns n's children in deterministic declaration order
// (first-child, then siblings), used by Visit.
func (n *Node) childList() []*Node {
	switch n.Kind {
	case KindPointer, KindReference, KindRvalueReference, KindUserDefinedConversion:
		if n.To != nil {
			return []*Node{n.To}
		}
	case KindPointerToMember:
		var out []*Node
		if n.OfClass != nil {
			out = append(out, n.OfClass)
		}
		if n.To != nil {
			out = append(out, n.To)
		}
		return out
	case KindArray:
		if n.Of != nil {
			return []*Node{n.Of}
		}
	case KindFunction, KindOperator, KindUserDefinedLiteral, KindApplBlock:
		var out []*Node
		out = append(out, n.Params...)
		if n.Ret != nil {
			out = append(out, n.Ret)
		}
		return out
	case KindConstructor:
		return append([]*Node{}, n.Params...)
	}
	return nil
}
