// Package ctype implements the type bitset and dialect legality table
// (spec §4.1, component C1): TID/TPID bitset algebra, Type aggregation,
// dialect legality checks, and the ordered token emission shared by both
// renderers.
package ctype

import "github.com/cdeclish/cdeclish/internal/dialect"

// TPID names which of the three type-part-id partitions a TID's bits
// belong to (spec §3, "Type identifier (TID)").
type TPID int

const (
	TPBase TPID = iota
	TPStorage
	TPAttr
)

func (p TPID) String() string {
	switch p {
	case TPBase:
		return "base"
	case TPStorage:
		return "storage"
	case TPAttr:
		return "attribute"
	default:
		return "?"
	}
}

// TID is a bitset over atoms belonging to a single TPID.
type TID uint64

// Atom is one named bit: a scalar kind, signedness, width modifier,
// storage class, or qualifier/attribute. AtomID is a dense index shared
// across all three TPIDs, used to key the triangular legality table so
// that cross-TPID pairs (e.g. "typedef" storage vs "auto" base) can be
// checked the same way as same-TPID pairs (e.g. "short" vs "long").
type AtomID int

type Atom struct {
	ID       AtomID
	TPID     TPID
	Bit      TID
	Decl     string // token emitted by the declaration renderer
	English  string // token emitted by the English renderer
	Dialects dialect.Dialect
}

var (
	atomsByID []Atom
	nextID    AtomID
	baseBit   = TID(1)
	storBit   = TID(1)
	attrBit   = TID(1)
)

func newAtom(tpid TPID, decl, english string, mask dialect.Dialect) *Atom {
	var bit TID
	switch tpid {
	case TPBase:
		bit = baseBit
		baseBit <<= 1
	case TPStorage:
		bit = storBit
		storBit <<= 1
	case TPAttr:
		bit = attrBit
		attrBit <<= 1
	}
	a := Atom{ID: nextID, TPID: tpid, Bit: bit, Decl: decl, English: english, Dialects: mask}
	nextID++
	atomsByID = append(atomsByID, a)
	return &atomsByID[len(atomsByID)-1]
}

// Base atoms (scalar kinds, signedness, width modifiers, the C++11 auto
// deduction placeholder).
var (
	Void     = newAtom(TPBase, "void", "void", dialect.Any)
	Bool     = newAtom(TPBase, "bool", "bool", dialect.C99|dialect.C11|dialect.C17|dialect.C23|dialect.AllCPP)
	Char     = newAtom(TPBase, "char", "char", dialect.Any)
	Char8T   = newAtom(TPBase, "char8_t", "char8_t", dialect.C23|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	Char16T  = newAtom(TPBase, "char16_t", "char16_t", dialect.C11|dialect.C17|dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	Char32T  = newAtom(TPBase, "char32_t", "char32_t", dialect.C11|dialect.C17|dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	WcharT   = newAtom(TPBase, "wchar_t", "wide char", dialect.Any&^dialect.KNRC)
	Short    = newAtom(TPBase, "short", "short", dialect.Any)
	Int      = newAtom(TPBase, "int", "int", dialect.Any)
	Long     = newAtom(TPBase, "long", "long", dialect.Any)
	LongLong = newAtom(TPBase, "long long", "long long", dialect.C99|dialect.C11|dialect.C17|dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	Signed   = newAtom(TPBase, "signed", "signed", dialect.Any)
	Unsigned = newAtom(TPBase, "unsigned", "unsigned", dialect.Any)
	Float    = newAtom(TPBase, "float", "floating", dialect.Any)
	Double   = newAtom(TPBase, "double", "double", dialect.Any)
	AutoType = newAtom(TPBase, "auto", "non-empty array of inferred type", dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
)

// Storage atoms (linkage, lifetime, and the function-qualifier-like
// keywords the spec groups with storage: virtual, friend, constexpr).
var (
	StorageAuto = newAtom(TPStorage, "auto", "automatic", dialect.Any&^(dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26))
	Extern      = newAtom(TPStorage, "extern", "external", dialect.Any)
	Register    = newAtom(TPStorage, "register", "register", dialect.Any)
	Static      = newAtom(TPStorage, "static", "static", dialect.Any)
	ThreadLocal = newAtom(TPStorage, "thread_local", "thread-local", dialect.C11|dialect.C17|dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	MutableKw   = newAtom(TPStorage, "mutable", "mutable", dialect.AllCPP)
	TypedefKw   = newAtom(TPStorage, "typedef", "typedef", dialect.Any)
	VirtualKw   = newAtom(TPStorage, "virtual", "virtual", dialect.AllCPP)
	FriendKw    = newAtom(TPStorage, "friend", "friend", dialect.AllCPP)
	ConstexprKw = newAtom(TPStorage, "constexpr", "constexpr", dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	ConstevalKw = newAtom(TPStorage, "consteval", "consteval", dialect.CPP20|dialect.CPP23|dialect.CPP26)
	ConstinitKw = newAtom(TPStorage, "constinit", "constinit", dialect.CPP20|dialect.CPP23|dialect.CPP26)
	ExplicitKw  = newAtom(TPStorage, "explicit", "explicit", dialect.AllCPP)
	InlineKw    = newAtom(TPStorage, "inline", "inline", dialect.Any&^(dialect.KNRC|dialect.C89))
	NoReturnKw  = newAtom(TPStorage, "_Noreturn", "non-returning", dialect.C11|dialect.C17|dialect.C23|dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
)

// Attribute atoms (cv-qualifiers, reference qualifiers, _Atomic, and the
// handful of standard attributes the checker cares about).
var (
	ConstKw     = newAtom(TPAttr, "const", "const", dialect.Any)
	VolatileKw  = newAtom(TPAttr, "volatile", "volatile", dialect.Any)
	RestrictKw  = newAtom(TPAttr, "restrict", "restricted", dialect.C99|dialect.C11|dialect.C17|dialect.C23)
	AtomicKw    = newAtom(TPAttr, "_Atomic", "atomic", dialect.C11|dialect.C17|dialect.C23)
	RefLvalue   = newAtom(TPAttr, "&", "reference", dialect.AllCPP)
	RefRvalue   = newAtom(TPAttr, "&&", "rvalue reference", dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	NoexceptKw  = newAtom(TPAttr, "noexcept", "non-throwing", dialect.CPP11|dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	NoDiscardKw = newAtom(TPAttr, "[[nodiscard]]", "non-discardable", dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	DeprecatedKw = newAtom(TPAttr, "[[deprecated]]", "deprecated", dialect.CPP14|dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
	MaybeUnusedKw = newAtom(TPAttr, "[[maybe_unused]]", "possibly-unused", dialect.CPP17|dialect.CPP20|dialect.CPP23|dialect.CPP26)
)

// Atoms returns every atom ever registered, for table construction and
// for the dispatcher's keyword-suggestion list (§7).
func Atoms() []Atom { return atomsByID }
