package ctype

import (
	"strings"

	"github.com/cdeclish/cdeclish/internal/dialect"
)

// Type aggregates the three TPID partitions (spec §3, "A Type aggregates
// three TIDs").
type Type struct {
	Base    TID
	Storage TID
	Attr    TID
}

// Combine performs spec §4.1's "type_combine": a pointwise TidAdd across
// the three TPIDs.
func Combine(a, b Type) (Type, *Conflict) {
	base, c := TidAdd(TPBase, a.Base, b.Base)
	if c != nil {
		return Type{}, c
	}
	storage, c := TidAdd(TPStorage, a.Storage, b.Storage)
	if c != nil {
		return Type{}, c
	}
	attr, c := TidAdd(TPAttr, a.Attr, b.Attr)
	if c != nil {
		return Type{}, c
	}
	return Type{Base: base, Storage: storage, Attr: attr}, nil
}

// Has reports whether the atom's bit is set in the matching TPID slot.
func (t Type) Has(a *Atom) bool {
	switch a.TPID {
	case TPBase:
		return t.Base&a.Bit != 0
	case TPStorage:
		return t.Storage&a.Bit != 0
	case TPAttr:
		return t.Attr&a.Bit != 0
	}
	return false
}

// With returns a copy of t with a's bit set.
func (t Type) With(a *Atom) Type {
	switch a.TPID {
	case TPBase:
		t.Base |= a.Bit
	case TPStorage:
		t.Storage |= a.Bit
	case TPAttr:
		t.Attr |= a.Bit
	}
	return t
}

// IsEmpty reports whether t carries no atoms at all.
func (t Type) IsEmpty() bool { return t.Base == 0 && t.Storage == 0 && t.Attr == 0 }

// allAtoms returns every atom set in t, in the three TPID slots.
func (t Type) allAtoms() []*Atom {
	var out []*Atom
	out = append(out, atomsOf(t.Base, TPBase)...)
	out = append(out, atomsOf(t.Storage, TPStorage)...)
	out = append(out, atomsOf(t.Attr, TPAttr)...)
	return out
}

// LegalityVerdict is the result of IsLegal: either Legal, or the most
// restrictive reason the type is rejected in the given dialect.
type LegalityVerdict struct {
	Legal        bool
	IllegalAtom  *Atom           // the atom not legal in L, if any
	NeedsAtom    *Atom           // same atom, reported differently depending on caller
	MinDialect   dialect.Dialect // earliest dialect in which it becomes legal
}

// IsLegal implements the single-atom part of spec §4.1's "type_is_legal":
// it checks each atom of T against that atom's own dialect mask for L and
// returns the first failure found (deterministic atom order), since any
// single illegal atom already disqualifies the whole Type. Atom pairs are
// not checked here: pair conflicts are rejected by TidAdd/Combine when a
// Type is built, and the pair table carries no per-dialect entries.
func IsLegal(t Type, lang dialect.Dialect) LegalityVerdict {
	for _, a := range t.allAtoms() {
		if a.Dialects&lang == 0 {
			min, _ := dialect.Earliest(a.Dialects)
			return LegalityVerdict{Legal: false, IllegalAtom: a, NeedsAtom: a, MinDialect: min}
		}
	}
	return LegalityVerdict{Legal: true}
}

// explicitIntKey identifies one (signedness, width) combination for the
// explicit-int policy (spec §4.1 and §4.8).
type explicitIntKey struct {
	signed bool // true = "signed", false = "unsigned"; irrelevant if neither present
	width  AtomID
}

// ExplicitIntMask is a bitmask over {short,int,long,long long} ×
// {signed,unsigned}, consulted by the renderers to decide whether a
// redundant "int" must still be emitted (spec §4.8).
type ExplicitIntMask uint16

const (
	ExplicitUnsignedShort ExplicitIntMask = 1 << iota
	ExplicitUnsignedInt
	ExplicitUnsignedLong
	ExplicitUnsignedLongLong
	ExplicitSignedShort
	ExplicitSignedInt
	ExplicitSignedLong
	ExplicitSignedLongLong
)

// wantsExplicitInt reports whether, given the mask and the widths/
// signedness present in t, the renderer must emit "int" even when
// otherwise redundant.
func wantsExplicitInt(t Type, mask ExplicitIntMask) bool {
	signed := t.Has(Signed)
	unsigned := t.Has(Unsigned)
	if !signed && !unsigned {
		return false
	}
	var bit ExplicitIntMask
	switch {
	case t.Has(Short) && unsigned:
		bit = ExplicitUnsignedShort
	case t.Has(Short) && signed:
		bit = ExplicitSignedShort
	case t.Has(LongLong) && unsigned:
		bit = ExplicitUnsignedLongLong
	case t.Has(LongLong) && signed:
		bit = ExplicitSignedLongLong
	case t.Has(Long) && unsigned:
		bit = ExplicitUnsignedLong
	case t.Has(Long) && signed:
		bit = ExplicitSignedLong
	case unsigned:
		bit = ExplicitUnsignedInt
	case signed:
		bit = ExplicitSignedInt
	}
	return mask&bit != 0
}

// declStorageOrder, declBaseOrder and declCVOrder give the fixed token
// emission order for the declaration renderer: [storage] [attrs]
// [signedness] [width] [base] [cv] (spec §4.1). Decl emits cv-qualifiers
// last (the "east" placement); internal/render/decl places them itself
// via DeclBase/DeclCV according to its east-const option.
var declBaseOrder = []*Atom{Signed, Unsigned, Short, Long, LongLong, Void, Bool, Char, Char8T, Char16T, Char32T, WcharT, Int, Float, Double, AutoType}
var declStorageOrder = []*Atom{TypedefKw, FriendKw, VirtualKw, ExplicitKw, ConstexprKw, ConstevalKw, ConstinitKw, InlineKw, Extern, StorageAuto, Register, Static, ThreadLocal, MutableKw, NoReturnKw}
var declCVOrder = []*Atom{ConstKw, VolatileKw, RestrictKw, AtomicKw}

// DeclBase renders t's storage/base/explicit-int tokens only, excluding
// cv-qualifiers. internal/render/decl calls this directly (rather than
// Decl) so it can place cv-qualifiers before or after the base type per
// its east-const policy (spec §4.8) instead of inheriting Decl's fixed
// trailing placement.
func DeclBase(t Type, explicitInt ExplicitIntMask) string {
	var parts []string
	for _, a := range declStorageOrder {
		if t.Has(a) {
			parts = append(parts, a.Decl)
		}
	}
	for _, a := range declBaseOrder {
		if t.Has(a) {
			parts = append(parts, a.Decl)
		}
	}
	if wantsExplicitInt(t, explicitInt) && !t.Has(Int) {
		parts = append(parts, "int")
	}
	return strings.Join(parts, " ")
}

// DeclCV renders t's cv-qualifier tokens only (const/volatile/restrict/
// _Atomic), in the fixed order declCVOrder lists them.
func DeclCV(t Type) string {
	var parts []string
	for _, a := range declCVOrder {
		if t.Has(a) {
			parts = append(parts, a.Decl)
		}
	}
	return strings.Join(parts, " ")
}

// Decl renders t's storage/base/cv tokens in declaration order (cv
// trailing, the "east" placement). explicitInt controls whether a
// redundant "int" is emitted for {signed,unsigned} × {short,long,long
// long} combinations (spec §4.8). It does not include
// reference-qualifiers or noexcept, which are declarator-shape concerns
// rendered by internal/render/decl directly.
func Decl(t Type, explicitInt ExplicitIntMask) string {
	base := DeclBase(t, explicitInt)
	cv := DeclCV(t)
	switch {
	case cv == "":
		return base
	case base == "":
		return cv
	default:
		return base + " " + cv
	}
}

// English renders t in the reverse narrative order the English grammar
// uses (spec §4.1, §4.5): qualifiers and storage first, then signedness,
// width, and base, e.g. "const unsigned long long int".
func English(t Type, explicitInt ExplicitIntMask) string {
	var parts []string
	for _, a := range declCVOrder {
		if t.Has(a) {
			parts = append(parts, a.English)
		}
	}
	for _, a := range declStorageOrder {
		if t.Has(a) {
			parts = append(parts, a.English)
		}
	}
	for _, a := range declBaseOrder {
		if t.Has(a) {
			parts = append(parts, a.English)
		}
	}
	if wantsExplicitInt(t, explicitInt) && !t.Has(Int) {
		parts = append(parts, "int")
	}
	return strings.Join(parts, " ")
}
