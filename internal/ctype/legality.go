package ctype

// The dialect table is a triangular matrix over AtomID pairs (spec §4.1:
// "stored as a triangular matrix indexed by enumerated type atoms").
// Only conflicting pairs have an entry, and an entry holds no dialect
// mask, so a listed pair conflicts in every dialect alike; an absent pair
// defaults to "always legal together" (e.g. const + int).
//
// entry.kind == ConflictNone means the pair is fine in every dialect both
// atoms are individually legal in (no additional combination rule).
type pairEntry struct {
	kind ConflictKind
}

var pairTable = map[[2]AtomID]pairEntry{}

func pair(a, b *Atom, kind ConflictKind) {
	k := key(a.ID, b.ID)
	pairTable[k] = pairEntry{kind: kind}
}

func key(a, b AtomID) [2]AtomID {
	if a > b {
		a, b = b, a
	}
	return [2]AtomID{a, b}
}

func lookupConflict(a, b AtomID) *Conflict {
	if a == b {
		return nil
	}
	e, ok := pairTable[key(a, b)]
	if !ok || e.kind == ConflictNone {
		return nil
	}
	return &Conflict{Kind: e.kind, A: a, B: b}
}

func init() {
	// Signedness is unique.
	pair(Signed, Unsigned, MultipleSignedness)

	// Width modifiers: short/long/long-long are mutually exclusive,
	// except long+long-long which simply isn't representable as two
	// atoms (the lexer/parser folds "long long" into the LongLong atom
	// directly), so no entry is needed for that case.
	pair(Short, Long, MultipleWidth)
	pair(Short, LongLong, MultipleWidth)

	// void cannot be combined with any other base atom: it stands alone
	// except when cv-qualified (qualifiers live in a different TPID, so
	// no entry is needed there).
	for _, other := range []*Atom{Bool, Char, Char8T, Char16T, Char32T, WcharT, Short, Int, Long, LongLong, Signed, Unsigned, Float, Double, AutoType} {
		pair(Void, other, BaseTypeConflict)
	}

	// bool cannot take width/signedness/char modifiers.
	for _, other := range []*Atom{Char, Char8T, Char16T, Char32T, WcharT, Short, Long, LongLong, Signed, Unsigned, Float, Double} {
		pair(Bool, other, BaseTypeConflict)
	}

	// char (and the fixed-width char kinds) cannot take width modifiers,
	// but CAN take signed/unsigned (signed char, unsigned char).
	for _, c := range []*Atom{Char, Char8T, Char16T, Char32T, WcharT} {
		for _, other := range []*Atom{Short, Long, LongLong, Float, Double} {
			pair(c, other, BaseTypeConflict)
		}
	}
	// The fixed-width char kinds additionally reject signed/unsigned and
	// mixing with plain char; only plain "char" takes signed/unsigned.
	for _, c := range []*Atom{Char8T, Char16T, Char32T, WcharT} {
		pair(c, Signed, BaseTypeConflict)
		pair(c, Unsigned, BaseTypeConflict)
		pair(c, Char, BaseTypeConflict)
	}
	// The fixed-width char kinds are mutually exclusive with each other.
	fixed := []*Atom{Char8T, Char16T, Char32T, WcharT}
	for i := range fixed {
		for j := i + 1; j < len(fixed); j++ {
			pair(fixed[i], fixed[j], BaseTypeConflict)
		}
	}

	// float cannot take width/signedness; float+double is nonsensical.
	for _, other := range []*Atom{Short, Long, LongLong, Signed, Unsigned, Double} {
		pair(Float, other, BaseTypeConflict)
	}
	// NOTE: Long + Double is deliberately NOT a conflict: "long double" is
	// a distinct, legal base type (spec's triangular table models exactly
	// this kind of "always legal" pair by simply having no entry).
	pair(LongLong, Double, BaseTypeConflict) // "long long double" does not exist

	// signed/unsigned cannot combine with float/double/auto.
	for _, s := range []*Atom{Signed, Unsigned} {
		for _, other := range []*Atom{Float, Double, AutoType} {
			pair(s, other, BaseTypeConflict)
		}
	}

	// auto (deduction placeholder) is alone, like void.
	for _, other := range []*Atom{Bool, Char, Char8T, Char16T, Char32T, WcharT, Short, Int, Long, LongLong, Float, Double} {
		pair(AutoType, other, BaseTypeConflict)
	}

	// Storage-class unicity (spec §4.4.3): at most one of
	// {auto, extern, register, static, thread_local, mutable}.
	storageGroup := []*Atom{StorageAuto, Extern, Register, Static, ThreadLocal, MutableKw}
	for i := range storageGroup {
		for j := i + 1; j < len(storageGroup); j++ {
			pair(storageGroup[i], storageGroup[j], MultipleStorage)
		}
	}

	// Reference-qualifiers are unique (an lvalue- and rvalue-ref
	// qualified member function cannot be both at once).
	pair(RefLvalue, RefRvalue, BaseTypeConflict)
}
