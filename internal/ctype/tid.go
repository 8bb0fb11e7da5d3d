package ctype

// ConflictKind enumerates the ways two atoms can fail to combine, per
// spec §4.1 "Failure".
type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	MultipleSignedness
	MultipleWidth
	MultipleStorage
	BaseTypeConflict
	InvalidInLanguage
)

func (k ConflictKind) String() string {
	switch k {
	case MultipleSignedness:
		return "multiple signedness specifiers"
	case MultipleWidth:
		return "multiple width modifiers"
	case MultipleStorage:
		return "multiple storage classes"
	case BaseTypeConflict:
		return "conflicting base types"
	case InvalidInLanguage:
		return "invalid in the current language"
	default:
		return "no conflict"
	}
}

// Conflict is the error value returned by tid_add/type_combine.
type Conflict struct {
	Kind         ConflictKind
	A, B         AtomID
	RequiredMask uint32 // only meaningful for InvalidInLanguage; see dialect.Dialect
}

func (c Conflict) Error() string { return c.Kind.String() }

// atomsOf yields every set bit of t as the Atom it names, restricted to
// atoms of the given TPID (a TID's bits are only ever meaningful within
// one TPID, per the §3 invariant).
func atomsOf(t TID, tpid TPID) []*Atom {
	var out []*Atom
	for i := range atomsByID {
		a := &atomsByID[i]
		if a.TPID != tpid {
			continue
		}
		if t&a.Bit != 0 {
			out = append(out, a)
		}
	}
	return out
}

// TidAdd combines two TIDs of the same TPID, failing if the union
// contains an illegal same-TPID pair even before any dialect is
// considered (spec §4.1, "tid_add").
func TidAdd(tpid TPID, a, b TID) (TID, *Conflict) {
	union := a | b
	atoms := atomsOf(union, tpid)
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			if c := lookupConflict(atoms[i].ID, atoms[j].ID); c != nil {
				return 0, c
			}
		}
	}
	return union, nil
}
