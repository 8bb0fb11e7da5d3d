// Package sname implements the scoped name model (spec §4.2, component
// C2): an ordered sequence of (identifier, scope-kind) pairs such as
// `A::B::x`, with glob matching, comparison, and scope-kind resolution.
package sname

import "strings"

// ScopeKind is the kind a named scope resolves to.
type ScopeKind int

const (
	KindUnresolved ScopeKind = iota // "scope": not yet known to be a namespace or a class/struct/union
	KindNamespace
	KindInlineNamespace
	KindClass
	KindStruct
	KindUnion
)

func (k ScopeKind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindInlineNamespace:
		return "inline namespace"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	default:
		return "scope"
	}
}

// IsAggregate reports whether k is one of class/struct/union (spec's
// "may not contain a namespace" rule applies to these).
func (k ScopeKind) IsAggregate() bool {
	return k == KindClass || k == KindStruct || k == KindUnion
}

// IsNamespaceLike reports whether k is namespace or inline namespace.
func (k ScopeKind) IsNamespaceLike() bool {
	return k == KindNamespace || k == KindInlineNamespace
}

// Scope is one element of an SName: a name and the kind of scope it
// names.
type Scope struct {
	Name string
	Kind ScopeKind
}

// SName is an ordered list of scopes from outermost to innermost. The
// last element is the "local" name; everything before it is the
// "scope" (spec §3).
type SName struct {
	Scopes []Scope
}

// New builds an SName from a single local name with no enclosing scope.
func New(local string) SName {
	return SName{Scopes: []Scope{{Name: local}}}
}

// Empty reports whether the SName carries no scopes at all.
func (s SName) Empty() bool { return len(s.Scopes) == 0 }

// Count returns the number of scopes, including the local name.
func (s SName) Count() int { return len(s.Scopes) }

// LocalName returns the innermost (rightmost) identifier.
func (s SName) LocalName() string {
	if s.Empty() {
		return ""
	}
	return s.Scopes[len(s.Scopes)-1].Name
}

// ScopeSName returns the SName of everything except the local name
// (the "scope" prefix).
func (s SName) ScopeSName() SName {
	if len(s.Scopes) <= 1 {
		return SName{}
	}
	return SName{Scopes: append([]Scope{}, s.Scopes[:len(s.Scopes)-1]...)}
}

// GlobalName renders the full `A::B::x` spelling.
func (s SName) GlobalName() string {
	names := make([]string, len(s.Scopes))
	for i, sc := range s.Scopes {
		names[i] = sc.Name
	}
	return strings.Join(names, "::")
}

// AppendName appends a bare local name as a new innermost scope with
// unresolved kind.
func (s SName) AppendName(name string) SName {
	return SName{Scopes: append(append([]Scope{}, s.Scopes...), Scope{Name: name, Kind: KindUnresolved})}
}

// AppendSName appends another SName's scopes wholesale (used when a
// nested scope is itself already fully resolved).
func (s SName) AppendSName(other SName) SName {
	return SName{Scopes: append(append([]Scope{}, s.Scopes...), other.Scopes...)}
}

// PrependSName prepends other's scopes in front of s.
func (s SName) PrependSName(other SName) SName {
	return SName{Scopes: append(append([]Scope{}, other.Scopes...), s.Scopes...)}
}

// Dup returns a deep copy.
func (s SName) Dup() SName {
	return SName{Scopes: append([]Scope{}, s.Scopes...)}
}

// Cmp compares two SNames lexicographically by (name, kind), per scope,
// shorter-is-less when one is a prefix of the other.
func Cmp(a, b SName) int {
	for i := 0; i < len(a.Scopes) && i < len(b.Scopes); i++ {
		if c := strings.Compare(a.Scopes[i].Name, b.Scopes[i].Name); c != 0 {
			return c
		}
		if a.Scopes[i].Kind != b.Scopes[i].Kind {
			if a.Scopes[i].Kind < b.Scopes[i].Kind {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.Scopes) < len(b.Scopes):
		return -1
	case len(a.Scopes) > len(b.Scopes):
		return 1
	default:
		return 0
	}
}

// Equal is a convenience wrapper over Cmp.
func Equal(a, b SName) bool { return Cmp(a, b) == 0 }

// IsCtor reports whether the trailing two scopes share a spelling (the
// constructor/destructor idiom `S::S`), satisfying the invariant that
// otherwise forbids adjacent identical scopes.
func (s SName) IsCtor() bool {
	n := len(s.Scopes)
	if n < 2 {
		return false
	}
	return s.Scopes[n-1].Name == s.Scopes[n-2].Name
}

// FillInNamespaces upgrades every "scope"-kind (unresolved) entry above a
// namespace local to Namespace, per spec §4.2. It walks from the local
// name outward: once a namespace (or inline namespace) is seen, every
// enclosing unresolved scope also becomes a namespace, since namespaces
// may only nest inside namespaces.
func (s SName) FillInNamespaces() SName {
	out := s.Dup()
	sawNamespace := false
	for i := len(out.Scopes) - 1; i >= 0; i-- {
		k := out.Scopes[i].Kind
		if k.IsNamespaceLike() {
			sawNamespace = true
			continue
		}
		if sawNamespace && k == KindUnresolved {
			out.Scopes[i].Kind = KindNamespace
		}
	}
	return out
}

// TypeKindLookup resolves the scope-kind of a named prefix, used by
// SetAllTypes to consult the typedef registry (spec's C7 dependency).
type TypeKindLookup interface {
	ScopeKindOf(name string) (ScopeKind, bool)
}

// SetAllTypes resolves each unresolved prefix scope's kind by consulting
// lookup for known typedef names, defaulting unknown prefixes to
// defaultKind. The first scope literally named "std" is always forced to
// Namespace (spec §3's "the std outermost name is always namespace").
func (s SName) SetAllTypes(lookup TypeKindLookup, defaultKind ScopeKind) SName {
	out := s.Dup()
	for i := range out.Scopes {
		if i == len(out.Scopes)-1 {
			break // the local name is not a "prefix scope"
		}
		if out.Scopes[i].Name == "std" && i == 0 {
			out.Scopes[i].Kind = KindNamespace
			continue
		}
		if out.Scopes[i].Kind != KindUnresolved {
			continue
		}
		if lookup != nil {
			if kind, ok := lookup.ScopeKindOf(out.Scopes[i].Name); ok {
				out.Scopes[i].Kind = kind
				continue
			}
		}
		out.Scopes[i].Kind = defaultKind
	}
	return out
}

// Validate checks the two SName invariants from spec §3: namespaces may
// only nest inside namespaces/unresolved scopes, and a class/struct/union
// may not contain a namespace.
func (s SName) Validate() error {
	for i := 1; i < len(s.Scopes); i++ {
		outer := s.Scopes[i-1].Kind
		inner := s.Scopes[i].Kind
		if inner.IsNamespaceLike() && outer.IsAggregate() {
			return &ScopeError{Msg: "namespace `" + s.Scopes[i].Name + "` cannot nest inside " + outer.String() + " `" + s.Scopes[i-1].Name + "`"}
		}
	}
	return nil
}

// ScopeError reports an SName scope-nesting invariant violation.
type ScopeError struct{ Msg string }

func (e *ScopeError) Error() string { return e.Msg }
