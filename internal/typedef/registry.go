// Package typedef implements the typedef registry of spec §4.7 (C7): an
// ordered map of scoped names to their aliased AST, seeded with a static
// predefined-alias table the way the teacher's symbols.GetPrelude()
// seeds a singleton prelude SymbolTable via InitBuiltins
// (internal/symbols/symbol_table_init.go) — the same "built-ins loaded
// once, user entries layered on top" shape, adapted here to per-engine
// rather than process-global state since cdeclish threads Options (and
// therefore the active dialect) explicitly rather than through a
// singleton.
package typedef

import (
	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/sname"
)

// Entry is one registered typedef record.
type Entry struct {
	Name             sname.SName
	Ref              *ast.Node
	DialectsDefinedIn dialect.Dialect // invisible outside this mask (spec §4.7)
	Predefined       bool
}

// AddResult reports the outcome of Add.
type AddResult int

const (
	AddOK AddResult = iota
	AddConflict
)

// Registry is the ordered-map typedef store of C7. Insertion order is
// preserved for iter's output, matching spec §4.7's "yields matches in
// insertion order."
type Registry struct {
	order   []sname.SName
	entries map[string]*Entry
}

// New builds a Registry seeded with the predefined alias table.
func New() *Registry {
	r := &Registry{entries: make(map[string]*Entry)}
	r.loadPredefined()
	return r
}

// NewEmpty builds a Registry with no predefined entries, for a
// collaborator that asks to start without the built-in alias table
// (spec §6's `--no-typedefs` flag).
func NewEmpty() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

func (r *Registry) key(n sname.SName) string { return n.GlobalName() }

// Add inserts td, or reports AddConflict if an entry with the same sname
// already exists with a structurally different AST (spec §4.7). Adding
// an entry structurally equal to the existing one is not a conflict —
// it's a harmless redefinition.
func (r *Registry) Add(name sname.SName, ref *ast.Node, definedIn dialect.Dialect) (AddResult, *Entry) {
	k := r.key(name)
	if existing, ok := r.entries[k]; ok {
		if !ast.Equal(existing.Ref, ref) {
			return AddConflict, existing
		}
		existing.Ref = ref
		return AddOK, existing
	}
	e := &Entry{Name: name, Ref: ref, DialectsDefinedIn: definedIn}
	r.entries[k] = e
	r.order = append(r.order, name)
	return AddOK, e
}

// Find looks up name, gated by active: a predefined entry whose
// DialectsDefinedIn does not contain active is invisible (spec §4.7,
// "char16_t is invisible in C89").
func (r *Registry) Find(name sname.SName, active dialect.Dialect) (*Entry, bool) {
	e, ok := r.entries[r.key(name)]
	if !ok {
		return nil, false
	}
	if e.DialectsDefinedIn != 0 && e.DialectsDefinedIn&active == 0 {
		return nil, false
	}
	return e, true
}

// Remove deletes name's entry, if any. It does not remove it from the
// insertion-order slice; Iter skips entries no longer present.
func (r *Registry) Remove(name sname.SName) {
	delete(r.entries, r.key(name))
}

// Iter yields entries matching glob, visible under active, in insertion
// order (spec §4.7).
func (r *Registry) Iter(glob string, active dialect.Dialect) []*Entry {
	var out []*Entry
	for _, n := range r.order {
		e, ok := r.entries[r.key(n)]
		if !ok {
			continue
		}
		if e.DialectsDefinedIn != 0 && e.DialectsDefinedIn&active == 0 {
			continue
		}
		if sname.Match(n, glob) {
			out = append(out, e)
		}
	}
	return out
}
