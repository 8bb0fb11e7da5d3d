package ast

import "github.com/google/uuid"

// Arena owns every Node of one translation unit (spec §3, "Ownership");
// arenas are strictly LIFO per spec §5 and are released as a whole on
// command completion. The UUID gives each arena a stable handle for
// diagnostics/debug output to correlate against, mirroring the role
// google/uuid plays in the teacher's test fixtures (unique, collision-free
// identifiers for otherwise-anonymous instances).
type Arena struct {
	id     uuid.UUID
	nodes  []*Node
	nextID ID
}

// NewArena allocates a fresh, empty arena.
func NewArena() *Arena {
	return &Arena{id: uuid.New()}
}

// ID returns the arena's stable identity.
func (a *Arena) ID() uuid.UUID { return a.id }

// New allocates a Node of the given kind at loc, owned by a (spec
// §4.3's "ast_new(kind, loc) → &ast").
func (a *Arena) New(kind Kind, span Span) *Node {
	n := &Node{ID: a.nextID, Kind: kind, Span: span}
	a.nextID++
	a.nodes = append(a.nodes, n)
	return n
}

// SetChild attaches child under parent, wiring both the domain-specific
// slot (To/Of/Ret/Params/OfClass, already set by the caller before
// calling SetChild) and the generic Parent back-link and Children list
// used for visitation (spec §4.3's "ast_set_child").
func (a *Arena) SetChild(parent, child *Node) {
	child.Parent = parent
	child.Depth = parent.Depth + 1
	parent.Children = append(parent.Children, child)
}

// Len reports how many nodes the arena has allocated.
func (a *Arena) Len() int { return len(a.nodes) }

// Release drops every node the arena owns (spec §5: "On translation-unit
// teardown the arena drops every node"). After Release the arena must not
// be reused.
func (a *Arena) Release() {
	a.nodes = nil
}

// ArenaStack implements spec §5's "strictly LIFO" nested-arena
// discipline: each command opens a new arena, and nested typedef
// construction inside parser actions reuses the current (top) arena.
type ArenaStack struct {
	frames []*Arena
}

// Push opens a new arena and makes it current.
func (s *ArenaStack) Push() *Arena {
	a := NewArena()
	s.frames = append(s.frames, a)
	return a
}

// Current returns the innermost open arena, or nil if the stack is empty.
func (s *ArenaStack) Current() *Arena {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Pop releases and removes the innermost arena (on command completion,
// success or error, per spec §5).
func (s *ArenaStack) Pop() {
	n := len(s.frames)
	if n == 0 {
		return
	}
	s.frames[n-1].Release()
	s.frames = s.frames[:n-1]
}

// Depth reports how many arenas are currently open.
func (s *ArenaStack) Depth() int { return len(s.frames) }
