package ast

// Chain implements the declarator-inversion idiom of spec §9: C
// declarators nest outside-in while the AST nests inside-out, so the
// parser builds the chain with a (head, target) pair — the first operator
// pushed becomes the head, and each later one is plugged into the current
// "hole" and then shifts that hole so the next operator attaches to its
// own child slot.
//
// link is supplied by the caller alongside each pushed node: it is the
// closure that plugs a following node into that node's own inner slot
// (To for Pointer/Reference, Of for Array, Ret for Function, ...), since
// which field is "the inner slot" varies by Kind and a single struct
// cannot express that generically without reflection.
type Chain struct {
	head *Node
	link func(inner *Node)
}

// NewChain starts an empty declarator chain.
func NewChain() *Chain { return &Chain{} }

// Push appends n to the chain: if the chain is empty, n becomes the
// head; otherwise n is plugged into the current hole via the previous
// link. link becomes the new hole-setter for whatever comes next.
func (c *Chain) Push(n *Node, link func(inner *Node)) {
	if c.head == nil {
		c.head = n
	} else {
		c.link(n)
	}
	c.link = link
}

// Close plugs innermost (typically a Builtin, Typedef, or tag node) into
// the current hole and returns the chain's head — the fully assembled
// declarator root. Closing an empty chain just returns innermost itself
// (e.g. a bare `int` declaration with no pointer/array/function wrapped
// around it).
func (c *Chain) Close(arena *Arena, innermost *Node) *Node {
	if c.head == nil {
		return innermost
	}
	c.link(innermost)
	// Now wire the generic Parent/Children/Depth links top-down so that
	// Visit (which walks Children, not the domain-specific fields) sees
	// the same structure the renderers see via To/Of/Ret.
	wireChildren(arena, c.head)
	return c.head
}

func wireChildren(arena *Arena, n *Node) {
	for _, child := range n.childList() {
		// A child already wired to n (a parameter declarator closed by
		// its own nested Chain.Close before being attached to a
		// Function/Operator's Params, or a tree that WireTree has
		// already visited) must not be re-appended — childList always
		// reports n's full domain-specific children regardless of
		// whether a previous wiring pass already ran.
		if child.Parent == n {
			continue
		}
		arena.SetChild(n, child)
		wireChildren(arena, child)
	}
}

// Empty reports whether any operator has been pushed onto the chain.
func (c *Chain) Empty() bool { return c.head == nil }

// WireTree wires the generic Parent/Children/Depth links for a
// declarator tree assembled directly through the arena's New*
// constructors rather than through a Chain — the shape
// internal/parser's English-DSL grammar builds, since it recurses
// straight through To/Of/Ret/Params rather than collecting a prefix
// chain to push. Without this, Visit (and anything built on it, like
// the checker) would only ever see the root node.
func WireTree(arena *Arena, root *Node) {
	if root == nil {
		return
	}
	wireChildren(arena, root)
}
