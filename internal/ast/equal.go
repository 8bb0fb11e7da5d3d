package ast

// Equal reports structural equality of two declarator ASTs — same kind,
// identifiers, types, and nesting — ignoring ID/Span/Depth/Parent, which
// are arena-instance bookkeeping rather than declarator semantics. This
// backs P1 (round-trip) and P2 (idempotence) from spec §8.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Ident != b.Ident {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if a.DeclFlags != b.DeclFlags {
		return false
	}
	if !snameEqualForAST(a, b) {
		return false
	}
	if a.Variadic != b.Variadic || a.OpID != b.OpID {
		return false
	}
	if !Equal(a.To, b.To) || !Equal(a.OfClass, b.OfClass) || !Equal(a.Of, b.Of) || !Equal(a.Ret, b.Ret) {
		return false
	}
	if a.ArraySize != b.ArraySize {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if !Equal(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return true
}

func snameEqualForAST(a, b *Node) bool {
	if a.SName.Count() != b.SName.Count() {
		return false
	}
	return a.SName.GlobalName() == b.SName.GlobalName()
}
