package typedef

import (
	"testing"

	"github.com/cdeclish/cdeclish/internal/ast"
	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/sname"
)

func TestPredefinedGatedByDialect(t *testing.T) {
	r := New()
	_, name := sname.Parse("char16_t") // not predefined here, but size_t is
	_ = name
	_, n := sname.Parse("size_t")
	if _, ok := r.Find(n, dialect.C89); !ok {
		t.Fatalf("expected size_t visible in C89")
	}
	_, n64 := sname.Parse("uint64_t")
	if _, ok := r.Find(n64, dialect.C89); ok {
		t.Fatalf("expected uint64_t invisible in C89")
	}
	if _, ok := r.Find(n64, dialect.C99); !ok {
		t.Fatalf("expected uint64_t visible in C99")
	}
}

func TestAddConflictOnDifferentAST(t *testing.T) {
	r := New()
	arena := ast.NewArena()
	_, foo := sname.Parse("foo")

	n1 := arena.NewBuiltin(ast.Span{})
	if res, _ := r.Add(foo, n1, dialect.Any); res != AddOK {
		t.Fatalf("expected first add to succeed")
	}

	n2 := arena.NewPointer(ast.Span{}, arena.NewBuiltin(ast.Span{}))
	if res, existing := r.Add(foo, n2, dialect.Any); res != AddConflict {
		t.Fatalf("expected conflict, got %v (existing %v)", res, existing)
	}

	n3 := arena.NewBuiltin(ast.Span{})
	if res, _ := r.Add(foo, n3, dialect.Any); res != AddOK {
		t.Fatalf("expected structurally-equal redefinition to succeed, got %v", res)
	}
}

func TestIterGlobInsertionOrder(t *testing.T) {
	r := New()
	arena := ast.NewArena()
	_, a1 := sname.Parse("alpha")
	_, a2 := sname.Parse("alt")
	_, b1 := sname.Parse("beta")
	r.Add(a1, arena.NewBuiltin(ast.Span{}), dialect.Any)
	r.Add(b1, arena.NewBuiltin(ast.Span{}), dialect.Any)
	r.Add(a2, arena.NewBuiltin(ast.Span{}), dialect.Any)

	matches := r.Iter("al*", dialect.Any)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Name.GlobalName() != "alpha" || matches[1].Name.GlobalName() != "alt" {
		t.Fatalf("unexpected order: %v", matches)
	}
}
