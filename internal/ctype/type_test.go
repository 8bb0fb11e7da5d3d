package ctype

import (
	"strings"
	"testing"

	"github.com/cdeclish/cdeclish/internal/dialect"
)

func TestTidAddConflicts(t *testing.T) {
	cases := []struct {
		name    string
		a, b    *Atom
		wantErr ConflictKind
	}{
		{"signed+unsigned", Signed, Unsigned, MultipleSignedness},
		{"short+long", Short, Long, MultipleWidth},
		{"void+int", Void, Int, BaseTypeConflict},
		{"long+double ok", Long, Double, ConflictNone},
		{"static+extern", Static, Extern, MultipleStorage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, conflict := TidAdd(c.a.TPID, c.a.Bit, c.b.Bit)
			if c.wantErr == ConflictNone {
				if conflict != nil {
					t.Fatalf("unexpected conflict: %v", conflict.Kind)
				}
				return
			}
			if conflict == nil {
				t.Fatalf("expected conflict %v, got none", c.wantErr)
			}
			if conflict.Kind != c.wantErr {
				t.Fatalf("got %v, want %v", conflict.Kind, c.wantErr)
			}
		})
	}
}

func TestIsLegalDialectMonotonicity(t *testing.T) {
	// P3: if legal in L and L subset of L', legal in L'.
	ty := Type{Base: Char16T.Bit}
	if IsLegal(ty, dialect.C89).Legal {
		t.Fatalf("char16_t must not be legal in C89")
	}
	v := IsLegal(ty, dialect.C89)
	if v.MinDialect != dialect.C11 {
		t.Fatalf("expected minimum dialect C11, got %v", v.MinDialect)
	}
	if !IsLegal(ty, dialect.C11).Legal {
		t.Fatalf("char16_t must be legal in C11")
	}
	if !IsLegal(ty, dialect.C17).Legal {
		t.Fatalf("char16_t must be legal in C17 (superset of C11 support)")
	}
}

func TestExplicitIntFaithfulness(t *testing.T) {
	// P7: unsigned short with ExplicitUnsignedShort set renders "unsigned short int".
	ty := Type{Base: Unsigned.Bit | Short.Bit}
	got := Decl(ty, ExplicitUnsignedShort)
	if !strings.Contains(got, "unsigned short int") {
		t.Fatalf("got %q, want it to contain \"unsigned short int\"", got)
	}
	without := Decl(ty, 0)
	if strings.Contains(without, "int") {
		t.Fatalf("got %q, want no redundant int without the explicit-int bit", without)
	}
}
