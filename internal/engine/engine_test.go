package engine

import (
	"testing"

	"github.com/cdeclish/cdeclish/internal/dialect"
	"github.com/cdeclish/cdeclish/internal/options"
)

// TestEndToEndScenarios exercises the six end-to-end scenarios named as
// testable properties: one command (or short command sequence) per
// dialect, checked against its literal expected rendering.
func TestEndToEndScenarios(t *testing.T) {
	t.Run("explain pointer to function", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.C17
		r := e.Explain("int (*f)(char, double)")
		if !r.Ok() {
			t.Fatalf("explain failed: %v", r.Diags.All())
		}
		want := "declare f as pointer to function (char, double) returning int"
		if r.Output != want {
			t.Fatalf("got %q, want %q", r.Output, want)
		}
	})

	t.Run("declare array of pointer to const int, west vs east const", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.C17
		r := e.Declare("x as array 10 of pointer to const int")
		if !r.Ok() {
			t.Fatalf("declare failed: %v", r.Diags.All())
		}
		if want := "const int *x[10];"; r.Output != want {
			t.Fatalf("got %q, want %q", r.Output, want)
		}

		e.Opts.EastConst = true
		r = e.Declare("x as array 10 of pointer to const int")
		if !r.Ok() {
			t.Fatalf("declare failed: %v", r.Diags.All())
		}
		if want := "int const *x[10];"; r.Output != want {
			t.Fatalf("got %q, want %q", r.Output, want)
		}
	})

	t.Run("declare pointer to member", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.CPP20
		r := e.Declare("p as pointer to member of C to int")
		if !r.Ok() {
			t.Fatalf("declare failed: %v", r.Diags.All())
		}
		if want := "int C::*p;"; r.Output != want {
			t.Fatalf("got %q, want %q", r.Output, want)
		}
	})

	t.Run("char16_t rejected before C11", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.C89
		r := e.Declare("s as char16_t")
		if r.Ok() {
			t.Fatalf("expected char16_t to be rejected in C89, got %q", r.Output)
		}
	})

	t.Run("trigraphs", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.C17
		e.Opts.Graph = options.GraphTrigraphs
		r := e.Declare("a as array of int")
		if !r.Ok() {
			t.Fatalf("declare failed: %v", r.Diags.All())
		}
		if want := "int a??(??);"; r.Output != want {
			t.Fatalf("got %q, want %q", r.Output, want)
		}
	})

	t.Run("typedef then show preserves aliasing identity", func(t *testing.T) {
		e := New()
		e.Opts.Dialect = dialect.CPP23
		r := e.Typedef("struct S { int x; } S;")
		if !r.Ok() {
			t.Fatalf("typedef failed: %v", r.Diags.All())
		}
		lines := e.Show("S", ShowDecl)
		if len(lines) != 1 {
			t.Fatalf("expected one show line, got %v", lines)
		}
		if want := "typedef struct S S;"; lines[0] != want {
			t.Fatalf("got %q, want %q", lines[0], want)
		}
	})
}

func TestDefineRegistersLikeTypedef(t *testing.T) {
	e := New()
	e.Opts.Dialect = dialect.CPP17
	r := e.Define("celsius as double")
	if !r.Ok() {
		t.Fatalf("define failed: %v", r.Diags.All())
	}
	lines := e.Show("celsius", ShowDecl)
	if len(lines) != 1 {
		t.Fatalf("expected celsius to be registered, got %v", lines)
	}
}

func TestCastRendersParenthesizedExpression(t *testing.T) {
	e := New()
	r := e.Cast("x into pointer to int")
	if !r.Ok() {
		t.Fatalf("cast failed: %v", r.Diags.All())
	}
	if want := "(int *)x"; r.Output != want {
		t.Fatalf("got %q, want %q", r.Output, want)
	}
}

func TestRegistryConflictIsReported(t *testing.T) {
	e := New()
	if r := e.Typedef("typedef int celsius;"); !r.Ok() {
		t.Fatalf("first typedef failed: %v", r.Diags.All())
	}
	r := e.Typedef("typedef double celsius;")
	if r.Ok() {
		t.Fatalf("expected conflicting redefinition to fail")
	}
}
