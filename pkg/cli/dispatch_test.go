package cli

import (
	"testing"

	"github.com/cdeclish/cdeclish/internal/engine"
)

func TestDispatchVerbs(t *testing.T) {
	e := engine.New()
	r := dispatch(e, "declare x as pointer to int")
	if r.Diags != nil && r.Diags.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Diags.All())
	}
	if len(r.Output) != 1 || r.Output[0] != "int *x;" {
		t.Fatalf("got %v", r.Output)
	}
}

func TestDispatchUnrecognizedVerbFallsBackToExplain(t *testing.T) {
	e := engine.New()
	r := dispatch(e, "int *x;")
	if r.Diags != nil && r.Diags.Len() > 0 {
		t.Fatalf("unexpected diagnostics: %v", r.Diags.All())
	}
	if len(r.Output) != 1 || r.Output[0] != "declare x as pointer to int" {
		t.Fatalf("got %v", r.Output)
	}
}

func TestDispatchExitWords(t *testing.T) {
	e := engine.New()
	for _, word := range []string{"exit", "quit", "q"} {
		r := dispatch(e, word)
		if !r.Quit {
			t.Fatalf("%q should set Quit", word)
		}
	}
}

func TestDispatchShowStyle(t *testing.T) {
	e := engine.New()
	if r := dispatch(e, "typedef int celsius;"); r.Diags != nil && r.Diags.Len() > 0 {
		t.Fatalf("typedef failed: %v", r.Diags.All())
	}

	r := dispatch(e, "show celsius english")
	if len(r.Output) != 1 {
		t.Fatalf("expected one show line, got %v", r.Output)
	}
	if want := "declare celsius as int"; r.Output[0] != want {
		t.Fatalf("got %q, want %q", r.Output[0], want)
	}
}

func TestShowArgsDefaultsToGlobStar(t *testing.T) {
	glob, style := showArgs("")
	if glob != "*" || style != 0 {
		t.Fatalf("got glob=%q style=%v", glob, style)
	}
}
