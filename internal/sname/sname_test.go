package sname

import "testing"

func TestMatchGlobProperties(t *testing.T) {
	s, _ := parseFull("s::nested::x")

	// P4: match(s, "**::x") == (local_name(s) == "x")
	if got, want := Match(s, "**::x"), s.LocalName() == "x"; got != want {
		t.Fatalf("** :: x glob = %v, want %v", got, want)
	}
	// P4: match(s, "*") == (count(s) == 1)
	if got, want := Match(s, "*"), s.Count() == 1; got != want {
		t.Fatalf("* glob = %v, want %v", got, want)
	}

	single, _ := parseFull("x")
	if !Match(single, "*") {
		t.Fatalf("single-scope name should match bare *")
	}

	if !Match(s, "s::*::x") {
		t.Fatalf("worked case from spec: s::*::foo should match one nested scope inside top-level s")
	}
}

func parseFull(s string) (SName, int) {
	n, name := Parse(s)
	return name, n
}

func TestParseConsumesTrailer(t *testing.T) {
	consumed, name := Parse("A::B::x + 1")
	if consumed != len("A::B::x") {
		t.Fatalf("consumed %d, want %d", consumed, len("A::B::x"))
	}
	if name.GlobalName() != "A::B::x" {
		t.Fatalf("got %q", name.GlobalName())
	}
}

func TestFillInNamespaces(t *testing.T) {
	s := SName{Scopes: []Scope{
		{Name: "a", Kind: KindUnresolved},
		{Name: "b", Kind: KindNamespace},
		{Name: "x", Kind: KindUnresolved},
	}}
	filled := s.FillInNamespaces()
	if filled.Scopes[0].Kind != KindNamespace {
		t.Fatalf("expected outer unresolved scope above a namespace local to become a namespace, got %v", filled.Scopes[0].Kind)
	}
}
