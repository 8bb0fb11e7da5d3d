package cli

import "testing"

func TestParseFlagsBasic(t *testing.T) {
	f, err := parseFlags([]string{"--language=c89", "--east-const", "--no-prompt", "declare", "x", "as", "int"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Language != "c89" {
		t.Errorf("Language = %q", f.Language)
	}
	if !f.EastConst || !f.NoPrompt {
		t.Errorf("EastConst/NoPrompt not set: %+v", f)
	}
	want := []string{"declare", "x", "as", "int"}
	if len(f.Rest) != len(want) {
		t.Fatalf("Rest = %v, want %v", f.Rest, want)
	}
	for i, w := range want {
		if f.Rest[i] != w {
			t.Errorf("Rest[%d] = %q, want %q", i, f.Rest[i], w)
		}
	}
}

func TestParseFlagsRejectsUnknown(t *testing.T) {
	if _, err := parseFlags([]string{"--bogus"}); err == nil {
		t.Fatalf("expected error for unrecognized flag")
	}
}

func TestParseFlagsRequiresValueForValuedFlag(t *testing.T) {
	if _, err := parseFlags([]string{"--language"}); err == nil {
		t.Fatalf("expected error for --language without a value")
	}
}
