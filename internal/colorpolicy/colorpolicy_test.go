package colorpolicy

import (
	"os"
	"testing"
)

func TestParseWhen(t *testing.T) {
	cases := map[string]When{
		"always": WhenAlways, "never": WhenNever, "auto": WhenAuto,
		"isatty": WhenIsatty, "tty": WhenTTY,
		"not_file": WhenNotFile, "not_isreg": WhenNotIsreg,
	}
	for s, want := range cases {
		got, ok := ParseWhen(s)
		if !ok || got != want {
			t.Errorf("ParseWhen(%q) = %v, %v; want %v, true", s, got, ok, want)
		}
	}
	if _, ok := ParseWhen("bogus"); ok {
		t.Errorf("ParseWhen(bogus) should fail")
	}
}

func TestResolveAlwaysNever(t *testing.T) {
	if !Resolve(WhenAlways, os.Stdout) {
		t.Errorf("WhenAlways should always resolve true")
	}
	if Resolve(WhenNever, os.Stdout) {
		t.Errorf("WhenNever should always resolve false")
	}
}

func TestResolveNotFileOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cdeclish-color-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if Resolve(WhenNotFile, f) {
		t.Errorf("WhenNotFile should resolve false for a regular file")
	}
	if Resolve(WhenNotIsreg, f) {
		t.Errorf("WhenNotIsreg should resolve false for a regular file")
	}
}

func TestAutoDetectRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f, err := os.CreateTemp(t.TempDir(), "cdeclish-color-*")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if Resolve(WhenAuto, f) {
		t.Errorf("NO_COLOR should force auto-detection to false")
	}
}
