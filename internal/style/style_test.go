package style

import (
	"strings"
	"testing"
)

// SetColorMode mutates package state; these tests do not run in parallel.

func TestSetColorMode_Never(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if err := SetColorMode("never"); err != nil {
		t.Fatalf("SetColorMode(never) error: %v", err)
	}
	got := Error.Render("x")
	if strings.Contains(got, "\x1b") {
		t.Errorf("SetColorMode(never): Error.Render(\"x\") = %q, want no ANSI escapes", got)
	}
	if got != "x" {
		t.Errorf("SetColorMode(never): Error.Render(\"x\") = %q, want \"x\"", got)
	}
}

func TestSetColorMode_Always(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	if err := SetColorMode("always"); err != nil {
		t.Fatalf("SetColorMode(always) error: %v", err)
	}
	if got := Warning.Render("ok"); got == "" {
		t.Error("SetColorMode(always): Warning.Render returned empty string")
	}
}

func TestSetColorMode_Auto(t *testing.T) {
	for _, mode := range []string{"", "auto"} {
		if err := SetColorMode(mode); err != nil {
			t.Errorf("SetColorMode(%q) error: %v", mode, err)
		}
	}
	if got := Bold.Render("hi"); got == "" {
		t.Error("SetColorMode(auto): Bold.Render returned empty string")
	}
}

func TestSetColorMode_Invalid(t *testing.T) {
	err := SetColorMode("rainbow")
	if err == nil {
		t.Fatal("SetColorMode(rainbow) expected error")
	}
	if !strings.Contains(err.Error(), "rainbow") {
		t.Errorf("error = %q, want it to name the bad value", err.Error())
	}
}
