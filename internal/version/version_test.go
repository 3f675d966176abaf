package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Commit = "0123456789abcdef"
	BuildTime = "2026-01-02T10:00:00Z"
	t.Cleanup(func() {
		Commit = "unknown"
		BuildTime = "unknown"
	})

	got := String()
	want := "loom dev (commit: 0123456, built: 2026-01-02T10:00:00Z)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestShortCommit_Short(t *testing.T) {
	Commit = "abc"
	t.Cleanup(func() { Commit = "unknown" })

	if !strings.Contains(String(), "commit: abc,") {
		t.Errorf("String() = %q, short commit should be kept whole", String())
	}
}
