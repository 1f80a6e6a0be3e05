package slug

import (
	"strings"
	"testing"
)

func TestNewLengthAndAlphabet(t *testing.T) {
	for _, n := range []int{1, 10, 16} {
		s := New(n)
		if len(s) != n {
			t.Fatalf("New(%d) returned %q (len %d)", n, s, len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("character %q outside alphabet in %q", r, s)
			}
		}
	}
}

func TestNewNonPositiveDefaults(t *testing.T) {
	if got := New(0); len(got) != 10 {
		t.Fatalf("New(0) should default to 10 chars, got %d", len(got))
	}
	if got := New(-3); len(got) != 10 {
		t.Fatalf("New(-3) should default to 10 chars, got %d", len(got))
	}
}

func TestShareCollisions(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		s := Share()
		if len(s) != 10 {
			t.Fatalf("share slug length: %q", s)
		}
		if seen[s] {
			t.Fatalf("collision after %d slugs: %q", i, s)
		}
		seen[s] = true
	}
}
