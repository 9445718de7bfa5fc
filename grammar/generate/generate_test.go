package generate

import (
	"sort"
	"testing"

	"github.com/kboyd/cflab/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, text string) *grammar.CFG {
	t.Helper()
	g, err := grammar.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return g
}

func sorted(strs []string) []string {
	out := append([]string(nil), strs...)
	sort.Strings(out)
	return out
}

func TestGenerateLeftmostAndRightmostAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.generate")
	defer teardown()
	g := mustParse(t, "A -> aA | bB\nB -> b")
	want := []string{"abb", "bb"}

	left := Generate(g, Config{Min: 0, Max: 3, Direction: Leftmost, Dedup: true})
	right := Generate(g, Config{Min: 0, Max: 3, Direction: Rightmost, Dedup: true})

	if got := sorted(left); !equalStrs(got, want) {
		t.Errorf("leftmost = %v, want %v", got, want)
	}
	if got := sorted(right); !equalStrs(got, want) {
		t.Errorf("rightmost = %v, want %v", got, want)
	}
}

func TestGenerateRespectsMaxLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.generate")
	defer teardown()
	g := mustParse(t, "A -> aA | bB\nB -> b")
	out := Generate(g, Config{Min: 0, Max: 3, Dedup: true})
	for _, s := range out {
		if len(s) > 3 {
			t.Errorf("generated %q exceeds max length 3", s)
		}
	}
}

func TestGenerateRespectsMinLength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.generate")
	defer teardown()
	g := mustParse(t, "S -> aS | ")
	out := Generate(g, Config{Min: 2, Max: 4, Dedup: true})
	for _, s := range out {
		if len(s) < 2 {
			t.Errorf("generated %q is shorter than min length 2", s)
		}
	}
}

func TestGenerateWithoutDedupRepeats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.generate")
	defer teardown()
	g := mustParse(t, "S -> aB | Ab\nA -> a\nB -> b")
	out := Generate(g, Config{Min: 0, Max: 2})
	count := 0
	for _, s := range out {
		if s == "ab" {
			count++
		}
	}
	if count < 2 {
		t.Fatalf("expected \"ab\" to be yielded via both derivations without dedup, got %v", out)
	}
}

func equalStrs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
