package grammar

import (
	"errors"
	"testing"
)

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{
		"S -> aSb | ",
		"S -> <A0><B>\nA -> a\nB -> b | ",
		"<S1> -> a<Foo2>b\n<Foo2> -> c | ",
	}
	for _, text := range cases {
		g, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", text, err)
		}
		rendered := g.Render()
		g2, err := Parse(rendered)
		if err != nil {
			t.Fatalf("re-parse of rendered %q failed: %v", rendered, err)
		}
		if !g.Equal(g2) {
			t.Errorf("round trip mismatch: %q != %q", g.Render(), g2.Render())
		}
	}
}

func TestParseStartIsFirstLHS(t *testing.T) {
	g, err := Parse("B -> b\nA -> a")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start != (Nonterminal{Name: "B"}) {
		t.Errorf("expected start B, got %v", g.Start)
	}
}

func TestParseSubscriptedNonterminal(t *testing.T) {
	g, err := Parse("<S1> -> a")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start != (Nonterminal{Name: "S", Subscript: 1}) {
		t.Errorf("expected S1, got %v", g.Start)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"S a",         // no '->'
		" -> a",       // empty LHS
		"a -> b",      // terminal LHS
		"<S -> a",     // mismatched bracket in LHS
		"S -> a<B",    // unmatched '<' in RHS
		"S -> a>B",    // unmatched '>' in RHS
	}
	for _, text := range cases {
		if _, err := Parse(text); !errors.Is(err, ErrMalformedGrammar) {
			t.Errorf("Parse(%q): expected ErrMalformedGrammar, got %v", text, err)
		}
	}
}

func TestParseEmptyGrammar(t *testing.T) {
	if _, err := Parse("# just a comment\n\n"); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected ErrEmptyGrammar, got %v", err)
	}
}

func TestVariablesAndTerminals(t *testing.T) {
	g, err := Parse("S -> aAb\nA -> c")
	if err != nil {
		t.Fatal(err)
	}
	vars := g.Variables()
	if len(vars) != 2 {
		t.Errorf("expected 2 variables, got %v", vars)
	}
	terms := g.Terminals()
	if len(terms) != 3 {
		t.Errorf("expected 3 terminals, got %v", terms)
	}
}

// TestRenderOrdersStartFirstThenDeterministic checks that Render puts the
// start symbol's rule first and leaves the remaining rules in their
// original deterministic left-hand-side order, rather than swapping the
// start group into the position the former first group occupied.
func TestRenderOrdersStartFirstThenDeterministic(t *testing.T) {
	g, err := Parse("S -> s\nA -> a\nB -> b\nC -> c")
	if err != nil {
		t.Fatal(err)
	}
	want := "S -> s\nA -> a\nB -> b\nC -> c"
	if got := g.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFreshVariable(t *testing.T) {
	g, err := Parse("S -> <S1>\n<S1> -> a")
	if err != nil {
		t.Fatal(err)
	}
	fresh := g.FreshVariable(g.Start)
	if fresh.Subscript != 2 {
		t.Errorf("expected subscript 2 (lowest unused), got %d", fresh.Subscript)
	}
}
