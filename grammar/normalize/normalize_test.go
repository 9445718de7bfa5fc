package normalize

import (
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

func hasProduction(g *grammar.CFG, lhs grammar.Nonterminal, rhsText string) bool {
	for _, p := range g.Productions {
		if p.LHS == lhs && grammar.RenderSymbols(p.RHS) == rhsText {
			return true
		}
	}
	return false
}

// TestSimplifyBalancedParens checks a balanced-parens grammar: S -> | S(S)S.
func TestSimplifyBalancedParens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> S(S)S | ")
	out := Simplify(g)

	if out.Start.Name != "S" || out.Start.Subscript != 1 {
		t.Fatalf("expected start S1, got %v", out.Start)
	}
	s := grammar.Nonterminal{Name: "S"}
	s1 := grammar.Nonterminal{Name: "S", Subscript: 1}

	if !hasProduction(out, s1, "") {
		t.Error("missing S1 -> epsilon")
	}
	if !hasProduction(out, s1, "S") {
		t.Error("missing S1 -> S")
	}
	for _, want := range []string{"()", "()S", "(S)", "(S)S", "S()", "S()S", "S(S)", "S(S)S"} {
		if !hasProduction(out, s, want) {
			t.Errorf("missing S -> %s", want)
		}
	}
}

// TestNullableBasic exercises the fixed-point nullable computation.
func TestNullableBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "A -> BAB | B | \nB -> 00 | ")
	n := Nullable(g)
	a := grammar.Nonterminal{Name: "A"}
	b := grammar.Nonterminal{Name: "B"}
	if !n.Contains(a) || !n.Contains(b) {
		t.Fatalf("expected A and B nullable, got %v", n.Values())
	}
}

func TestChomskyExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "A -> BAB | B | \nB -> 00 | ")
	out := Chomsky(g)
	for _, p := range out.Productions {
		switch len(p.RHS) {
		case 0:
			if p.LHS != out.Start {
				t.Errorf("epsilon production on non-start nonterminal %v", p.LHS)
			}
		case 1:
			if !grammar.IsTerminal(p.RHS[0]) {
				t.Errorf("length-1 production %v is not a terminal", p)
			}
		case 2:
			if !grammar.IsNonterminal(p.RHS[0]) || !grammar.IsNonterminal(p.RHS[1]) {
				t.Errorf("length-2 production %v is not two nonterminals", p)
			}
		default:
			t.Errorf("production %v violates CNF (length %d)", p, len(p.RHS))
		}
	}
	zero := grammar.Nonterminal{Name: "0"}
	if !hasProduction(out, zero, "0") {
		t.Error("missing isolated-terminal production <0> -> 0")
	}
}

func TestChomskyIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> aSb | ab")
	once := Chomsky(g)
	twice := Chomsky(once)
	if !once.Equal(twice) {
		t.Errorf("chomsky(chomsky(G)) != chomsky(G):\n%s\n---\n%s", once.Render(), twice.Render())
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> aSb | ab | ")
	once := Simplify(g)
	twice := Simplify(once)
	if !once.Equal(twice) {
		t.Errorf("simplify(simplify(G)) != simplify(G):\n%s\n---\n%s", once.Render(), twice.Render())
	}
}

func TestPruneUselessAndUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	// A grammar with useless nonterminals (no terminal derivation) and
	// unreachable ones (never reachable from the start symbol) mixed in.
	g := mustParse(t,
		"S -> aAB | E\n"+
			"A -> aA | bB\n"+
			"B -> ACb | b\n"+
			"C -> A | bA | cC | aE\n"+
			"D -> a | c | Fb\n"+
			"E -> cE | aE | Eb | ED | FG\n"+
			"F -> BC | EC | AC\n"+
			"G -> Ga | Gb")
	out := PruneUnreachable(PruneUseless(g))

	want := []struct {
		lhs string
		rhs string
	}{
		{"S", "aAB"},
		{"A", "aA"}, {"A", "bB"},
		{"B", "ACb"}, {"B", "b"},
		{"C", "A"}, {"C", "bA"}, {"C", "cC"},
	}
	if len(out.Productions) != len(want) {
		t.Fatalf("expected %d productions, got %d:\n%s", len(want), len(out.Productions), out.Render())
	}
	for _, w := range want {
		if !hasProduction(out, grammar.Nonterminal{Name: w.lhs}, w.rhs) {
			t.Errorf("missing %s -> %s", w.lhs, w.rhs)
		}
	}
}

func TestIsNormalFormCleanGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> AB\nA -> a\nB -> b")
	if d := IsNormalForm(g); d != nil {
		t.Errorf("expected no defect, got %v", *d)
	}
}

func TestIsNormalFormDetectsEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> AB\nA -> a | \nB -> b")
	d := IsNormalForm(g)
	if d == nil || *d != DefectHasEpsilon {
		t.Errorf("expected DefectHasEpsilon, got %v", d)
	}
}

func TestIsNormalFormDetectsUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cflab.normalize")
	defer teardown()
	g := mustParse(t, "S -> A\nA -> a")
	d := IsNormalForm(g)
	if d == nil || *d != DefectHasUnit {
		t.Errorf("expected DefectHasUnit, got %v", d)
	}
}
