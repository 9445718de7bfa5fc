package normalize

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
)

// unitClosures computes, for every variable A, U(A): the smallest set
// containing A and every B such that A ->* B through a chain of unit
// productions (right-hand side a single nonterminal). Unit-unit cycles
// are absorbed automatically, since the fixed point unions each
// variable's closure into every variable that reaches it.
func unitClosures(g *grammar.CFG) map[grammar.Nonterminal]*iteratable.Set[grammar.Nonterminal] {
	closures := map[grammar.Nonterminal]*iteratable.Set[grammar.Nonterminal]{}
	for _, v := range g.Variables() {
		closures[v] = iteratable.NewFrom(v)
	}
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if !p.IsUnit() {
				continue
			}
			b, _ := grammar.AsNonterminal(p.RHS[0])
			if closures[p.LHS].Union(closures[b]) {
				changed = true
			}
		}
	}
	for a, u := range closures {
		tracer().Debugf("unit-closure(%s) = %v", a, u.Values())
	}
	return closures
}

// RemoveUnit eliminates unit productions: every non-unit production is
// kept, and for every variable A and every B in U(A) (including A
// itself) and every non-unit production B -> alpha, the production
// A -> alpha is emitted.
func RemoveUnit(g *grammar.CFG) *grammar.CFG {
	closures := unitClosures(g)
	var productions []grammar.Production
	for _, a := range g.Variables() {
		for _, b := range closures[a].Values() {
			for _, p := range g.Rules(b) {
				if p.IsUnit() {
					continue
				}
				productions = append(productions, grammar.NewProduction(a, p.RHS))
			}
		}
	}
	return grammar.New(g.Start, productions)
}
