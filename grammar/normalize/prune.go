package normalize

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
)

// generating computes the smallest set of nonterminals G such that some
// production A -> alpha exists with every nonterminal of alpha already
// in G (terminals and the empty right-hand side never block inclusion).
func generating(g *grammar.CFG) *iteratable.Set[grammar.Nonterminal] {
	set := iteratable.New[grammar.Nonterminal]()
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if set.Contains(p.LHS) {
				continue
			}
			allGenerating := true
			for _, s := range p.RHS {
				if n, ok := grammar.AsNonterminal(s); ok && !set.Contains(n) {
					allGenerating = false
					break
				}
			}
			if allGenerating && set.Add(p.LHS) {
				changed = true
			}
		}
	}
	tracer().Debugf("generating(G) = %v", set.Values())
	return set
}

// PruneUseless removes every production whose left-hand side, or any
// nonterminal on its right-hand side, does not derive a terminal string.
func PruneUseless(g *grammar.CFG) *grammar.CFG {
	gen := generating(g)
	var productions []grammar.Production
	for _, p := range g.Productions {
		if !gen.Contains(p.LHS) {
			continue
		}
		if rhsAllIn(p, gen) {
			productions = append(productions, p)
		}
	}
	return grammar.New(g.Start, productions)
}

// reachable computes the least fixed point containing the start symbol
// and, whenever A is reachable and A -> alpha exists, every nonterminal
// of alpha.
func reachable(g *grammar.CFG) *iteratable.Set[grammar.Nonterminal] {
	set := iteratable.NewFrom(g.Start)
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if !set.Contains(p.LHS) {
				continue
			}
			for _, s := range p.RHS {
				if n, ok := grammar.AsNonterminal(s); ok && set.Add(n) {
					changed = true
				}
			}
		}
	}
	tracer().Debugf("reachable(G) = %v", set.Values())
	return set
}

// PruneUnreachable removes every production whose left-hand side is not
// reachable from the start symbol.
func PruneUnreachable(g *grammar.CFG) *grammar.CFG {
	r := reachable(g)
	var productions []grammar.Production
	for _, p := range g.Productions {
		if r.Contains(p.LHS) && rhsAllIn(p, r) {
			productions = append(productions, p)
		}
	}
	return grammar.New(g.Start, productions)
}

func rhsAllIn(p grammar.Production, set *iteratable.Set[grammar.Nonterminal]) bool {
	for _, s := range p.RHS {
		if n, ok := grammar.AsNonterminal(s); ok && !set.Contains(n) {
			return false
		}
	}
	return true
}

// RemoveStartFromRHS introduces a fresh start symbol S' with the single
// production `S' -> S` whenever the current start symbol appears on any
// right-hand side; otherwise g is returned unchanged.
func RemoveStartFromRHS(g *grammar.CFG) *grammar.CFG {
	if !g.StartInRHS() {
		return g
	}
	fresh := g.FreshVariable(g.Start)
	productions := append([]grammar.Production{grammar.NewProduction(fresh, []grammar.Symbol{g.Start})}, g.Productions...)
	return grammar.New(fresh, productions)
}
