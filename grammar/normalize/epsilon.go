package normalize

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
)

// RemoveEpsilon produces a grammar with no epsilon-productions, except
// possibly a single `S -> epsilon` (where S is the, possibly fresh,
// start symbol) when the empty string is in the language.
//
// For each production whose right-hand side contains at least one
// nullable nonterminal, every non-epsilon, non-self-unit variant
// obtained by dropping some subset of the nullable positions is kept
// (self-unit suppression: a variant that reduces to a single nonterminal
// equal to its own left-hand side is a no-op and is discarded).
//
// If the start symbol is nullable and also appears on some right-hand
// side, a fresh start symbol is introduced with `S' -> S` and
// `S' -> epsilon`. If the start symbol is nullable but does not appear
// on any right-hand side, `S -> epsilon` is retained directly.
func RemoveEpsilon(g *grammar.CFG) *grammar.CFG {
	nullable := Nullable(g)
	startNullable := nullable.Contains(g.Start)
	startInRHS := g.StartInRHS()

	var productions []grammar.Production
	for _, p := range g.Productions {
		if p.IsEpsilon() {
			continue
		}
		for _, variant := range nullablePositionVariants(p, nullable) {
			if len(variant) == 0 {
				continue
			}
			if n, ok := grammar.AsNonterminal(variant[0]); ok && len(variant) == 1 && n == p.LHS {
				continue // self-unit suppression
			}
			productions = append(productions, grammar.NewProduction(p.LHS, variant))
		}
	}

	start := g.Start
	if startNullable {
		if startInRHS {
			fresh := g.FreshVariable(g.Start)
			tracer().Debugf("start %s is nullable and in some right-hand side, introducing %s", g.Start, fresh)
			productions = append(productions,
				grammar.NewProduction(fresh, []grammar.Symbol{g.Start}),
				grammar.NewProduction(fresh, nil),
			)
			start = fresh
		} else {
			tracer().Debugf("start %s is nullable and never on a right-hand side, keeping %s -> epsilon", g.Start, g.Start)
			productions = append(productions, grammar.NewProduction(g.Start, nil))
		}
	}
	return grammar.New(start, productions)
}

// nullablePositionVariants returns every right-hand side obtainable from
// p.RHS by dropping some subset of its nullable-nonterminal positions,
// including the subset-removed-nothing variant (the original RHS).
func nullablePositionVariants(p grammar.Production, nullable *iteratable.Set[grammar.Nonterminal]) [][]grammar.Symbol {
	var nullablePositions []int
	for i, s := range p.RHS {
		if n, ok := grammar.AsNonterminal(s); ok && nullable.Contains(n) {
			nullablePositions = append(nullablePositions, i)
		}
	}
	if len(nullablePositions) == 0 {
		return [][]grammar.Symbol{p.RHS}
	}
	combos := 1 << len(nullablePositions)
	variants := make([][]grammar.Symbol, 0, combos)
	for mask := 0; mask < combos; mask++ {
		removed := make(map[int]bool, len(nullablePositions))
		for bit, pos := range nullablePositions {
			if mask&(1<<bit) != 0 {
				removed[pos] = true
			}
		}
		var variant []grammar.Symbol
		for i, s := range p.RHS {
			if removed[i] {
				continue
			}
			variant = append(variant, s)
		}
		variants = append(variants, variant)
	}
	return variants
}
