package normalize

import (
	"sort"

	"github.com/kboyd/cflab/grammar"
)

// Chomsky converts g to Chomsky Normal Form: every production has a
// right-hand side of length 2 (both nonterminals), length 1 (a
// terminal), or is `S -> epsilon` with S the start symbol and S absent
// from every right-hand side.
//
// The pipeline is: start-not-in-RHS normalization, epsilon-removal,
// unit-removal, useless-pruning, unreachable-pruning, then binarization
// of long right-hand sides, then terminal isolation.
func Chomsky(g *grammar.CFG) *grammar.CFG {
	g = RemoveStartFromRHS(g)
	g = RemoveEpsilon(g)
	g = RemoveUnit(g)
	g = PruneUseless(g)
	g = PruneUnreachable(g)

	var binarized []grammar.Production
	for _, p := range g.Productions {
		if len(p.RHS) <= 2 {
			binarized = append(binarized, p)
			continue
		}
		binarized = append(binarized, binarize(p)...)
	}
	g = grammar.New(g.Start, binarized)

	return isolateTerminals(g)
}

// binarize rewrites a production `A -> X1 X2 ... Xk` (k > 2) into the
// chain `A -> X1 Y1`, `Y1 -> X2 Y2`, ..., `Yk-2 -> Xk-1 Xk`, where each
// Yi is a fresh nonterminal named after the concatenated rendering of
// its tail symbols. Distinct tails render to distinct strings, so this
// naming is both deterministic and collision-free.
func binarize(p grammar.Production) []grammar.Production {
	k := len(p.RHS)
	productions := make([]grammar.Production, 0, k-1)
	lhs := p.LHS
	for i := 0; i < k-2; i++ {
		tail := p.RHS[i+1:]
		y := grammar.Nonterminal{Name: grammar.RenderSymbols(tail)}
		productions = append(productions, grammar.NewProduction(lhs, []grammar.Symbol{p.RHS[i], y}))
		lhs = y
	}
	productions = append(productions, grammar.NewProduction(lhs, []grammar.Symbol{p.RHS[k-2], p.RHS[k-1]}))
	return productions
}

// isolateTerminals replaces any terminal occurring in a non-unique
// position (i.e. any terminal within a right-hand side of length >= 2)
// with a fresh nonterminal T_t, introducing the auxiliary production
// `T_t -> t` once per terminal.
func isolateTerminals(g *grammar.CFG) *grammar.CFG {
	terminalVars := map[rune]grammar.Nonterminal{}
	var productions []grammar.Production
	for _, p := range g.Productions {
		if len(p.RHS) < 2 {
			productions = append(productions, p)
			continue
		}
		rhs := make([]grammar.Symbol, len(p.RHS))
		for i, s := range p.RHS {
			t, ok := s.(grammar.Terminal)
			if !ok {
				rhs[i] = s
				continue
			}
			nt, seen := terminalVars[t.Char]
			if !seen {
				nt = grammar.Nonterminal{Name: string(t.Char)}
				terminalVars[t.Char] = nt
			}
			rhs[i] = nt
		}
		productions = append(productions, grammar.NewProduction(p.LHS, rhs))
	}
	chars := make([]rune, 0, len(terminalVars))
	for c := range terminalVars {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	for _, c := range chars {
		productions = append(productions, grammar.NewProduction(terminalVars[c], []grammar.Symbol{grammar.Terminal{Char: c}}))
	}
	return grammar.New(g.Start, productions)
}
