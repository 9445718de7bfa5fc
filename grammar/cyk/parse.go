package cyk

import (
	"github.com/kboyd/cflab/grammar"
)

// Parse recognizes w against g (Chomsky Normal Form required) and, on
// acceptance, reconstructs one witnessing parse as a pre-order list of
// the productions applied. It returns ok=false with a nil path when w
// is rejected; the table itself is always a completed fixed point, so
// no chain of unit derivations is left unresolved by the time the
// top-down walk begins.
func Parse(g *grammar.CFG, w string) (ok bool, path []grammar.Production, err error) {
	if err := requireChomsky(g); err != nil {
		return false, nil, err
	}
	runes := []rune(w)
	if len(runes) == 0 {
		for _, p := range g.Rules(g.Start) {
			if p.IsEpsilon() {
				return true, []grammar.Production{p}, nil
			}
		}
		return false, nil, nil
	}

	t := build(g, runes)
	n := len(runes)
	if !t[0][n-1].Contains(g.Start) {
		return false, nil, nil
	}
	return true, walk(g, t, runes, 0, n-1, g.Start), nil
}

// walk reconstructs a derivation of the Nonterminal target over the
// substring [i, i+length], given a completed table.
func walk(g *grammar.CFG, t table, w []rune, i, length int, target grammar.Nonterminal) []grammar.Production {
	if length == 0 {
		for _, p := range g.Rules(target) {
			if len(p.RHS) == 1 {
				if term, ok := p.RHS[0].(grammar.Terminal); ok && term.Char == w[i] {
					return []grammar.Production{p}
				}
			}
		}
		return nil
	}
	for _, p := range g.Rules(target) {
		if len(p.RHS) != 2 {
			continue
		}
		b, ok1 := grammar.AsNonterminal(p.RHS[0])
		c, ok2 := grammar.AsNonterminal(p.RHS[1])
		if !ok1 || !ok2 {
			continue
		}
		for k := 0; k < length; k++ {
			left := t[i][k]
			right := t[i+k+1][length-k-1]
			if left.Contains(b) && right.Contains(c) {
				path := []grammar.Production{p}
				path = append(path, walk(g, t, w, i, k, b)...)
				path = append(path, walk(g, t, w, i+k+1, length-k-1, c)...)
				return path
			}
		}
	}
	return nil
}
