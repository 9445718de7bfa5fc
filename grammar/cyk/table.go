package cyk

import (
	"fmt"

	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
	"github.com/kboyd/cflab/grammar/normalize"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cflab.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("cflab.cyk")
}

// table[i][j] holds the Nonterminals deriving the substring of w
// starting at position i with length j+1 (diagonal indexing, per the
// grammar's worked definition of a CYK cell).
type table [][]*iteratable.Set[grammar.Nonterminal]

func build(g *grammar.CFG, w []rune) table {
	n := len(w)
	t := make(table, n)
	for i := range t {
		t[i] = make([]*iteratable.Set[grammar.Nonterminal], n-i)
	}

	for i, c := range w {
		cell := iteratable.New[grammar.Nonterminal]()
		for _, p := range g.Productions {
			if len(p.RHS) == 1 {
				if term, ok := p.RHS[0].(grammar.Terminal); ok && term.Char == c {
					cell.Add(p.LHS)
				}
			}
		}
		t[i][0] = cell
		tracer().Debugf("T[%d][0] = %v (base case for %q)", i, cell.Values(), c)
	}

	for length := 1; length < n; length++ {
		for i := 0; i+length < n; i++ {
			cell := iteratable.New[grammar.Nonterminal]()
			for k := 0; k < length; k++ {
				left := t[i][k]
				right := t[i+k+1][length-k-1]
				for _, p := range g.Productions {
					if len(p.RHS) != 2 {
						continue
					}
					b, ok1 := grammar.AsNonterminal(p.RHS[0])
					c, ok2 := grammar.AsNonterminal(p.RHS[1])
					if !ok1 || !ok2 {
						continue
					}
					if left.Contains(b) && right.Contains(c) {
						cell.Add(p.LHS)
					}
				}
			}
			t[i][length] = cell
			tracer().Debugf("T[%d][%d] = %v", i, length, cell.Values())
		}
	}
	return t
}

// checkChomsky reports whether g has the literal Chomsky Normal Form
// shape every production of it must have: right-hand side length 2 (both
// Nonterminals), length 1 (a Terminal), or length 0 (epsilon, only for
// the start symbol). normalize.IsNormalForm alone does not catch this —
// a simplified grammar with a still-too-long right-hand side (e.g.
// A -> BCD) passes every one of its five stage checks while remaining
// unusable by the table-filling induction below.
func checkChomsky(g *grammar.CFG) error {
	for _, p := range g.Productions {
		switch len(p.RHS) {
		case 0:
			if p.LHS != g.Start {
				return fmt.Errorf("%w: epsilon production %s with non-start left-hand side", ErrNotChomskyNormalForm, p)
			}
		case 1:
			if !grammar.IsTerminal(p.RHS[0]) {
				return fmt.Errorf("%w: unit-length production %s is not a single terminal", ErrNotChomskyNormalForm, p)
			}
		case 2:
			if !grammar.IsNonterminal(p.RHS[0]) || !grammar.IsNonterminal(p.RHS[1]) {
				return fmt.Errorf("%w: binary production %s is not two nonterminals", ErrNotChomskyNormalForm, p)
			}
		default:
			return fmt.Errorf("%w: production %s has a right-hand side longer than 2 symbols", ErrNotChomskyNormalForm, p)
		}
	}
	return nil
}

func requireChomsky(g *grammar.CFG) error {
	if d := normalize.IsNormalForm(g); d != nil {
		return fmt.Errorf("%w: %s", ErrNotChomskyNormalForm, *d)
	}
	return checkChomsky(g)
}

// Accepts reports whether w is in the language of g, given g is in
// Chomsky Normal Form.
func Accepts(g *grammar.CFG, w string) (bool, error) {
	if err := requireChomsky(g); err != nil {
		return false, err
	}
	runes := []rune(w)
	if len(runes) == 0 {
		return startHasEpsilon(g), nil
	}
	t := build(g, runes)
	return t[0][len(runes)-1].Contains(g.Start), nil
}

func startHasEpsilon(g *grammar.CFG) bool {
	for _, p := range g.Rules(g.Start) {
		if p.IsEpsilon() {
			return true
		}
	}
	return false
}
