package earley

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "cflab.earley".
func tracer() tracing.Trace {
	return tracing.Select("cflab.earley")
}

// state is an Earley item: a reference to g.Productions[Prod], a dot
// position in [0, len(RHS)], and the column index the item originated
// in. Referencing productions by index rather than by value keeps
// states cheap to copy, per the stable-index discipline chart
// construction depends on at O(|P|*n^2) state counts.
type state struct {
	Prod   int
	Dot    int
	Origin int
}

// Chart is the completed sequence of n+1 Earley columns for a parse of
// an n-symbol input, retained so callers can inspect acceptance or
// (future) attempt derivation recovery.
type Chart struct {
	g       *grammar.CFG
	input   []rune
	columns []*iteratable.Set[state]
}

// Build runs the chart construction (predict/scan/complete to
// quiescence, column by column) for w against g.
func Build(g *grammar.CFG, w string) *Chart {
	input := []rune(w)
	n := len(input)
	columns := make([]*iteratable.Set[state], n+1)
	for i := range columns {
		columns[i] = iteratable.New[state]()
	}
	for idx, p := range g.Productions {
		if p.LHS == g.Start {
			columns[0].Add(state{Prod: idx, Dot: 0, Origin: 0})
		}
	}
	c := &Chart{g: g, input: input, columns: columns}
	for k := 0; k <= n; k++ {
		c.fillColumn(k)
	}
	return c
}

// Accepts reports whether w is recognized by g, built directly from g
// with no normalization precondition.
func Accepts(g *grammar.CFG, w string) bool {
	return Build(g, w).Accept()
}

// Accept reports whether the chart's final column contains a fully
// dotted start production with origin 0.
func (c *Chart) Accept() bool {
	last := c.columns[len(c.columns)-1]
	for _, st := range last.Values() {
		p := c.g.Productions[st.Prod]
		if st.Origin == 0 && p.LHS == c.g.Start && st.Dot == len(p.RHS) {
			return true
		}
	}
	return false
}

// fillColumn runs predict, scan and complete over column k until no
// state is added to it; scan contributes to column k+1 and never
// forces a re-pass over k.
func (c *Chart) fillColumn(k int) {
	col := c.columns[k]
	col.IterateOnce()
	for {
		grew := false
		for col.Next() {
			st := col.Item()
			p := c.g.Productions[st.Prod]
			if st.Dot == len(p.RHS) {
				if c.complete(col, st, p) {
					grew = true
				}
				continue
			}
			sym := p.RHS[st.Dot]
			if nt, ok := grammar.AsNonterminal(sym); ok {
				if c.predict(col, nt, k) {
					grew = true
				}
			} else if k < len(c.input) {
				term := sym.(grammar.Terminal)
				if term.Char == c.input[k] {
					c.columns[k+1].Add(state{Prod: st.Prod, Dot: st.Dot + 1, Origin: st.Origin})
				}
			}
		}
		if !grew {
			tracer().Debugf("column %d stable with %d states", k, col.Size())
			return
		}
		col.IterateOnce()
	}
}

// predict adds a start item for every production of B to column k.
func (c *Chart) predict(col *iteratable.Set[state], b grammar.Nonterminal, k int) bool {
	grew := false
	for idx, p := range c.g.Productions {
		if p.LHS == b {
			if col.Add(state{Prod: idx, Dot: 0, Origin: k}) {
				grew = true
			}
		}
	}
	return grew
}

// complete advances every state in the origin column that was waiting
// on the just-completed production's left-hand side.
func (c *Chart) complete(col *iteratable.Set[state], completed state, completedProd grammar.Production) bool {
	grew := false
	origin := c.columns[completed.Origin]
	for _, ost := range origin.Values() {
		op := c.g.Productions[ost.Prod]
		if ost.Dot >= len(op.RHS) {
			continue
		}
		nt, ok := grammar.AsNonterminal(op.RHS[ost.Dot])
		if !ok || nt != completedProd.LHS {
			continue
		}
		if col.Add(state{Prod: ost.Prod, Dot: ost.Dot + 1, Origin: ost.Origin}) {
			grew = true
		}
	}
	return grew
}

// RecoverDerivation is not implemented. The source this parser is
// modeled on carries a disabled draft of a derivation-path extractor
// over the completed chart, with unspecified semantics for ambiguous
// grammars; this hook documents that gap rather than guessing at one.
func (c *Chart) RecoverDerivation() ([]grammar.Production, bool) {
	return nil, false
}
