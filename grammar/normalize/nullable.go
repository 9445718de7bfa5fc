package normalize

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("cflab.normalize")
}

// Nullable computes N(G): the smallest set of nonterminals containing
// every A with A -> epsilon, closed under "A -> X1...Xk with every Xi in
// N(G) already". Terminals are never nullable.
func Nullable(g *grammar.CFG) *iteratable.Set[grammar.Nonterminal] {
	set := iteratable.New[grammar.Nonterminal]()
	for _, p := range g.Productions {
		if p.IsEpsilon() {
			set.Add(p.LHS)
		}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			if set.Contains(p.LHS) || len(p.RHS) == 0 {
				continue
			}
			allNullable := true
			for _, s := range p.RHS {
				n, ok := grammar.AsNonterminal(s)
				if !ok || !set.Contains(n) {
					allNullable = false
					break
				}
			}
			if allNullable && set.Add(p.LHS) {
				changed = true
			}
		}
	}
	tracer().Debugf("nullable(G) = %v", set.Values())
	return set
}
