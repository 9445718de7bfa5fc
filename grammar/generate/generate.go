package generate

import (
	"github.com/kboyd/cflab/grammar"
	"github.com/kboyd/cflab/grammar/iteratable"
	"github.com/kboyd/cflab/grammar/normalize"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cflab.generate'.
func tracer() tracing.Trace {
	return tracing.Select("cflab.generate")
}

// Direction selects which Nonterminal position a partial sentential form
// is expanded at.
type Direction int

const (
	Leftmost Direction = iota
	Rightmost
)

// Config bounds a generation run. No defaults are filled in: a zero
// Config has Max 0, so only the empty string can be generated. Use
// DefaultConfig for Min 0 and Max 8.
type Config struct {
	Min       int
	Max       int
	Direction Direction
	Dedup     bool
}

// DefaultConfig returns the generator's documented defaults.
func DefaultConfig() Config {
	return Config{Min: 0, Max: 8, Direction: Leftmost}
}

// Generate enumerates terminal strings derivable from g's start symbol
// within [cfg.Min, cfg.Max] symbols, expanding at the leftmost or
// rightmost remaining Nonterminal according to cfg.Direction. The input
// grammar is simplified first, matching the terminating, ε-free
// production set the underlying fixed-point expansion assumes.
//
// Yield order is unspecified; with Dedup unset every derivation that
// terminates within the bound contributes an entry, duplicates included.
func Generate(g *grammar.CFG, cfg Config) []string {
	g = normalize.Simplify(g)

	rules := map[grammar.Nonterminal][][]grammar.Symbol{}
	for _, p := range g.Productions {
		rules[p.LHS] = append(rules[p.LHS], p.RHS)
	}

	visited := iteratable.New[string]()
	var queue [][]grammar.Symbol
	enqueue := func(form []grammar.Symbol) {
		if len(form) > cfg.Max {
			return
		}
		key := grammar.RenderSymbols(form)
		if !allTerminal(form) {
			if visited.Contains(key) {
				return
			}
			visited.Add(key)
		}
		queue = append(queue, form)
		tracer().Debugf("enqueued sentential form %q", key)
	}

	for _, rhs := range rules[g.Start] {
		enqueue(rhs)
	}

	var results []string
	for len(queue) > 0 {
		form := queue[0]
		queue = queue[1:]

		if allTerminal(form) {
			if len(form) >= cfg.Min {
				results = append(results, grammar.RenderSymbols(form))
				tracer().Debugf("yielded %q", grammar.RenderSymbols(form))
			}
			continue
		}
		if len(form) > cfg.Max {
			continue
		}
		pos := nonterminalPosition(form, cfg.Direction)
		nt := form[pos].(grammar.Nonterminal)
		for _, rhs := range rules[nt] {
			next := make([]grammar.Symbol, 0, len(form)-1+len(rhs))
			next = append(next, form[:pos]...)
			next = append(next, rhs...)
			next = append(next, form[pos+1:]...)
			enqueue(next)
		}
	}

	if cfg.Dedup {
		results = dedupe(results)
	}
	return results
}

func allTerminal(form []grammar.Symbol) bool {
	for _, s := range form {
		if grammar.IsNonterminal(s) {
			return false
		}
	}
	return true
}

func nonterminalPosition(form []grammar.Symbol, dir Direction) int {
	if dir == Rightmost {
		for i := len(form) - 1; i >= 0; i-- {
			if grammar.IsNonterminal(form[i]) {
				return i
			}
		}
		return -1
	}
	for i, s := range form {
		if grammar.IsNonterminal(s) {
			return i
		}
	}
	return -1
}

func dedupe(strs []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(strs))
	for _, s := range strs {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
