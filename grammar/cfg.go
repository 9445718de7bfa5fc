package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
)

func productionComparator(a, b interface{}) int {
	pa, pb := a.(Production), b.(Production)
	switch {
	case pa.Equal(pb):
		return 0
	case pa.Less(pb):
		return -1
	default:
		return 1
	}
}

// CFG is a context-free grammar: a start symbol together with a
// deduplicated, deterministically ordered set of productions
// (lexicographic by left-hand side, then right-hand side).
type CFG struct {
	Start       Nonterminal
	Productions []Production
}

// New builds a CFG from a start symbol and a (possibly unsorted,
// possibly duplicate-containing) slice of productions, normalizing them
// into the grammar's canonical order.
func New(start Nonterminal, productions []Production) *CFG {
	set := treeset.NewWith(productionComparator)
	for _, p := range productions {
		set.Add(NewProduction(p.LHS, p.RHS))
	}
	ordered := make([]Production, 0, set.Size())
	for _, v := range set.Values() {
		ordered = append(ordered, v.(Production))
	}
	return &CFG{Start: start, Productions: ordered}
}

// Rules returns every production whose left-hand side is lhs, in
// grammar order.
func (g *CFG) Rules(lhs Nonterminal) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == lhs {
			out = append(out, p)
		}
	}
	return out
}

// Variables returns V(G): every nonterminal appearing as a left-hand
// side, union every nonterminal appearing on any right-hand side.
func (g *CFG) Variables() []Nonterminal {
	set := treeset.NewWith(func(a, b interface{}) int {
		na, nb := a.(Nonterminal), b.(Nonterminal)
		if na == nb {
			return 0
		}
		if symbolLess(na, nb) {
			return -1
		}
		return 1
	})
	for _, p := range g.Productions {
		set.Add(p.LHS)
		for _, s := range p.RHS {
			if n, ok := AsNonterminal(s); ok {
				set.Add(n)
			}
		}
	}
	out := make([]Nonterminal, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Nonterminal))
	}
	return out
}

// Terminals returns Sigma(G): every terminal appearing on any
// right-hand side.
func (g *CFG) Terminals() []Terminal {
	set := treeset.NewWith(func(a, b interface{}) int {
		ta, tb := a.(Terminal), b.(Terminal)
		if ta == tb {
			return 0
		}
		if ta.Char < tb.Char {
			return -1
		}
		return 1
	})
	for _, p := range g.Productions {
		for _, s := range p.RHS {
			if t, ok := s.(Terminal); ok {
				set.Add(t)
			}
		}
	}
	out := make([]Terminal, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Terminal))
	}
	return out
}

// FreshVariable returns a Nonterminal with the same Name as base, whose
// Subscript is the lowest integer greater than base.Subscript not already
// used by a variable with that Name in g. Subscript bumping always checks against
// the current variable set, never against a hardcoded counter.
func (g *CFG) FreshVariable(base Nonterminal) Nonterminal {
	used := map[int]bool{}
	for _, v := range g.Variables() {
		if v.Name == base.Name {
			used[v.Subscript] = true
		}
	}
	for s := base.Subscript + 1; ; s++ {
		if !used[s] {
			return base.Bumped(s)
		}
	}
}

// StartInRHS reports whether the start symbol appears on the right-hand
// side of any production.
func (g *CFG) StartInRHS() bool {
	for _, p := range g.Productions {
		for _, s := range p.RHS {
			if n, ok := AsNonterminal(s); ok && n == g.Start {
				return true
			}
		}
	}
	return false
}

// Equal reports whether g and other have the same start symbol and
// identical (already-ordered) production sets.
func (g *CFG) Equal(other *CFG) bool {
	if other == nil || g.Start != other.Start || len(g.Productions) != len(other.Productions) {
		return false
	}
	for i := range g.Productions {
		if !g.Productions[i].Equal(other.Productions[i]) {
			return false
		}
	}
	return true
}
