package normalize

import "github.com/kboyd/cflab/grammar"

// Simplify composes unreachable-pruning, useless-pruning, unit-removal
// and epsilon-removal, applied in that execution order (pruning first,
// epsilon-removal last). Running epsilon-removal last matters: it is the
// stage that may introduce a fresh start symbol S' with a unit
// production `S' -> S`, and that production must survive untouched, not
// get flattened by a unit-removal pass that happens to run afterwards.
func Simplify(g *grammar.CFG) *grammar.CFG {
	g = PruneUnreachable(g)
	g = PruneUseless(g)
	g = RemoveUnit(g)
	g = RemoveEpsilon(g)
	return g
}

// SimplifyReverse applies epsilon-removal and unit-removal before
// pruning, the textual left-to-right reading of the transform chain.
// It exists for diagnostic parity: comparing its output against
// Simplify's shows whether a particular grammar's useless/unreachable
// symbols interact with its epsilon- and unit-productions, or are
// independent of them.
func SimplifyReverse(g *grammar.CFG) *grammar.CFG {
	g = RemoveEpsilon(g)
	g = RemoveUnit(g)
	g = PruneUseless(g)
	g = PruneUnreachable(g)
	return g
}
