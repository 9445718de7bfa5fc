package normalize

import "github.com/kboyd/cflab/grammar"

// Defect names the first stage at which a grammar deviates from a
// corresponding normalized form, as reported by IsNormalForm.
type Defect string

// The five defects IsNormalForm checks for, in the order they are
// checked.
const (
	DefectStartInRHS  Defect = "start-symbol-in-rhs"
	DefectHasEpsilon  Defect = "has-epsilon-productions"
	DefectHasUnit     Defect = "has-unit-productions"
	DefectUseless     Defect = "has-useless-symbols"
	DefectUnreachable Defect = "has-unreachable-symbols"
)

// IsNormalForm reports the first way in which g differs from a
// (start-RHS)-cleaned, epsilon-cleaned, unit-cleaned, useless-pruned, or
// unreachable-pruned version of itself. It returns nil if g already
// equals every one of those cleaned versions, i.e. is already in the
// intersection normal form coursework validation checks for.
func IsNormalForm(g *grammar.CFG) *Defect {
	stages := []struct {
		defect Defect
		clean  *grammar.CFG
	}{
		{DefectStartInRHS, RemoveStartFromRHS(g)},
		{DefectHasEpsilon, RemoveEpsilon(g)},
		{DefectHasUnit, RemoveUnit(g)},
		{DefectUseless, PruneUseless(g)},
		{DefectUnreachable, PruneUnreachable(g)},
	}
	for _, stage := range stages {
		if !g.Equal(stage.clean) {
			d := stage.defect
			return &d
		}
	}
	return nil
}
