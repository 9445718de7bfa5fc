package grammar

import "strings"

// Render renders g back to the grammar-text format: the start symbol's
// rule first, remaining rules in the grammar's deterministic left-hand
// side order, alternatives for a shared left-hand side joined with
// " | " (already sorted, since g.Productions is kept in canonical
// order). Round-tripping Render through Parse reproduces an equal CFG
// for any grammar built by Parse; see Nonterminal.String for the
// synthesized names that do not parse back.
func (g *CFG) Render() string {
	type group struct {
		lhs  Nonterminal
		alts []string
	}
	var groups []group
	for _, p := range g.Productions {
		if len(groups) > 0 && groups[len(groups)-1].lhs == p.LHS {
			groups[len(groups)-1].alts = append(groups[len(groups)-1].alts, RenderSymbols(p.RHS))
			continue
		}
		groups = append(groups, group{lhs: p.LHS, alts: []string{RenderSymbols(p.RHS)}})
	}
	for i, grp := range groups {
		if grp.lhs == g.Start {
			ordered := make([]group, 0, len(groups))
			ordered = append(ordered, grp)
			ordered = append(ordered, groups[:i]...)
			ordered = append(ordered, groups[i+1:]...)
			groups = ordered
			break
		}
	}
	lines := make([]string, 0, len(groups))
	for _, grp := range groups {
		lines = append(lines, grp.lhs.String()+" -> "+strings.Join(grp.alts, " | "))
	}
	return strings.Join(lines, "\n")
}

// String is an alias for Render, letting a *CFG satisfy fmt.Stringer.
func (g *CFG) String() string {
	return g.Render()
}
