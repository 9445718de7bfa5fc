package grammar

import (
	"fmt"
	"unicode"
)

// Symbol is a grammar symbol: either a Nonterminal or a Terminal.
//
// Equality and ordering are structural: two Symbol values compare equal
// iff their concrete type and fields match.
type Symbol interface {
	fmt.Stringer
	symbol()
}

// Nonterminal is a variable of a grammar. Name is the base identifier;
// Subscript distinguishes fresh variables introduced by a transformation
// (e.g. the S' introduced when the start symbol is nullable and also
// appears on some right-hand side). A Subscript of 0 renders bare.
type Nonterminal struct {
	Name      string
	Subscript int
}

func (Nonterminal) symbol() {}

// String renders the nonterminal as the grammar-text token that parses
// back to it: a bare letter when Name is a single uppercase letter and
// Subscript is 0, and the bracketed `<name>` / `<nameN>` form otherwise
// (used for every synthesized symbol: fresh starts, CNF tail variables,
// isolated-terminal variables). A Name that ends in a digit or contains
// an angle bracket, as CNF variables such as `<0>` can, does not parse
// back to the same Nonterminal.
func (n Nonterminal) String() string {
	if n.Subscript == 0 && isBareNonterminalName(n.Name) {
		return n.Name
	}
	if n.Subscript == 0 {
		return fmt.Sprintf("<%s>", n.Name)
	}
	return fmt.Sprintf("<%s%d>", n.Name, n.Subscript)
}

func isBareNonterminalName(name string) bool {
	r := []rune(name)
	return len(r) == 1 && unicode.IsUpper(r[0]) && unicode.IsLetter(r[0])
}

// Bumped returns a Nonterminal with the same Name and the given
// subscript.
func (n Nonterminal) Bumped(subscript int) Nonterminal {
	return Nonterminal{Name: n.Name, Subscript: subscript}
}

// Terminal is an atomic symbol of the language, a single character.
type Terminal struct {
	Char rune
}

func (Terminal) symbol() {}

func (t Terminal) String() string {
	return string(t.Char)
}

// IsTerminal reports whether s is a Terminal.
func IsTerminal(s Symbol) bool {
	_, ok := s.(Terminal)
	return ok
}

// IsNonterminal reports whether s is a Nonterminal.
func IsNonterminal(s Symbol) bool {
	_, ok := s.(Nonterminal)
	return ok
}

// AsNonterminal type-asserts s to a Nonterminal, returning ok=false if s
// is a Terminal.
func AsNonterminal(s Symbol) (Nonterminal, bool) {
	n, ok := s.(Nonterminal)
	return n, ok
}

// symbolLess orders symbols deterministically by their textual
// rendering. This is sufficient for every grammar built through Parse,
// since its tokenizer guarantees terminals and nonterminals render to
// disjoint sets of strings (a bracketed or uppercase-led identifier
// cannot collide with a single non-uppercase character).
func symbolLess(a, b Symbol) bool {
	return a.String() < b.String()
}

func symbolsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func symbolsLess(a, b []Symbol) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return symbolLess(a[i], b[i])
	}
	return len(a) < len(b)
}

// RenderSymbols concatenates the textual rendering of a right-hand side,
// exactly as the grammar-text format expects (no separators).
func RenderSymbols(syms []Symbol) string {
	s := ""
	for _, sym := range syms {
		s += sym.String()
	}
	return s
}
