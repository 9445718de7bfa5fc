package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse parses the grammar-text format described in the project's
// grammar model: each line is empty, a comment (leading '#'), or a rule
// `L -> a1 | a2 | ... | an`. The first rule's left-hand side becomes the
// grammar's start symbol. Parsing fails with ErrMalformedGrammar for any
// syntax violation and with ErrEmptyGrammar if the text contains no
// rules at all.
func Parse(text string) (*CFG, error) {
	var start *Nonterminal
	var productions []Production

	for lineNo, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "->")
		if idx < 0 {
			return nil, fmt.Errorf("%w: line %d: no '->' separator in %q", ErrMalformedGrammar, lineNo+1, line)
		}
		lhs, err := parseLHSToken(line[:idx])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedGrammar, lineNo+1, err)
		}
		if start == nil {
			s := lhs
			start = &s
		}
		for _, alt := range strings.Split(line[idx+2:], "|") {
			syms, err := tokenizeAlternative(strings.TrimSpace(alt))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedGrammar, lineNo+1, err)
			}
			productions = append(productions, NewProduction(lhs, syms))
		}
	}
	if start == nil {
		return nil, ErrEmptyGrammar
	}
	return New(*start, productions), nil
}

// parseLHSToken parses the text preceding "->" as a single Nonterminal
// token: a bare uppercase letter, or an identifier wrapped in angle
// brackets with an optional trailing numeric subscript.
func parseLHSToken(text string) (Nonterminal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Nonterminal{}, fmt.Errorf("empty left-hand side")
	}
	if strings.HasPrefix(s, "<") {
		if !strings.HasSuffix(s, ">") {
			return Nonterminal{}, fmt.Errorf("mismatched angle brackets in left-hand side %q", s)
		}
		inner := s[1 : len(s)-1]
		if strings.ContainsAny(inner, "<>") {
			return Nonterminal{}, fmt.Errorf("mismatched angle brackets in left-hand side %q", s)
		}
		return parseBracketedNonterminal(inner)
	}
	if strings.ContainsAny(s, "<>") {
		return Nonterminal{}, fmt.Errorf("mismatched angle brackets in left-hand side %q", s)
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return Nonterminal{}, fmt.Errorf("left-hand side %q is not a single nonterminal token", s)
	}
	if !isBareNonterminalRune(runes[0]) {
		return Nonterminal{}, fmt.Errorf("left-hand side %q is a terminal", s)
	}
	return Nonterminal{Name: string(runes[0])}, nil
}

func isBareNonterminalRune(r rune) bool {
	return unicode.IsUpper(r) && unicode.IsLetter(r)
}

// parseBracketedNonterminal parses the text inside "<...>": a name
// followed by an optional trailing run of decimal digits, the latter
// becoming the subscript.
func parseBracketedNonterminal(inner string) (Nonterminal, error) {
	j := len(inner)
	for j > 0 && inner[j-1] >= '0' && inner[j-1] <= '9' {
		j--
	}
	name := inner[:j]
	if name == "" {
		return Nonterminal{}, fmt.Errorf("empty nonterminal name in <%s>", inner)
	}
	subscript := 0
	if j < len(inner) {
		n, err := strconv.Atoi(inner[j:])
		if err != nil {
			return Nonterminal{}, fmt.Errorf("bad subscript in <%s>", inner)
		}
		subscript = n
	}
	return Nonterminal{Name: name, Subscript: subscript}, nil
}

// tokenizeAlternative scans a right-hand-side alternative (symbols
// concatenated with no separators) into a Symbol slice. An empty
// alternative denotes an epsilon-production.
func tokenizeAlternative(alt string) ([]Symbol, error) {
	runes := []rune(alt)
	var syms []Symbol
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '<':
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			if j >= len(runes) {
				return nil, fmt.Errorf("unmatched '<' in %q", alt)
			}
			nt, err := parseBracketedNonterminal(string(runes[i+1 : j]))
			if err != nil {
				return nil, err
			}
			syms = append(syms, nt)
			i = j + 1
		case r == '>':
			return nil, fmt.Errorf("unmatched '>' in %q", alt)
		case isBareNonterminalRune(r):
			syms = append(syms, Nonterminal{Name: string(r)})
			i++
		default:
			syms = append(syms, Terminal{Char: r})
			i++
		}
	}
	return syms, nil
}
