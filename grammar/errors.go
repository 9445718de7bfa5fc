package grammar

import "errors"

// ErrEmptyGrammar is returned when a textual grammar has no rules at
// all.
var ErrEmptyGrammar = errors.New("grammar: empty grammar")

// ErrMalformedGrammar is the sentinel wrapped by every parse-time
// syntax error: missing "->" separator, an empty or terminal
// left-hand side, mismatched angle brackets on either side of a rule.
var ErrMalformedGrammar = errors.New("grammar: malformed rule")
