package dfa

import "errors"

var (
	// ErrDuplicateStart is returned when more than one state row is
	// prefixed '>'.
	ErrDuplicateStart = errors.New("dfa: duplicate start state")
	// ErrNoStartState is returned when no state row is prefixed '>'.
	ErrNoStartState = errors.New("dfa: no start state given")
	// ErrMalformedTable is returned for a row that cannot be parsed: a
	// state row with an empty name, or one whose number of target cells
	// differs from the size of the alphabet.
	ErrMalformedTable = errors.New("dfa: malformed table")
	// ErrUnknownState is returned when a jump cell names a state that
	// never appears as a row header.
	ErrUnknownState = errors.New("dfa: unknown state")
	// ErrUnreachableState is returned by Parse when a declared state
	// cannot be reached from the start state.
	ErrUnreachableState = errors.New("dfa: unreachable state")
	// ErrAlphabetViolation is returned by Accepts/Diagnose when the
	// input contains a character absent from the DFA's alphabet.
	ErrAlphabetViolation = errors.New("dfa: character not in alphabet")
)
