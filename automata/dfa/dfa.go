package dfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// SinkState is the reserved name denoting the DFA's implicit error/sink
// state: once entered, no further transition is attempted and the
// state never accepts.
const SinkState = "-"

// DFA is a deterministic finite automaton loaded from a pipe-separated
// table.
type DFA struct {
	Alphabet []rune
	Start    string
	Accept   map[string]bool
	jump     map[string]map[rune]string
	states   map[string]bool
}

// Parse reads a pipe-separated DFA table from r. The first non-blank,
// non-comment ('#') line is the alphabet header (a leading empty cell
// followed by one character per column); every following line is a
// state row: a header cell (optionally prefixed '>' for start and/or
// '*' for accepting) followed by one target-state name per alphabet
// character.
func Parse(r io.Reader) (*DFA, error) {
	d := &DFA{
		Accept: map[string]bool{},
		jump:   map[string]map[rune]string{},
		states: map[string]bool{},
	}
	scanner := bufio.NewScanner(r)
	haveAlphabet := false
	haveStart := false

	for scanner.Scan() {
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		cells := splitRow(row)
		if !haveAlphabet {
			for _, c := range cells[1:] {
				r := []rune(c)
				if len(r) != 1 {
					continue
				}
				d.Alphabet = append(d.Alphabet, r[0])
			}
			haveAlphabet = true
			continue
		}

		name := cells[0]
		isStart := strings.HasPrefix(name, ">")
		if isStart {
			name = strings.TrimPrefix(name, ">")
		}
		isAccept := strings.HasPrefix(name, "*")
		if isAccept {
			name = strings.TrimPrefix(name, "*")
		}
		if name == "" {
			return nil, fmt.Errorf("%w: malformed state header %q", ErrMalformedTable, cells[0])
		}
		if isStart {
			if haveStart {
				return nil, ErrDuplicateStart
			}
			d.Start = name
			haveStart = true
		}
		if isAccept {
			d.Accept[name] = true
		}
		d.states[name] = true

		targets := cells[1:]
		if len(targets) != len(d.Alphabet) {
			return nil, fmt.Errorf("%w: state %q has %d targets, want %d", ErrMalformedTable, name, len(targets), len(d.Alphabet))
		}
		transitions := map[rune]string{}
		for i, target := range targets {
			transitions[d.Alphabet[i]] = target
		}
		d.jump[name] = transitions
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrNoStartState
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func (d *DFA) validate() error {
	for name, row := range d.jump {
		for _, c := range d.Alphabet {
			target := row[c]
			if target != SinkState && !d.states[target] {
				return fmt.Errorf("%w: state %q transitions to undeclared state %q", ErrUnknownState, name, target)
			}
		}
	}
	reachable := map[string]bool{d.Start: true}
	queue := []string{d.Start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, c := range d.Alphabet {
			next := d.jump[s][c]
			if next == SinkState || reachable[next] {
				continue
			}
			reachable[next] = true
			queue = append(queue, next)
		}
	}
	for name := range d.states {
		if !reachable[name] {
			return fmt.Errorf("%w: state %q", ErrUnreachableState, name)
		}
	}
	return nil
}

// Accepts runs input against d, returning an AlphabetViolation error if
// input contains a character outside d.Alphabet.
func (d *DFA) Accepts(input string) (bool, error) {
	diag := d.Diagnose(input)
	if diag.Err != nil {
		return false, diag.Err
	}
	return diag.Accepted, nil
}

// Diagnosis reports, in the style of the original per-line batch
// checker, why an input was accepted or rejected.
type Diagnosis struct {
	Input      string
	Accepted   bool
	Reason     string
	Err        error
	FinalState string
}

// Diagnose runs input against d and reports a human-readable reason for
// the outcome: "symbol 'x' at index N not in the alphabet" / "DFA entered
// the error state at index N, unaccepted remainder ..." / "end of input
// but state ... is not accepting" ("OK" on acceptance).
func (d *DFA) Diagnose(input string) Diagnosis {
	state := d.Start
	for idx, c := range input {
		row, ok := d.jump[state]
		if !ok {
			break
		}
		target, ok := row[c]
		if !ok {
			return Diagnosis{
				Input:  input,
				Reason: fmt.Sprintf("symbol %q at index %d not in the alphabet", c, idx),
				Err:    fmt.Errorf("%w: %q at index %d", ErrAlphabetViolation, c, idx),
			}
		}
		state = target
		if state == SinkState {
			return Diagnosis{
				Input:      input,
				Reason:     fmt.Sprintf("DFA entered the error state at index %d, unaccepted remainder %q", idx, input[idx+1:]),
				FinalState: SinkState,
			}
		}
	}
	if d.Accept[state] {
		return Diagnosis{Input: input, Accepted: true, Reason: "OK", FinalState: state}
	}
	return Diagnosis{
		Input:      input,
		Reason:     fmt.Sprintf("end of input but state %q is not accepting", state),
		FinalState: state,
	}
}
