package dfa

import (
	"strings"
	"testing"
)

const binaryMultipleOfThree = `
 | 0 | 1
>*s0 | s0 | s1
s1 | s2 | s0
s2 | s1 | s2
`

func TestParseAndAcceptsBinaryMultipleOfThree(t *testing.T) {
	d, err := Parse(strings.NewReader(binaryMultipleOfThree))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"11", true},
		{"1001", true},
		{"10", false},
		{"1", false},
	}
	for _, c := range cases {
		got, err := d.Accepts(c.in)
		if err != nil {
			t.Fatalf("Accepts(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Accepts(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAcceptsAlphabetViolation(t *testing.T) {
	d, err := Parse(strings.NewReader(binaryMultipleOfThree))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := d.Accepts("012"); err == nil {
		t.Error("expected an alphabet-violation error for '2'")
	}
}

func TestParseDuplicateStart(t *testing.T) {
	text := `
 | 0 | 1
>s0 | s0 | s1
>s1 | s2 | s0
`
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected ErrDuplicateStart")
	}
}

func TestParseUnknownState(t *testing.T) {
	text := `
 | 0 | 1
>s0 | s0 | s9
`
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected ErrUnknownState for an undeclared target")
	}
}

func TestParseUnreachableState(t *testing.T) {
	text := `
 | 0 | 1
>*s0 | s0 | s0
s1 | s0 | s0
`
	if _, err := Parse(strings.NewReader(text)); err == nil {
		t.Error("expected ErrUnreachableState for s1")
	}
}

func TestDiagnoseSinkState(t *testing.T) {
	text := `
 | a
>*s0 | -
`
	d, err := Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	diag := d.Diagnose("a")
	if diag.Accepted {
		t.Error("expected rejection once the sink state is entered")
	}
	if diag.FinalState != SinkState {
		t.Errorf("expected FinalState %q, got %q", SinkState, diag.FinalState)
	}
}
