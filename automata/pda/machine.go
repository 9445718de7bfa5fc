package pda

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cflab.pda'.
func tracer() tracing.Trace {
	return tracing.Select("cflab.pda")
}

// Rule is one line of a DPDA/DPDT rulebook: from State, optionally
// consuming Character (nil means an epsilon-move) and popping
// PopCharacter (nil matches only when the stack is empty), transition
// to NextState, pushing PushCharacters (first element ends up on top),
// and for a DPDT rule appending Translated to the running output.
type Rule struct {
	State          uint32
	Character      *rune
	Translated     *string
	NextState      uint32
	PopCharacter   *rune
	PushCharacters []rune
}

func (r Rule) appliesTo(cfg Configuration, character *rune) bool {
	return r.State == cfg.State && runeEqual(r.PopCharacter, cfg.top()) && runeEqual(r.Character, character)
}

// follow computes the configuration reached by applying r to cfg: pop
// the stack's top (a no-op if already empty), push PushCharacters so
// that its first element ends up on top, advance to NextState, and
// append any Translated text.
func (r Rule) follow(cfg Configuration) Configuration {
	stack := cfg.Stack
	if len(stack) > 0 {
		stack = stack[:len(stack)-1]
	}
	next := make([]rune, 0, len(stack)+len(r.PushCharacters))
	next = append(next, stack...)
	for i := len(r.PushCharacters) - 1; i >= 0; i-- {
		next = append(next, r.PushCharacters[i])
	}
	translated := cfg.Translated
	if r.Translated != nil {
		translated += *r.Translated
	}
	return Configuration{State: r.NextState, Stack: next, Translated: translated}
}

func runeEqual(a, b *rune) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Configuration is a DPDA/DPDT snapshot: current state, stack (last
// element on top), whether the machine is Stuck, and the output
// accumulated so far by any DPDT rules that fired.
type Configuration struct {
	State      uint32
	Stuck      bool
	Stack      []rune
	Translated string
}

func (cfg Configuration) top() *rune {
	if len(cfg.Stack) == 0 {
		return nil
	}
	c := cfg.Stack[len(cfg.Stack)-1]
	return &c
}

// topString renders cfg's stack top for tracing: the character, or an
// empty-stack marker.
func (cfg Configuration) topString() string {
	if t := cfg.top(); t != nil {
		return string(*t)
	}
	return "<empty>"
}

// Machine is a deterministic pushdown automaton (or transducer, if any
// rule carries Translated text).
type Machine struct {
	Start              uint32
	Bottom             rune
	AcceptStates       []uint32
	AcceptByEmptyStack bool
	Rulebook           []Rule
}

// Result is the outcome of running a Machine over an input string.
// Stuck is a field, not an error: it records that no rule applied to
// some prefix of the input, a recognizable rejection rather than a
// failure.
type Result struct {
	Accepted      bool
	Stuck         bool
	Translated    string
	Configuration Configuration
}

func (m *Machine) ruleFor(cfg Configuration, character *rune) (Rule, bool) {
	for _, r := range m.Rulebook {
		if r.appliesTo(cfg, character) {
			return r, true
		}
	}
	return Rule{}, false
}

// followFreeMoves repeatedly applies epsilon-moves until none applies.
func (m *Machine) followFreeMoves(cfg Configuration) Configuration {
	for {
		r, ok := m.ruleFor(cfg, nil)
		if !ok {
			return cfg
		}
		tracer().Debugf("epsilon-move: state %d, top %s -> state %d", cfg.State, cfg.topString(), r.NextState)
		cfg = r.follow(cfg)
	}
}

func (m *Machine) step(cfg Configuration, character rune) Configuration {
	current := m.followFreeMoves(cfg)
	if r, ok := m.ruleFor(current, &character); ok {
		tracer().Debugf("state %d reading %q, top %s -> state %d", current.State, character, current.topString(), r.NextState)
		return r.follow(current)
	}
	tracer().Debugf("state %d stuck reading %q, top %s", current.State, character, current.topString())
	return Configuration{State: current.State, Stuck: true, Stack: current.Stack, Translated: current.Translated}
}

// Run drives m over input one character at a time, settling epsilon-
// moves before and after every consumed character, and reports the
// final Result. Once Stuck, no further input is consumed.
func (m *Machine) Run(input string) Result {
	cfg := Configuration{State: m.Start, Stack: []rune{m.Bottom}}
	for _, c := range input {
		if cfg.Stuck {
			break
		}
		cfg = m.step(cfg, c)
	}
	if !cfg.Stuck {
		cfg = m.followFreeMoves(cfg)
	}
	tracer().Debugf("run ended: state %d, stuck %v, accepted %v", cfg.State, cfg.Stuck, m.accepting(cfg))
	return Result{Accepted: m.accepting(cfg), Stuck: cfg.Stuck, Translated: cfg.Translated, Configuration: cfg}
}

func (m *Machine) accepting(cfg Configuration) bool {
	if cfg.Stuck {
		return false
	}
	inAccept := false
	for _, s := range m.AcceptStates {
		if s == cfg.State {
			inAccept = true
			break
		}
	}
	if !inAccept {
		return false
	}
	if m.AcceptByEmptyStack {
		return len(cfg.Stack) == 0
	}
	return true
}
