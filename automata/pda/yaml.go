package pda

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlRule mirrors the serialized rulebook entry shape:
// {state, character?, translated?, next_state, pop_character?,
// push_characters}. character/translated/pop_character are strings in
// the wire format so a missing key decodes to a nil pointer rather than
// a zero rune, preserving the epsilon/no-pop-condition distinction.
type yamlRule struct {
	State          uint32   `yaml:"state"`
	Character      *string  `yaml:"character"`
	Translated     *string  `yaml:"translated"`
	NextState      uint32   `yaml:"next_state"`
	PopCharacter   *string  `yaml:"pop_character"`
	PushCharacters []string `yaml:"push_characters"`
}

type yamlMachine struct {
	StartState         uint32     `yaml:"start_state"`
	BottomCharacter    string     `yaml:"bottom_character"`
	AcceptStates       []uint32   `yaml:"accept_states"`
	AcceptByEmptyStack bool       `yaml:"accept_by_empty_stack"`
	Rulebook           []yamlRule `yaml:"rulebook"`
}

// Load decodes a Machine from a DPDA/DPDT YAML rulebook.
func Load(r io.Reader) (*Machine, error) {
	var ym yamlMachine
	if err := yaml.NewDecoder(r).Decode(&ym); err != nil {
		return nil, fmt.Errorf("pda: decoding rulebook: %w", err)
	}
	bottom, err := singleRune(ym.BottomCharacter)
	if err != nil {
		return nil, fmt.Errorf("pda: bottom_character: %w", err)
	}

	m := &Machine{
		Start:              ym.StartState,
		Bottom:             bottom,
		AcceptStates:       ym.AcceptStates,
		AcceptByEmptyStack: ym.AcceptByEmptyStack,
	}
	for _, yr := range ym.Rulebook {
		rule := Rule{State: yr.State, NextState: yr.NextState, Translated: yr.Translated}
		if yr.Character != nil {
			c, err := singleRune(*yr.Character)
			if err != nil {
				return nil, fmt.Errorf("pda: rule character: %w", err)
			}
			rule.Character = &c
		}
		if yr.PopCharacter != nil {
			c, err := singleRune(*yr.PopCharacter)
			if err != nil {
				return nil, fmt.Errorf("pda: rule pop_character: %w", err)
			}
			rule.PopCharacter = &c
		}
		for _, p := range yr.PushCharacters {
			c, err := singleRune(p)
			if err != nil {
				return nil, fmt.Errorf("pda: rule push_characters: %w", err)
			}
			rule.PushCharacters = append(rule.PushCharacters, c)
		}
		m.Rulebook = append(m.Rulebook, rule)
	}
	return m, nil
}

func singleRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %q", s)
	}
	return runes[0], nil
}
