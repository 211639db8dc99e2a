package turing

import "strings"

// State is the control state label of a running machine.
type State struct {
	label string
}

func NewState(label string) *State {
	return &State{
		label: label,
	}
}

func (s *State) Label() string {
	return s.label
}

func (s *State) Transition(next NextState) {
	if next.Keep {
		return
	}
	s.label = next.Label
}

func (s *State) IsHalting() bool {
	return IsHalting(s.label)
}

func IsHalting(label string) bool {
	return strings.HasPrefix(label, HaltPrefix)
}
