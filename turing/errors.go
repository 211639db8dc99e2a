package turing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch            = errors.New("no match")
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrStopped may be returned by a Pause to end a run early.
	ErrStopped = errors.New("stopped")
	// ErrMachineUsed is reported when a machine is run a second time.
	ErrMachineUsed = errors.New("machine already used")
)

type NoMatchError struct {
	State  string
	Symbol string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("match not found in state '%s' for symbol '%s'", e.State, e.Symbol)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

type InvalidInstructionError struct {
	Line   int
	Text   string
	Fields []string
	Reason string
}

func (e *InvalidInstructionError) Error() string {
	var b strings.Builder
	b.WriteString("invalid instruction")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Text != "" {
		fmt.Fprintf(&b, " %q", e.Text)
	} else {
		fmt.Fprintf(&b, " %q", e.Fields)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *InvalidInstructionError) Is(target error) bool {
	return target == ErrInvalidInstruction
}
