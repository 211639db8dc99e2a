package turing

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	markNoChange  = "*"
	markErase     = "_"
	markMoveRight = "r"
	markMoveLeft  = "l"
	markNoMove    = "*"
)

// WriteAction is the write field of an instruction.
type WriteAction struct {
	Keep   bool
	Erase  bool
	Symbol rune
}

func (w WriteAction) String() string {
	switch {
	case w.Keep:
		return markNoChange
	case w.Erase:
		return markErase
	}
	return string(w.Symbol)
}

// Move is the direction field of an instruction.
// It shares the '*' spelling with WriteAction's no change marker but is decoded independently.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return markMoveLeft
	case MoveRight:
		return markMoveRight
	}
	return markNoMove
}

// NextState is the new-state field of an instruction.
type NextState struct {
	Keep  bool
	Label string
}

func (n NextState) String() string {
	if n.Keep {
		return markNoChange
	}
	return n.Label
}

type Instruction struct {
	Write WriteAction
	Move  Move
	Next  NextState
}

// NewInstruction decodes the write, direction and new-state fields.
func NewInstruction(fields []string) (ret Instruction, err error) {
	if len(fields) != 3 {
		return ret, &InvalidInstructionError{
			Fields: fields,
			Reason: fmt.Sprintf("expecting 3 fields, got %d", len(fields)),
		}
	}

	switch write := fields[0]; write {
	case markNoChange:
		ret.Write.Keep = true
	case markErase:
		ret.Write.Erase = true
	default:
		if utf8.RuneCountInString(write) != 1 {
			return ret, &InvalidInstructionError{
				Fields: fields,
				Reason: fmt.Sprintf("new symbol must be a single character, got %q", write),
			}
		}
		ret.Write.Symbol, _ = utf8.DecodeRuneInString(write)
	}

	switch fields[1] {
	case markMoveRight:
		ret.Move = MoveRight
	case markMoveLeft:
		ret.Move = MoveLeft
	default:
		ret.Move = MoveNone
	}

	if fields[2] == markNoChange {
		ret.Next.Keep = true
	} else {
		ret.Next.Label = fields[2]
	}

	return ret, nil
}

func (i Instruction) IsWrite() bool {
	return !i.Write.Keep
}

func (i Instruction) IsErase() bool {
	return i.Write.Erase
}

func (i Instruction) IsMoveRight() bool {
	return i.Move == MoveRight
}

func (i Instruction) IsMoveLeft() bool {
	return i.Move == MoveLeft
}

// Execute writes, then moves, then transitions, in that order.
func (i Instruction) Execute(head *Head, state *State) {
	if i.IsWrite() {
		if i.IsErase() {
			head.Write(Blank)
		} else {
			head.Write(i.Write.Symbol)
		}
	}

	if i.IsMoveRight() {
		head.MoveRight()
	} else if i.IsMoveLeft() {
		head.MoveLeft()
	}

	state.Transition(i.Next)
}

func (i Instruction) String() string {
	return strings.Join([]string{
		i.Write.String(),
		i.Move.String(),
		i.Next.String(),
	}, " ")
}
