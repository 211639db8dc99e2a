package turing

import (
	"errors"
	"testing"
)

func mustInstruction(t *testing.T, fields ...string) Instruction {
	t.Helper()
	instruction, err := NewInstruction(fields)
	if err != nil {
		t.Fatal(err)
	}
	return instruction
}

func TestNewInstruction(t *testing.T) {
	i := mustInstruction(t, "*", "*", "*")
	if i.IsWrite() || i.IsMoveLeft() || i.IsMoveRight() || !i.Next.Keep {
		t.Fatalf("got %+v", i)
	}

	i = mustInstruction(t, "_", "l", "q1")
	if !i.IsWrite() || !i.IsErase() || !i.IsMoveLeft() || i.Next.Label != "q1" {
		t.Fatalf("got %+v", i)
	}

	i = mustInstruction(t, "x", "r", "halt")
	if !i.IsWrite() || i.IsErase() || i.Write.Symbol != 'x' || !i.IsMoveRight() {
		t.Fatalf("got %+v", i)
	}

	// unknown directions do not move
	i = mustInstruction(t, "x", "up", "1")
	if i.Move != MoveNone {
		t.Fatalf("got %v", i.Move)
	}

	if got := mustInstruction(t, "_", "l", "*").String(); got != "_ l *" {
		t.Fatalf("got %q", got)
	}
}

func TestNewInstructionInvalid(t *testing.T) {
	_, err := NewInstruction([]string{"a", "r"})
	if !errors.Is(err, ErrInvalidInstruction) {
		t.Fatalf("got %v", err)
	}
	_, err = NewInstruction([]string{"ab", "r", "1"})
	if !errors.Is(err, ErrInvalidInstruction) {
		t.Fatalf("got %v", err)
	}
	var invalid *InvalidInstructionError
	if !errors.As(err, &invalid) || len(invalid.Fields) != 3 {
		t.Fatalf("got %v", err)
	}
}

func TestExecuteWrite(t *testing.T) {
	for _, move := range []string{"*", "r", "l"} {
		for _, c := range []struct {
			write    string
			expected rune
		}{
			{"*", 'a'},
			{"_", Blank},
			{"z", 'z'},
		} {
			tape := NewTape([]rune("a"))
			head := NewHead(tape)
			state := NewState("0")
			mustInstruction(t, c.write, move, "*").Execute(head, state)

			// the written cell is the one the head started on
			written := 0
			if move == "l" {
				written = 1
			}
			if got := tape.At(written); got != c.expected {
				t.Fatalf("write %s move %s: got %q", c.write, move, got)
			}
		}
	}
}

func TestExecuteMove(t *testing.T) {
	tape := NewTape([]rune("abc"))
	head := NewHeadAt(tape, 1)
	state := NewState("0")

	mustInstruction(t, "*", "*", "*").Execute(head, state)
	if head.Position() != 1 {
		t.Fatalf("got %d", head.Position())
	}
	mustInstruction(t, "*", "r", "*").Execute(head, state)
	if head.Position() != 2 {
		t.Fatalf("got %d", head.Position())
	}
	mustInstruction(t, "*", "l", "*").Execute(head, state)
	mustInstruction(t, "*", "l", "*").Execute(head, state)
	if head.Position() != 0 || tape.String() != "abc" {
		t.Fatalf("got %d %q", head.Position(), tape.String())
	}
}

func TestExecuteTransition(t *testing.T) {
	head := NewHead(NewTape(nil))
	state := NewState("0")

	mustInstruction(t, "*", "*", "*").Execute(head, state)
	if state.Label() != "0" {
		t.Fatalf("got %s", state.Label())
	}
	mustInstruction(t, "*", "*", "Q").Execute(head, state)
	if state.Label() != "Q" {
		t.Fatalf("got %s", state.Label())
	}
	mustInstruction(t, "*", "*", "halt-reject").Execute(head, state)
	if !state.IsHalting() {
		t.Fatal()
	}
}
