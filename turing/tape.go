package turing

import "slices"

// Tape is a sequence of cells that only grows, at either end.
type Tape struct {
	cells []rune
}

func NewTape(cells []rune) *Tape {
	cells = slices.Clone(cells)
	if len(cells) == 0 {
		cells = []rune{Blank}
	}
	return &Tape{
		cells: cells,
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) At(i int) rune {
	return t.cells[i]
}

func (t *Tape) Set(i int, symbol rune) {
	t.cells[i] = symbol
}

func (t *Tape) Append(symbol rune) {
	t.cells = append(t.cells, symbol)
}

func (t *Tape) Prepend(symbol rune) {
	t.cells = slices.Insert(t.cells, 0, symbol)
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []rune {
	return slices.Clone(t.cells)
}

func (t *Tape) String() string {
	return string(t.cells)
}
