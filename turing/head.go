package turing

// Head reads, writes and moves over a Tape one cell at a time.
// The tape grows by one blank cell whenever the head steps past either end,
// so the index always points at an existing cell.
type Head struct {
	tape  *Tape
	index int
}

func NewHead(tape *Tape) *Head {
	return NewHeadAt(tape, 0)
}

func NewHeadAt(tape *Tape, index int) *Head {
	if tape.Len() == 0 {
		tape.Append(Blank)
	}
	index = max(index, 0)
	for index >= tape.Len() {
		tape.Append(Blank)
	}
	return &Head{
		tape:  tape,
		index: index,
	}
}

func (h *Head) MoveRight() {
	if h.index == h.tape.Len()-1 {
		h.tape.Append(Blank)
	}
	h.index++
}

func (h *Head) MoveLeft() {
	if h.index == 0 {
		// the new cell takes index 0, the head stays on it
		h.tape.Prepend(Blank)
		return
	}
	h.index--
}

func (h *Head) Read() rune {
	return h.tape.At(h.index)
}

func (h *Head) Write(symbol rune) {
	h.tape.Set(h.index, symbol)
}

func (h *Head) Position() int {
	return h.index
}

func (h *Head) Tape() *Tape {
	return h.tape
}
