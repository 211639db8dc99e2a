package turing

const (
	// Blank is the empty cell as stored on the tape.
	Blank = ' '
	// BlankInProgram is how program text spells a blank cell.
	BlankInProgram = "_"
	// WildcardInProgram matches any symbol or state, tried after exact keys.
	WildcardInProgram = "*"
	// HaltPrefix marks halting state labels.
	HaltPrefix = "halt"

	headMarker = '*'
)

// Escape converts a tape symbol to its program text key.
func Escape(symbol rune) string {
	if symbol == Blank {
		return BlankInProgram
	}
	return string(symbol)
}

// ParseInput turns an initial input string into tape cells.
// An underscore denotes a blank cell. The first '*' marks the cell the head
// starts on and is not written to the tape.
func ParseInput(input string) (cells []rune, position int) {
	marked := false
	for _, r := range input {
		switch {
		case r == headMarker && !marked:
			position = len(cells)
			marked = true
		case string(r) == BlankInProgram:
			cells = append(cells, Blank)
		default:
			cells = append(cells, r)
		}
	}
	if len(cells) == 0 {
		cells = []rune{Blank}
	}
	if position >= len(cells) {
		cells = append(cells, Blank)
	}
	return
}
