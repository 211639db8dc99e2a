package turing

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

const (
	DefaultComment = ";"

	fieldSeparator   = " "
	breakpointMarker = "!"
)

// Row is one transition of a Table.
type Row struct {
	Instruction
	Breakpoint bool
	Line       int
	Text       string
}

// Table maps a state label and a symbol key to a Row.
// It is built once and never modified.
type Table struct {
	rows    map[string]map[string]Row
	skipped []int
}

type TableOption func(*tableConfig)

type tableConfig struct {
	comment string
}

func WithComment(delimiter string) TableOption {
	return func(config *tableConfig) {
		if delimiter != "" {
			config.comment = delimiter
		}
	}
}

// NewTable compiles program lines of the form
//
//	<state> <symbol> <new symbol> <direction> <new state> [!]
//
// Lines without exactly five fields (six with a trailing '!') are skipped.
func NewTable(lines []string, options ...TableOption) (*Table, error) {
	config := tableConfig{
		comment: DefaultComment,
	}
	for _, option := range options {
		option(&config)
	}

	table := &Table{
		rows: make(map[string]map[string]Row),
	}

	for i, line := range lines {
		lineNumber := i + 1
		text := strings.TrimRight(line, "\r")
		if idx := strings.Index(text, config.comment); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimRight(text, " \t")
		if text == "" {
			continue
		}

		fields := strings.Split(text, fieldSeparator)
		breakpoint := false
		if len(fields) == 6 && fields[5] == breakpointMarker {
			breakpoint = true
			fields = fields[:5]
		}
		if len(fields) != 5 || slices.Contains(fields, "") {
			table.skipped = append(table.skipped, lineNumber)
			continue
		}

		instruction, err := NewInstruction(fields[2:])
		if err != nil {
			var invalid *InvalidInstructionError
			if errors.As(err, &invalid) {
				invalid.Line = lineNumber
				invalid.Text = text
			}
			return nil, err
		}

		symbols, ok := table.rows[fields[0]]
		if !ok {
			symbols = make(map[string]Row)
			table.rows[fields[0]] = symbols
		}
		// later lines win
		symbols[fields[1]] = Row{
			Instruction: instruction,
			Breakpoint:  breakpoint,
			Line:        lineNumber,
			Text:        text,
		}
	}

	return table, nil
}

// Match finds the row for a state and a tape symbol.
// Exact keys are tried before wildcards: the exact state with the exact symbol,
// then with '*', then the '*' state with the exact symbol, then with '*'.
func (t *Table) Match(state string, symbol rune) (Row, error) {
	key := Escape(symbol)
	for _, label := range []string{state, WildcardInProgram} {
		symbols, ok := t.rows[label]
		if !ok {
			continue
		}
		if row, ok := symbols[key]; ok {
			return row, nil
		}
		if row, ok := symbols[WildcardInProgram]; ok {
			return row, nil
		}
	}
	return Row{}, &NoMatchError{
		State:  state,
		Symbol: key,
	}
}

func (t *Table) States() []string {
	return slices.Sorted(maps.Keys(t.rows))
}

// Len returns the number of distinct rows.
func (t *Table) Len() (n int) {
	for _, symbols := range t.rows {
		n += len(symbols)
	}
	return
}

// Skipped returns the line numbers of malformed lines.
func (t *Table) Skipped() []int {
	return slices.Clone(t.skipped)
}
