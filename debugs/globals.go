package debugs

import (
	"strings"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/turing/turing"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func stepGlobals(step turing.Step) starlark.StringDict {
	cells := step.Tape()
	var cell string
	if step.Position >= 0 && step.Position < len(cells) {
		cell = turing.Escape(cells[step.Position])
	}
	tape := string(cells)
	return starlark.StringDict{
		"state":    starlark.String(step.State),
		"steps":    starlark.MakeInt(step.Count),
		"position": starlark.MakeInt(step.Position),
		"line":     starlark.MakeInt(step.Row.Line),
		"row":      starlark.String(step.Row.Text),
		"tape":     starlark.String(tape),
		"cell":     starlark.String(cell),
		"show": starlarkutil.MakeFunc("show", func() string {
			return Render(cells, step.Position)
		}),
	}
}

// Render draws the tape with blanks as '_' and a caret under the head.
func Render(cells []rune, position int) string {
	var b strings.Builder
	for _, r := range cells {
		b.WriteString(turing.Escape(r))
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", max(position, 0)))
	b.WriteByte('^')
	return b.String()
}

// Eval evaluates a starlark expression against the machine state of step.
func Eval(step turing.Step, expr string) (string, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(fileOptions, thread, "<breakpoint>", expr, stepGlobals(step))
	if err != nil {
		return "", err
	}
	if str, ok := value.(starlark.String); ok {
		return string(str), nil
	}
	return value.String(), nil
}
