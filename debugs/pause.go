package debugs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/starlarkutil"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/turing"
	"go.starlark.net/starlark"
)

func (Module) Pause(
	script tmconfigs.BreakScript,
	output Output,
	logger logs.Logger,
) turing.Pause {
	if script != "" {
		return func(ctx context.Context, step turing.Step) error {
			logger.DebugContext(ctx, "run break script", "path", script)
			return RunScript(ctx, string(script), step, output)
		}
	}
	return func(ctx context.Context, step turing.Step) error {
		return console(ctx, step, output)
	}
}

// RunScript executes a starlark file with the machine state predeclared.
// Calling stop() in the script ends the run.
func RunScript(ctx context.Context, path string, step turing.Step, output io.Writer) error {
	stopped := false
	globals := stepGlobals(step)
	globals["stop"] = starlarkutil.MakeFunc("stop", func() {
		stopped = true
	})

	thread := &starlark.Thread{
		Name: "breakpoint",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
	}
	cancel := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer cancel()

	if _, err := starlark.ExecFileOptions(fileOptions, thread, path, nil, globals); err != nil {
		return err
	}
	if stopped {
		return turing.ErrStopped
	}
	return nil
}

const consoleHelp = `enter: continue, q: stop the run, anything else: starlark expression
names: state steps position line row tape cell show()`

func console(ctx context.Context, step turing.Step, output io.Writer) error {
	fmt.Fprintf(output, "breakpoint at line %d: %s\nstep %d, state %s\n%s\n",
		step.Row.Line,
		step.Row.Text,
		step.Count,
		step.State,
		Render(step.Tape(), step.Position),
	)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		input, err := line.Prompt("(break) ")
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, liner.ErrPromptAborted):
				return turing.ErrStopped
			}
			return err
		}
		input = strings.TrimSpace(input)

		switch input {
		case "", "c", "continue":
			return nil
		case "q", "quit", "exit":
			return turing.ErrStopped
		case "?", "help":
			fmt.Fprintln(output, consoleHelp)
			continue
		}
		line.AppendHistory(input)

		result, err := Eval(step, input)
		if err != nil {
			fmt.Fprintf(output, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(output, result)
	}
}
