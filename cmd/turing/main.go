package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/programs"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/turing"
)

var (
	programFlag = cmds.Var[string]("-program", "program file or http(s) url")
	inputFlag   = cmds.Var[string]("-input", "initial tape, '_' for blank, '*' before the start cell")
	traceFlag   = cmds.Switch("-trace", "print the tape after every step")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *programFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -program <file> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(turing.Module),
		new(debugs.Module),
		new(programs.Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		newRun logs.NewRun,
		load programs.Load,
		buildTable turing.BuildTable,
		newMachine turing.NewMachineFunc,
		start tmconfigs.StartState,
	) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		ctx, _ = newRun(ctx, *programFlag)
		err = logs.WrapRun(ctx, run(ctx, load, buildTable, newMachine, string(start)))
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Execution halted: %v\n", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	load programs.Load,
	buildTable turing.BuildTable,
	newMachine turing.NewMachineFunc,
	start string,
) error {
	lines, err := load(ctx, *programFlag)
	if err != nil {
		return err
	}
	table, err := buildTable(lines)
	if err != nil {
		return err
	}

	input := *inputFlag
	if input == "" {
		if stdin, ok, err := programs.ReadInput(os.Stdin); err != nil {
			return err
		} else if ok {
			input = stdin
		}
	}
	cells, position := turing.ParseInput(input)
	machine := newMachine(table, turing.NewHeadAt(turing.NewTape(cells), position))

	var onStep func(turing.Step)
	if *traceFlag {
		onStep = newTracer(os.Stdout).Step
	}
	_, err = machine.Run(ctx, start, onStep, func(result turing.Result) {
		report(os.Stdout, result)
	})

	var noMatch *turing.NoMatchError
	if errors.As(err, &noMatch) {
		if state := closestState(noMatch.State, table.States()); state != "" && state != noMatch.State {
			err = fmt.Errorf("%w (did you mean state '%s'?)", err, state)
		}
	}
	return err
}
