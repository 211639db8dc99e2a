package turing

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tmconfigs.Module
}

type BuildTable func(lines []string) (*Table, error)

func (Module) BuildTable(
	comment tmconfigs.CommentDelimiter,
	logger logs.Logger,
) BuildTable {
	return func(lines []string) (*Table, error) {
		table, err := NewTable(lines, WithComment(string(comment)))
		if err != nil {
			return nil, err
		}
		if skipped := table.Skipped(); len(skipped) > 0 {
			logger.Debug("malformed lines skipped", "lines", skipped)
		}
		return table, nil
	}
}

type NewMachineFunc func(table *Table, head *Head) *Machine

func (Module) NewMachine(
	logger logs.Logger,
	delay tmconfigs.Delay,
	maxSteps tmconfigs.MaxSteps,
	breakpoints tmconfigs.Breakpoints,
	pause Pause,
) NewMachineFunc {
	return func(table *Table, head *Head) *Machine {
		return NewMachine(table, head,
			WithLogger(logger),
			WithDelay(time.Duration(delay)),
			WithMaxSteps(int(maxSteps)),
			WithBreakpoints(bool(breakpoints)),
			WithPause(pause),
		)
	}
}
