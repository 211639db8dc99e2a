package turing

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"time"

	"github.com/reusee/turing/logs"
)

// Pause is called after a breakpoint row executes. The run resumes when it
// returns nil and ends when it returns ErrStopped.
type Pause func(ctx context.Context, step Step) error

// Step describes the machine right after one instruction executed.
type Step struct {
	Count    int
	Symbol   rune
	State    string
	Position int
	Row      Row

	cells []rune
}

// Tape returns the tape contents right after the step.
func (s Step) Tape() []rune {
	return s.cells
}

func (s Step) Breakpoint() bool {
	return s.Row.Breakpoint
}

type Result struct {
	Steps    int
	State    string
	Position int
	Tape     []rune
	Halted   bool
	Elapsed  time.Duration
}

type Machine struct {
	table *Table
	head  *Head
	state *State
	count int
	used  bool

	logger      logs.Logger
	delay       time.Duration
	maxSteps    int
	breakpoints bool
	pause       Pause
}

type MachineOption func(*Machine)

func WithLogger(logger logs.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

func WithDelay(delay time.Duration) MachineOption {
	return func(m *Machine) {
		m.delay = delay
	}
}

// WithMaxSteps limits the number of executed steps. Zero means no limit.
func WithMaxSteps(n int) MachineOption {
	return func(m *Machine) {
		m.maxSteps = n
	}
}

func WithPause(pause Pause) MachineOption {
	return func(m *Machine) {
		m.pause = pause
	}
}

func WithBreakpoints(enabled bool) MachineOption {
	return func(m *Machine) {
		m.breakpoints = enabled
	}
}

func NewMachine(table *Table, head *Head, options ...MachineOption) *Machine {
	m := &Machine{
		table:       table,
		head:        head,
		logger:      slog.New(slog.DiscardHandler),
		breakpoints: true,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Steps executes the machine lazily, yielding after every instruction.
// The sequence ends when the state halts, the step limit is reached or an
// error is yielded. A machine can only be stepped through once.
func (m *Machine) Steps(ctx context.Context, start string) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		if m.used {
			yield(Step{}, ErrMachineUsed)
			return
		}
		m.used = true
		m.state = NewState(start)

		m.logger.DebugContext(ctx, "machine start",
			"state", start,
			"position", m.head.Position(),
			"rows", m.table.Len(),
		)

		for !m.state.IsHalting() {
			if m.limitReached() {
				m.logger.InfoContext(ctx, "step limit reached", "steps", m.count)
				return
			}

			select {
			case <-ctx.Done():
				yield(Step{}, ctx.Err())
				return
			default:
			}

			symbol := m.head.Read()
			row, err := m.table.Match(m.state.Label(), symbol)
			if err != nil {
				yield(Step{}, err)
				return
			}
			row.Execute(m.head, m.state)
			m.count++

			step := Step{
				Count:    m.count,
				Symbol:   symbol,
				State:    m.state.Label(),
				Position: m.head.Position(),
				Row:      row,
				cells:    m.head.Tape().Cells(),
			}
			if !yield(step, nil) {
				return
			}

			if row.Breakpoint && m.breakpoints && m.pause != nil {
				m.logger.InfoContext(ctx, "breakpoint",
					"line", row.Line,
					"steps", m.count,
					"state", step.State,
				)
				if err := m.pause(ctx, step); err != nil {
					if !errors.Is(err, ErrStopped) {
						yield(Step{}, err)
					}
					return
				}
			}

			if m.delay > 0 && !m.state.IsHalting() && !m.limitReached() {
				timer := time.NewTimer(m.delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					yield(Step{}, ctx.Err())
					return
				case <-timer.C:
				}
			}
		}

		m.logger.DebugContext(ctx, "machine halted",
			"state", m.state.Label(),
			"steps", m.count,
		)
	}
}

// Run drives Steps to the end, calling onStep after every step and onFinish
// once with the final result, also when the run fails.
func (m *Machine) Run(
	ctx context.Context,
	start string,
	onStep func(Step),
	onFinish func(Result),
) (result Result, err error) {
	begin := time.Now()
	defer func() {
		result = m.Result()
		result.Elapsed = time.Since(begin)
		if onFinish != nil {
			onFinish(result)
		}
	}()

	for step, e := range m.Steps(ctx, start) {
		if e != nil {
			err = e
			return
		}
		if onStep != nil {
			onStep(step)
		}
	}

	return
}

func (m *Machine) limitReached() bool {
	return m.maxSteps > 0 && m.count >= m.maxSteps
}

func (m *Machine) Result() Result {
	return Result{
		Steps:    m.count,
		State:    m.State(),
		Position: m.head.Position(),
		Tape:     m.head.Tape().Cells(),
		Halted:   m.state != nil && m.state.IsHalting(),
	}
}

func (m *Machine) Count() int {
	return m.count
}

func (m *Machine) State() string {
	if m.state == nil {
		return ""
	}
	return m.state.Label()
}

func (m *Machine) Tape() []rune {
	return m.head.Tape().Cells()
}

func (m *Machine) Head() *Head {
	return m.head
}
