package tmconfigs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

const (
	DefaultStartState = "0"
	DefaultComment    = ";"
)

type Delay time.Duration

func (Module) Delay(
	loader configs.Loader,
) Delay {
	if *delayFlag != 0 {
		return Delay(*delayFlag)
	}
	d, err := parseDelay(configs.First[any](loader, "delay"))
	if err != nil {
		panic(err)
	}
	return Delay(d)
}

func parseDelay(v any) (time.Duration, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	case string:
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
		return time.ParseDuration(v)
	}
	return 0, fmt.Errorf("bad delay: %v", v)
}

type MaxSteps int

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}

type StartState string

func (Module) StartState(
	loader configs.Loader,
) StartState {
	return StartState(vars.FirstNonZero(
		*startStateFlag,
		configs.First[string](loader, "start_state"),
		DefaultStartState,
	))
}

type CommentDelimiter string

func (Module) CommentDelimiter(
	loader configs.Loader,
) CommentDelimiter {
	return CommentDelimiter(vars.FirstNonZero(
		*commentFlag,
		configs.First[string](loader, "comment"),
		DefaultComment,
	))
}

type Breakpoints bool

func (Module) Breakpoints(
	loader configs.Loader,
) Breakpoints {
	if *noBreakpointFlag {
		return false
	}
	if enabled := configs.First[*bool](loader, "breakpoints"); enabled != nil {
		return Breakpoints(*enabled)
	}
	return true
}

type BreakScript string

func (Module) BreakScript(
	loader configs.Loader,
) BreakScript {
	return BreakScript(vars.FirstNonZero(
		*breakScriptFlag,
		configs.First[string](loader, "break_script"),
	))
}
