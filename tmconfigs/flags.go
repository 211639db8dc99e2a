package tmconfigs

import (
	"time"

	"github.com/reusee/turing/cmds"
)

var (
	delayFlag        = cmds.Var[time.Duration]("-delay", "wait between steps, in milliseconds or as a duration")
	maxStepsFlag     = cmds.Var[int]("-max-steps", "stop after this many steps, 0 for no limit")
	startStateFlag   = cmds.Var[string]("-start", "initial state label")
	commentFlag      = cmds.Var[string]("-comment", "comment delimiter of the program")
	breakScriptFlag  = cmds.Var[string]("-break-script", "starlark script to run at breakpoints instead of the console")
	noBreakpointFlag = cmds.Switch("-no-break", "ignore breakpoints")
	configFile       = cmds.Var[string]("-config", "config file, searched before the default locations")
)
