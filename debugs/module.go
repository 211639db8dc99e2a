package debugs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tmconfigs.Module
}

// Output is where the breakpoint console writes.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
