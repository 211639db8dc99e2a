package programs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs tmconfigs.Module
}
