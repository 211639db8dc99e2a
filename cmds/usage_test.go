package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("-program", Func(func(string) {}).Desc("program file or url"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"-h (help, -help, --help)\tprint this usage",
		"-program\tprogram file or url",
		"foo\tFOO",
		"  bar\tBAR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}
