package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/turing"
	"golang.org/x/term"
)

func report(w io.Writer, result turing.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, string(result.Tape))
	fmt.Fprintln(w)

	ms := float64(result.Elapsed.Microseconds()) / 1000
	var opsPerSecond float64
	if result.Elapsed > 0 {
		opsPerSecond = float64(result.Steps) / result.Elapsed.Seconds()
	}
	fmt.Fprintf(w, "Cycles: %d | State: %s | Elapsed: %.2fms | Op/s: %.2f\n",
		result.Steps,
		result.State,
		ms,
		opsPerSecond,
	)
}

type tracer struct {
	w          io.Writer
	isTerminal bool
}

func newTracer(w io.Writer) *tracer {
	isTerminal := false
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerminal = true
	}
	return &tracer{
		w:          w,
		isTerminal: isTerminal,
	}
}

func (t *tracer) Step(step turing.Step) {
	if t.isTerminal {
		// redraw in place
		fmt.Fprintf(t.w, "\x1b[2K\r%d %s: %s", step.Count, step.State, escapeTape(step.Tape()))
		return
	}
	fmt.Fprintf(t.w, "%d\t%s\t%d\t%s\n", step.Count, step.State, step.Position, escapeTape(step.Tape()))
}

func escapeTape(cells []rune) string {
	rendered, _, _ := strings.Cut(debugs.Render(cells, 0), "\n")
	return rendered
}

func closestState(target string, states []string) string {
	ranks := fuzzy.RankFindFold(target, states)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
