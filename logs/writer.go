package logs

import (
	"io"
	"os"
	"strings"
	"testing"
)

// Writer receives terminal log output.
type Writer io.Writer

// Writer sends records to the running test when there is one.
func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return testWriter{t: t}
	}
	return os.Stderr
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
