package programs

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadInput reads the initial tape from r unless r is a terminal.
// Only the first line is used.
func ReadInput(r io.Reader) (string, bool, error) {
	if file, ok := r.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", false, nil
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", false, wrap(err)
	}
	line, _, _ := strings.Cut(string(content), "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
