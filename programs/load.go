package programs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/e5"
	"github.com/reusee/turing/logs"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

const maxProgramSize = 16 << 20

// Load reads program lines from a file path or an http(s) url.
type Load func(ctx context.Context, source string) ([]string, error)

func (Module) Load(
	client HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, source string) (lines []string, err error) {
		var content []byte
		if isURL(source) {
			content, err = fetch(ctx, client, source)
		} else {
			content, err = os.ReadFile(source)
		}
		if err != nil {
			return nil, wrap(err)
		}

		if err := checkText(content); err != nil {
			return nil, wrap(fmt.Errorf("%s: %w", source, err))
		}

		lines = SplitLines(string(content))
		logger.DebugContext(ctx, "program loaded",
			"source", source,
			"lines", len(lines),
		)
		return lines, nil
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, client HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, maxProgramSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > maxProgramSize {
		return nil, fmt.Errorf("fetch %s: program larger than %d bytes", url, maxProgramSize)
	}
	return content, nil
}

func checkText(content []byte) error {
	if len(content) == 0 {
		return nil
	}
	mtype := mimetype.Detect(content)
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("not a text program: %s", mtype.String())
}

// SplitLines splits text on newlines, dropping carriage returns.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
