package tmconfigs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/modes"
)

func newTestScope(t *testing.T, content string) dscope.Scope {
	var paths []string
	if content != "" {
		path := filepath.Join(t.TempDir(), "turing.cue")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, schema)
		},
	)
}

func TestDefaults(t *testing.T) {
	newTestScope(t, "").Call(func(
		delay Delay,
		maxSteps MaxSteps,
		start StartState,
		comment CommentDelimiter,
		breakpoints Breakpoints,
		script BreakScript,
		proxy ProxyAddr,
	) {
		if delay != 0 {
			t.Fatalf("got %v", delay)
		}
		if maxSteps != 0 {
			t.Fatalf("got %v", maxSteps)
		}
		if start != "0" {
			t.Fatalf("got %v", start)
		}
		if comment != ";" {
			t.Fatalf("got %v", comment)
		}
		if !breakpoints {
			t.Fatal()
		}
		if script != "" {
			t.Fatalf("got %v", script)
		}
		if proxy != "" {
			t.Fatalf("got %v", proxy)
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	newTestScope(t, `
delay: "250ms"
max_steps: 100
start_state: "q0"
comment: "#"
breakpoints: false
break_script: "inspect.star"
proxy_addr: "socks5://127.0.0.1:1080"
`).Call(func(
		delay Delay,
		maxSteps MaxSteps,
		start StartState,
		comment CommentDelimiter,
		breakpoints Breakpoints,
		script BreakScript,
		proxy ProxyAddr,
	) {
		if time.Duration(delay) != 250*time.Millisecond {
			t.Fatalf("got %v", delay)
		}
		if maxSteps != 100 {
			t.Fatalf("got %v", maxSteps)
		}
		if start != "q0" {
			t.Fatalf("got %v", start)
		}
		if comment != "#" {
			t.Fatalf("got %v", comment)
		}
		if breakpoints {
			t.Fatal()
		}
		if script != "inspect.star" {
			t.Fatalf("got %v", script)
		}
		// proxies are disabled in development mode
		if proxy != "" {
			t.Fatalf("got %v", proxy)
		}
	})
}

func TestParseDelay(t *testing.T) {
	for _, c := range []struct {
		in       any
		expected time.Duration
	}{
		{nil, 0},
		{10, 10 * time.Millisecond},
		{int64(3), 3 * time.Millisecond},
		{"40", 40 * time.Millisecond},
		{"1.5s", 1500 * time.Millisecond},
	} {
		got, err := parseDelay(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.expected {
			t.Fatalf("%v: got %v", c.in, got)
		}
	}
	if _, err := parseDelay("later"); err == nil {
		t.Fatal("should error")
	}
}

func TestSchemaRejectsUnknownField(t *testing.T) {
	loader := configs.NewLoader(nil, schema)
	if _, err := loader.Paths(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "turing.cue")
	if err := os.WriteFile(path, []byte(`tape: "abc"`), 0644); err != nil {
		t.Fatal(err)
	}
	loader = configs.NewLoader([]string{path}, schema)
	if _, err := loader.Paths(); err == nil {
		t.Fatal("should error")
	}
}
