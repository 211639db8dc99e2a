package programs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/modes"
)

const testProgram = "; swap a and b\r\n0 a b r 1\r\n1 b a r halt\n"

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap.tm")
	if err := os.WriteFile(path, []byte(testProgram), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		load Load,
	) {
		lines, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		expected := []string{
			"; swap a and b",
			"0 a b r 1",
			"1 b a r halt",
		}
		if !slices.Equal(lines, expected) {
			t.Fatalf("got %q", lines)
		}

		_, err = load(t.Context(), filepath.Join(t.TempDir(), "missing.tm"))
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/swap.tm":
			w.Write([]byte(testProgram))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		load Load,
	) {
		lines, err := load(t.Context(), server.URL+"/swap.tm")
		if err != nil {
			t.Fatal(err)
		}
		if len(lines) != 3 || lines[2] != "1 b a r halt" {
			t.Fatalf("got %q", lines)
		}

		_, err = load(t.Context(), server.URL+"/missing.tm")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.png")
	content := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		load Load,
	) {
		_, err := load(t.Context(), path)
		if err == nil || !strings.Contains(err.Error(), "not a text program") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestSplitLines(t *testing.T) {
	if lines := SplitLines(""); lines != nil {
		t.Fatalf("got %q", lines)
	}
	if lines := SplitLines("a\r\n\nb"); !slices.Equal(lines, []string{"a", "", "b"}) {
		t.Fatalf("got %q", lines)
	}
}

func TestReadInput(t *testing.T) {
	input, ok, err := ReadInput(strings.NewReader("1011\r\nignored\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal()
	}
	if input != "1011" {
		t.Fatalf("got %q", input)
	}
}

func TestIsLocalAddr(t *testing.T) {
	if !isLocalAddr(t.Context(), "127.0.0.1:10000") {
		t.Fatal()
	}
	if isLocalAddr(t.Context(), "no-such-host.invalid:80") {
		t.Fatal()
	}

	// lookups follow the dial context
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if isLocalAddr(ctx, "no-such-host.invalid:80") {
		t.Fatal()
	}
	// literal addresses need no lookup
	if !isLocalAddr(ctx, "192.168.1.1:80") {
		t.Fatal()
	}
}
