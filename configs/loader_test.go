package configs

import (
	"errors"
	"path/filepath"
	"testing"
)

var testSchema = `
start_state?: string
max_steps?: int
comment?: string
`

func testFiles(names ...string) (ret []string) {
	for _, name := range names {
		ret = append(ret, filepath.Join("testdata", name))
	}
	return
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(testFiles("test.cue", "test2.cue"), testSchema)

	var state string
	if err := loader.AssignFirst("start_state", &state); err != nil {
		t.Fatal(err)
	}
	if state != "q0" {
		t.Fatalf("got %q", state)
	}

	var comment string
	if err := loader.AssignFirst("comment", &comment); err != nil {
		t.Fatal(err)
	}
	if comment != "#" {
		t.Fatalf("got %q", comment)
	}

	var n int
	if err := loader.AssignFirst("not", &n); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader(testFiles("bad.cue"), testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader(testFiles("missing.cue"), testSchema)
	var str string
	if err := loader.AssignFirst("start_state", &str); err == nil {
		t.Fatal("should error")
	}
}
