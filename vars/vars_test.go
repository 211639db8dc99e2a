package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "", ";", "#"); got != ";" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		"yes":   true,
		"f":     false,
		"No":    false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
