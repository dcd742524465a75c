package common

import "testing"

func TestFirstLine(t *testing.T) {
	if got := FirstLine("\n  hello \nworld"); got != "hello" {
		t.Fatalf("unexpected first line: %q", got)
	}
	if got := FirstLine(" \n\t"); got != "" {
		t.Fatalf("blank text should yield empty line: %q", got)
	}
}
