package shared

import (
	"strings"
	"testing"
)

func TestCenterWithBottomHints_PinsHints(t *testing.T) {
	out := CenterWithBottomHints("a\nb", "hint", 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[9] != "hint" {
		t.Errorf("expected hint on last line, got %q", lines[9])
	}
	if lines[3] != "a" || lines[4] != "b" {
		t.Errorf("expected content centered, got %q", lines)
	}
}

func TestCenterWithBottomHints_Overflow(t *testing.T) {
	out := CenterWithBottomHints("a\nb\nc", "hint", 2)
	if out != "a\nb\nc\nhint" {
		t.Errorf("unexpected overflow output %q", out)
	}
}
