package tui

import (
	"strings"
	"testing"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"a much longer title than fits", 12, "a much lo..."},
		{"abc", 2, "ab"},
		{"anything", 0, ""},
		{"héllo wörld ünïcode", 10, "héllo w..."},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Errorf("line %d exceeds width: %q", i, line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapping lost words: %q", got)
	}

	if wrapText("", 20) != "" {
		t.Error("empty input should wrap to empty")
	}
	if wrapText("unwrapped", 0) != "unwrapped" {
		t.Error("zero width should pass input through")
	}
}
