package layout

import (
	"strings"
	"testing"
)

// runeMeasure sizes text by rune count, half a unit per rune at size 10.
func runeMeasure(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * 0.5 * fontSize / 10
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{
			name:     "empty input yields one empty line",
			text:     "",
			maxWidth: 20,
			want:     []string{""},
		},
		{
			name:     "single short line",
			text:     "two words",
			maxWidth: 20,
			want:     []string{"two words"},
		},
		{
			// 10 runs per line: "aaa bbb" is 7 runes, adding " ccc" makes 11.
			name:     "greedy fill",
			text:     "aaa bbb ccc ddd",
			maxWidth: 5,
			want:     []string{"aaa bbb", "ccc ddd"},
		},
		{
			name:     "embedded newline starts a fresh line",
			text:     "first\nsecond",
			maxWidth: 20,
			want:     []string{"first", "second"},
		},
		{
			name:     "blank paragraph preserved",
			text:     "a\n\nb",
			maxWidth: 20,
			want:     []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(runeMeasure, tt.text, tt.maxWidth, 10)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapEveryLineFits(t *testing.T) {
	const maxWidth = 15.0
	text := strings.Repeat("network cabling and termination works ", 5)

	lines := Wrap(runeMeasure, text, maxWidth, 10)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := runeMeasure(line, 10); w > maxWidth {
			t.Errorf("line %d %q measures %v, exceeds %v", i, line, w, maxWidth)
		}
	}
}

func TestWrapPreservesWordOrder(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf hotel"
	lines := Wrap(runeMeasure, text, 8, 10)

	joined := strings.Join(lines, " ")
	if joined != text {
		t.Errorf("rejoined lines = %q, want %q", joined, text)
	}
}

func TestWrapLongDescription(t *testing.T) {
	// A 200-character description wrapped at roughly 30 characters per line
	// must spread over at least 7 lines.
	word := "equipment "
	text := strings.TrimSpace(strings.Repeat(word, 20)) // 199 chars

	lines := Wrap(runeMeasure, text, 15, 10) // 15 units = 30 runes at size 10
	if len(lines) < 7 {
		t.Errorf("got %d lines, want at least 7", len(lines))
	}
}

func TestWrapUnbreakableToken(t *testing.T) {
	lines := Wrap(runeMeasure, "short "+strings.Repeat("x", 50), 10, 10)
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want short line plus truncated token", lines)
	}
	if lines[0] != "short" {
		t.Errorf("line 0 = %q, want %q", lines[0], "short")
	}
	if !strings.HasSuffix(lines[1], ellipsis) {
		t.Errorf("line 1 = %q, want ellipsis suffix", lines[1])
	}
	if w := runeMeasure(lines[1], 10); w > 10 {
		t.Errorf("truncated token measures %v, exceeds 10", w)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := TruncateToWidth(runeMeasure, "fits", 10, 10); got != "fits" {
		t.Errorf("fitting text changed to %q", got)
	}

	got := TruncateToWidth(runeMeasure, "abcdefghijklmnop", 4, 10)
	if !strings.HasSuffix(got, ellipsis) {
		t.Errorf("truncated text %q lacks ellipsis", got)
	}
	if w := runeMeasure(got, 10); w > 4 {
		t.Errorf("truncated text measures %v, exceeds 4", w)
	}
}
