package layout

import "strings"

const ellipsis = "…"

// Wrap breaks text into lines that each measure at most maxWidth at the
// given font size. Words are accumulated greedily; a single word wider than
// maxWidth is truncated with a trailing ellipsis instead of looping or
// overflowing. Embedded newlines start a new line. The result always holds
// at least one line (an empty string for empty input) so callers can use
// len(lines) for height calculations.
//
// Wrap is a pure function and safe to call from concurrent renders.
func Wrap(measure Measurer, text string, maxWidth, fontSize float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(measure, paragraph, maxWidth, fontSize)...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapParagraph(measure Measurer, paragraph string, maxWidth, fontSize float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if measure(word, fontSize) > maxWidth {
			// Unbreakable token wider than the budget: flush and truncate.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, TruncateToWidth(measure, word, maxWidth, fontSize))
			continue
		}

		trial := word
		if current != "" {
			trial = current + " " + word
		}
		if measure(trial, fontSize) <= maxWidth {
			current = trial
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// TruncateToWidth shortens text to the widest prefix that fits maxWidth at
// the given font size, appending an ellipsis when anything was cut.
func TruncateToWidth(measure Measurer, text string, maxWidth, fontSize float64) string {
	if measure(text, fontSize) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if measure(candidate, fontSize) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}
