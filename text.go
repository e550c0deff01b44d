package cellflex

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate cuts s to at most width display cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// Pad returns s padded with spaces to exactly width display cells,
// truncating first if s is too wide.
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// Wrap breaks s into lines of at most width display cells, splitting
// on spaces where possible. Words wider than the line break mid-word.
// Existing newlines are respected.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var out []string
	var cur string
	curW := 0
	for _, word := range strings.Split(line, " ") {
		wordW := runewidth.StringWidth(word)
		switch {
		case curW == 0 && wordW <= width:
			cur, curW = word, wordW
		case curW+1+wordW <= width:
			cur += " " + word
			curW += 1 + wordW
		default:
			if curW > 0 {
				out = append(out, cur)
			}
			// Hard-break words wider than the line.
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// A single rune wider than the line; take it
					// whole so the break always advances.
					head = string([]rune(word)[0])
				}
				out = append(out, head)
				word = strings.TrimPrefix(word, head)
			}
			cur, curW = word, runewidth.StringWidth(word)
		}
	}
	if curW > 0 {
		out = append(out, cur)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
