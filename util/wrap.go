package util

import "strings"

// WrapText greedily wraps s into lines of at most width columns, breaking on
// spaces. Words longer than width are kept on a line of their own. A width
// below one returns s as a single line.
func WrapText(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}

	return append(lines, line)
}
