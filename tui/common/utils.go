package common

import "strings"

// FirstLine returns the first non-empty line of text, trimmed.
func FirstLine(text string) string {
	for _, ln := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(ln); s != "" {
			return s
		}
	}
	return ""
}
