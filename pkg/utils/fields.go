package utils

import "strings"

// SplitList splits raw on sep, trims every entry and drops the blank ones.
// The result is never nil.
func SplitList(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
