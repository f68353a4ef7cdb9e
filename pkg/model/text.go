package model

import "strings"

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FirstNonBlank returns the first value that is not empty or whitespace.
func FirstNonBlank(values ...string) string {
	for _, value := range values {
		if !isBlank(value) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
