package cardnumber

import (
	"regexp"
	"strings"
)

// MaxRun is the longest run of identical consecutive digits a valid number may contain.
const MaxRun = 3

// 16 digits, or four hyphen separated groups of four.
var reShape = regexp.MustCompile(`^(?:(?:\d{4}-){3}\d{4}|\d{16})$`)

// Valid reports whether candidate is an acceptable card number.
func Valid(candidate string) bool {
	if !reShape.MatchString(candidate) {
		return false
	}

	return LongestRun(strings.ReplaceAll(candidate, "-", "")) <= MaxRun
}

// LongestRun returns the length of the longest run of identical consecutive bytes in s.
func LongestRun(s string) int {
	if s == "" {
		return 0
	}

	longest, current := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			current++
			longest = max(longest, current)
			continue
		}
		current = 1
	}

	return longest
}

// Mask hides every digit except the last four, keeping the layout of the input.
func Mask(number string) string {
	if number == "" {
		return ""
	}

	b := []byte(number)
	keep := 4
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '0' || b[i] > '9' {
			continue
		}
		if keep > 0 {
			keep--
			continue
		}
		b[i] = '*'
	}

	return string(b)
}
