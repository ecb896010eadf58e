// Package textline normalizes raw input lines before they reach a sort or
// shuffle engine. "Whitespace" here is wider than unicode.IsSpace: control
// characters count too, so stray carriage returns, tabs and NULs are trimmed
// and a line of nothing but control characters is blank.
package textline

import (
	"strings"
	"unicode"
)

func isSpaceOrControl(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// Trim removes leading and trailing whitespace and control characters.
// Interior characters are never touched.
func Trim(s string) string {
	return strings.TrimFunc(s, isSpaceOrControl)
}

// IsBlank reports whether s consists entirely of whitespace and control
// characters. The empty string is blank.
func IsBlank(s string) bool {
	for _, r := range s {
		if !isSpaceOrControl(r) {
			return false
		}
	}
	return true
}
