// Package roles implements header normalization and column role inference.
package roles

import (
	"regexp"
	"strings"
)

// sheetNameLimit is the xlsx hard limit on sheet name length.
const sheetNameLimit = 31

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	forbiddenRe  = regexp.MustCompile(`[:\\/?*\[\]]`)
)

// Normalize collapses whitespace runs to a single space, trims leading and
// trailing whitespace, and lowercases. It is used both for phrase matching
// and for sheet-name heuristics.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " ")))
}

// SafeSheetName rewrites name into a legal xlsx sheet name: the characters
// : \ / ? * [ ] become "-", surrounding whitespace is trimmed, an empty
// result falls back to "Sheet", and the result is truncated to 31 runes.
// Uniqueness across sheets is the assembler's responsibility.
func SafeSheetName(name string) string {
	name = strings.TrimSpace(forbiddenRe.ReplaceAllString(name, "-"))
	if name == "" {
		name = "Sheet"
	}
	return truncateRunes(name, sheetNameLimit)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
