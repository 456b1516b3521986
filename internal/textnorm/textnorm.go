// Package textnorm normalizes free-text export fields before matching.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize uppercases text using full Unicode case mapping and trims
// surrounding whitespace. Empty input yields "".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A Caser is stateful; build one per call.
	return strings.TrimSpace(cases.Upper(language.Und).String(text))
}
