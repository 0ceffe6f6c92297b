package utils

import (
	"strings"
	"unicode"
)

// NormalizeShiftName trims the name and collapses internal whitespace runs
// to single spaces.
func NormalizeShiftName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// DeriveShortName builds the display abbreviation for a shift name: the
// uppercased first rune of each word. "Morning Shift" -> "MS", "night" -> "N".
func DeriveShortName(longName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(longName) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
