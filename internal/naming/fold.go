package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the case-folded form of a name, suitable for comparisons and
// map keys. Whitespace is kept, so " old key" does not fold to "old key".
func Fold(name string) string {
	return cases.Fold().String(name)
}

// Equal reports whether two names match exactly, ignoring case only.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// NormalizeInput trims and lower-cases a line of player input.
func NormalizeInput(line string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(line))
}
