package dataset

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize derives the comparison key for a company name: surrounding
// whitespace and trailing periods are removed and the result is lowercased.
// Normalize(Normalize(x)) == Normalize(x) for every x.
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	key := strings.TrimSpace(name)
	for strings.HasSuffix(key, ".") {
		key = strings.TrimSpace(strings.TrimSuffix(key, "."))
	}
	return strings.ToLower(key)
}

// ToDisplayCase upper-cases the first letter of every whitespace-delimited
// word. It is for presentation only and never used for comparison.
func ToDisplayCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	atWordStart := true
	for len(name) > 0 {
		r, size := utf8.DecodeRuneInString(name)
		name = name[size:]
		switch {
		case unicode.IsSpace(r):
			atWordStart = true
			b.WriteRune(r)
		case atWordStart:
			atWordStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
