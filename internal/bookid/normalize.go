package bookid

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// romanSuffixes maps trailing Roman numeral tokens to their Arabic
// replacements, longest numeral first so " viii" is not consumed as " i".
var romanSuffixes = []struct {
	roman  string
	arabic string
}{
	{"viii", "8"},
	{"iii", "3"},
	{"vii", "7"},
	{"ii", "2"},
	{"iv", "4"},
	{"vi", "6"},
	{"ix", "9"},
	{"i", "1"},
	{"v", "5"},
	{"x", "10"},
}

const (
	removedChars = "'!`?"
	spacerChars  = `/,.:;\(){}[]+-_=–*`
)

// Normalize folds a raw title into its canonical comparable form. The result
// is only meaningful for equality checks against other Normalize outputs; it
// is never shown to users.
func Normalize(raw string) string {
	s := norm.NFD.String(strings.ToLower(raw))

	for _, suffix := range romanSuffixes {
		if strings.HasSuffix(s, " "+suffix.roman) {
			s = s[:len(s)-len(suffix.roman)] + suffix.arabic
			break
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x0300 && r <= 0x036f:
			// combining marks left over from NFD decomposition
		case strings.ContainsRune(removedChars, r):
		case strings.ContainsRune(spacerChars, r):
			b.WriteByte(' ')
		case r == '&':
			b.WriteString(" and ")
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Deliberately not word-bounded: "The Hobbit" and "Theodore" both lose
	// their "the". Matching depends on both sides being mangled identically,
	// so this stays as is.
	s = strings.ReplaceAll(s, "the", "")
	s = strings.ReplaceAll(s, " - ", ": ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
