package bookid

import (
	"regexp"
	"strings"
)

var titleYearPattern = regexp.MustCompile(`^(.*[^\s])\s*\((\d{4})\)\s*$`)

// ParseTitle splits a query title into its bare name and an inferred year.
// A trailing parenthesized 4-digit year is recognized ("Dune (1965)");
// anything else is treated as a plain name with no year.
func ParseTitle(title string) (name, year string) {
	title = strings.TrimSpace(title)
	if m := titleYearPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	return title, ""
}
