package bookid

import (
	"strconv"
	"strings"
)

// Candidate is a lightweight search result prior to the full volume fetch.
type Candidate struct {
	ID            string
	Title         string
	PublishedDate string
}

// yearDriftTolerance is the slack allowed between the query year and a
// candidate's published year. Catalog records routinely disagree by an
// edition year.
const yearDriftTolerance = 1

// SelectBest scans candidates in search-rank order and returns the id of the
// first one whose normalized title equals target and whose published year,
// when both years are parseable, is within the drift tolerance. There is no
// scoring; ties are settled purely by result order.
func SelectBest(target, targetYear string, candidates []Candidate) (string, bool) {
	wantYear, haveWantYear := parseYear(targetYear)
	for _, candidate := range candidates {
		if Normalize(candidate.Title) != target {
			continue
		}
		if haveWantYear {
			if gotYear, ok := parseYear(candidate.PublishedDate); ok {
				drift := gotYear - wantYear
				if drift < 0 {
					drift = -drift
				}
				if drift > yearDriftTolerance {
					continue
				}
			}
		}
		return candidate.ID, true
	}
	return "", false
}

// parseYear reads the 4-character year prefix of a free-form date string
// (the whole string when shorter).
func parseYear(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if len(value) > 4 {
		value = value[:4]
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return year, true
}
