package bookid

import "testing"

func TestSelectBestFirstMatchWins(t *testing.T) {
	candidates := []Candidate{
		{ID: "wrong", Title: "Something Else", PublishedDate: "1999"},
		{ID: "first", Title: "Dune", PublishedDate: "1965"},
		{ID: "second", Title: "Dune", PublishedDate: "1965"},
	}
	id, ok := SelectBest("dune", "1965", candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if id != "first" {
		t.Fatalf("expected first qualifying candidate, got %q", id)
	}
}

func TestSelectBestYearDrift(t *testing.T) {
	cases := []struct {
		name          string
		publishedDate string
		want          bool
	}{
		{"exact year", "1999", true},
		{"one year late", "2000-06-01", true},
		{"one year early", "1998", true},
		{"two years off", "2001", false},
		{"unparsable date ignored", "circa 1800", true},
		{"empty date ignored", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := []Candidate{{ID: "abc", Title: "Dune", PublishedDate: tc.publishedDate}}
			_, ok := SelectBest("dune", "1999", candidates)
			if ok != tc.want {
				t.Fatalf("SelectBest with date %q: got match=%v, want %v", tc.publishedDate, ok, tc.want)
			}
		})
	}
}

func TestSelectBestNoTargetYear(t *testing.T) {
	candidates := []Candidate{{ID: "abc", Title: "Dune", PublishedDate: "1865"}}
	id, ok := SelectBest("dune", "", candidates)
	if !ok || id != "abc" {
		t.Fatalf("expected match without year constraint, got id=%q ok=%v", id, ok)
	}
}

func TestSelectBestTitleMismatch(t *testing.T) {
	candidates := []Candidate{
		{ID: "a", Title: "Dune Messiah", PublishedDate: "1969"},
		{ID: "b", Title: "Children of Dune", PublishedDate: "1976"},
	}
	if _, ok := SelectBest("dune", "", candidates); ok {
		t.Fatal("expected no match for non-equal titles")
	}
}

func TestSelectBestEmptyCandidates(t *testing.T) {
	if _, ok := SelectBest("dune", "1965", nil); ok {
		t.Fatal("expected no match for empty candidate list")
	}
}

func TestParseYear(t *testing.T) {
	cases := []struct {
		in       string
		want     int
		wantOK   bool
	}{
		{"1965", 1965, true},
		{"1965-08-01", 1965, true},
		{" 2001 ", 2001, true},
		{"circa 1800", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseYear(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("parseYear(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
