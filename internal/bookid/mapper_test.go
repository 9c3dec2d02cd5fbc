package bookid

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"quire/internal/services/googlebooks"
)

func TestMapVolumeFullRecord(t *testing.T) {
	rating := 4.0
	vol := &googlebooks.Volume{
		ID: "abc",
		VolumeInfo: googlebooks.VolumeInfo{
			Title:         "Dune",
			Description:   "Desert planet politics.",
			Publisher:     "Chilton Books",
			PublishedDate: "1965-08-01",
			MainCategory:  "Fiction",
			Categories:    []string{"Science Fiction", "Classics"},
			AverageRating: &rating,
		},
	}

	meta := MapVolume(vol, nil)

	if meta.Name != "Dune" {
		t.Fatalf("Name = %q", meta.Name)
	}
	if meta.Overview != "Desert planet politics." {
		t.Fatalf("Overview = %q", meta.Overview)
	}
	if meta.ProductionYear == nil || *meta.ProductionYear != 1965 {
		t.Fatalf("ProductionYear = %v, want 1965", meta.ProductionYear)
	}
	if len(meta.Studios) != 1 || meta.Studios[0] != "Chilton Books" {
		t.Fatalf("Studios = %v", meta.Studios)
	}
	wantTags := []string{"Fiction", "Science Fiction", "Classics"}
	if len(meta.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", meta.Tags, wantTags)
	}
	for i, tag := range wantTags {
		if meta.Tags[i] != tag {
			t.Fatalf("Tags[%d] = %q, want %q", i, meta.Tags[i], tag)
		}
	}
	if meta.CommunityRating == nil || *meta.CommunityRating != 8.0 {
		t.Fatalf("CommunityRating = %v, want 8.0", meta.CommunityRating)
	}
	if meta.ExternalID != "abc" {
		t.Fatalf("ExternalID = %q", meta.ExternalID)
	}
}

func TestMapVolumeSparseRecord(t *testing.T) {
	vol := &googlebooks.Volume{
		ID:         "xyz",
		VolumeInfo: googlebooks.VolumeInfo{Title: "Untitled"},
	}

	meta := MapVolume(vol, nil)

	if meta.ProductionYear != nil {
		t.Fatalf("ProductionYear = %v, want nil", meta.ProductionYear)
	}
	if meta.CommunityRating != nil {
		t.Fatalf("CommunityRating = %v, want nil", meta.CommunityRating)
	}
	if len(meta.Studios) != 0 || len(meta.Tags) != 0 {
		t.Fatalf("Studios/Tags not empty: %v / %v", meta.Studios, meta.Tags)
	}
}

func TestMapVolumeUnparsableDateWarnsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	vol := &googlebooks.Volume{
		ID: "abc",
		VolumeInfo: googlebooks.VolumeInfo{
			Title:         "Dune",
			PublishedDate: "circa unknown",
		},
	}

	meta := MapVolume(vol, logger)

	if meta.ProductionYear != nil {
		t.Fatalf("ProductionYear = %v, want nil for unparsable date", meta.ProductionYear)
	}
	if meta.Name != "Dune" {
		t.Fatalf("mapping should succeed despite bad date, got Name = %q", meta.Name)
	}
	if !strings.Contains(buf.String(), "published_date_unparsable") {
		t.Fatalf("expected a warning about the unparsable date, log output: %s", buf.String())
	}
}
