package bookid

import (
	"log/slog"
	"strings"

	"quire/internal/logging"
	"quire/internal/services/googlebooks"
)

// Metadata is the normalized record shape pushed at the destination library.
// Optional fields stay nil when the source volume does not carry them.
type Metadata struct {
	Name            string   `json:"name"`
	Overview        string   `json:"overview"`
	ProductionYear  *int     `json:"production_year,omitempty"`
	Studios         []string `json:"studios,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	CommunityRating *float64 `json:"community_rating,omitempty"`
	ExternalID      string   `json:"external_id,omitempty"`
}

// MapVolume projects a fully-fetched volume into library metadata. Field
// failures degrade gracefully: an unparsable published date is logged and the
// year left unset, the mapping itself always succeeds.
func MapVolume(vol *googlebooks.Volume, logger *slog.Logger) Metadata {
	if logger == nil {
		logger = logging.NewNop()
	}
	meta := Metadata{
		Name:     vol.VolumeInfo.Title,
		Overview: vol.VolumeInfo.Description,
	}
	if date := vol.VolumeInfo.PublishedDate; strings.TrimSpace(date) != "" {
		if year, ok := parseYear(date); ok {
			meta.ProductionYear = &year
		} else {
			logging.WarnWithContext(logger, "unparsable published date", "published_date_unparsable",
				logging.String("published_date", date),
				logging.String(logging.FieldVolumeID, vol.ID),
				logging.String(logging.FieldImpact, "production year left unset"))
		}
	}
	if publisher := strings.TrimSpace(vol.VolumeInfo.Publisher); publisher != "" {
		meta.Studios = append(meta.Studios, publisher)
	}
	if category := strings.TrimSpace(vol.VolumeInfo.MainCategory); category != "" {
		meta.Tags = append(meta.Tags, category)
	}
	meta.Tags = append(meta.Tags, vol.VolumeInfo.Categories...)
	if vol.VolumeInfo.AverageRating != nil {
		// Source scale is 0-5, library scale is 0-10.
		rating := *vol.VolumeInfo.AverageRating * 2
		meta.CommunityRating = &rating
	}
	if vol.ID != "" {
		meta.ExternalID = vol.ID
	}
	return meta
}
