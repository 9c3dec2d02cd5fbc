package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one resolved book in the catalog.
type Record struct {
	ID              int64
	VolumeID        string
	Query           string
	Name            string
	Overview        string
	ProductionYear  *int
	Studios         []string
	Tags            []string
	CommunityRating *float64
	MatchedByID     bool
	ResolvedAt      time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		record      Record
		year        sql.NullInt64
		rating      sql.NullFloat64
		matchedByID int
		studiosJSON string
		tagsJSON    string
		resolvedAt  string
	)
	if err := row.Scan(
		&record.ID,
		&record.VolumeID,
		&record.Query,
		&record.Name,
		&record.Overview,
		&year,
		&studiosJSON,
		&tagsJSON,
		&rating,
		&matchedByID,
		&resolvedAt,
	); err != nil {
		return nil, err
	}

	if year.Valid {
		value := int(year.Int64)
		record.ProductionYear = &value
	}
	if rating.Valid {
		value := rating.Float64
		record.CommunityRating = &value
	}
	record.MatchedByID = matchedByID != 0

	if err := json.Unmarshal([]byte(studiosJSON), &record.Studios); err != nil {
		return nil, fmt.Errorf("parse studios: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &record.Tags); err != nil {
		return nil, fmt.Errorf("parse tags: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, resolvedAt)
	if err != nil {
		return nil, fmt.Errorf("parse resolved_at: %w", err)
	}
	record.ResolvedAt = parsed
	return &record, nil
}
