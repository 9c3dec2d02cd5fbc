package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"quire/internal/bookid"
	"quire/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    volume_id TEXT NOT NULL UNIQUE,
    query TEXT NOT NULL,
    name TEXT NOT NULL,
    overview TEXT NOT NULL DEFAULT '',
    production_year INTEGER,
    studios_json TEXT NOT NULL DEFAULT '[]',
    tags_json TEXT NOT NULL DEFAULT '[]',
    community_rating REAL,
    matched_by_id INTEGER NOT NULL DEFAULT 0,
    resolved_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_books_resolved_at ON books(resolved_at);
`

const recordColumns = `id, volume_id, query, name, overview, production_year,
    studios_json, tags_json, community_rating, matched_by_id, resolved_at`

// Store manages the resolved-book catalog backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the catalog database. A file lock next to
// the database guards against concurrent writers from separate processes.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.LibraryDBPath()
	lock := flock.New(filepath.Join(filepath.Dir(dbPath), "library.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire library lock: %w", err)
	}
	if !locked {
		return nil, errors.New("library database is locked by another quire process")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, lock: lock, path: dbPath}, nil
}

// Close closes the database connection and releases the writer lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("release library lock: %w", err)
		}
	}
	return closeErr
}

// Save upserts a resolution keyed by volume id and returns the stored record.
func (s *Store) Save(ctx context.Context, query string, match *bookid.Match) (*Record, error) {
	if match == nil {
		return nil, errors.New("match is nil")
	}
	volumeID := strings.TrimSpace(match.ExternalID)
	if volumeID == "" {
		return nil, errors.New("match has no volume id")
	}

	studiosJSON, err := json.Marshal(sliceOrEmpty(match.Studios))
	if err != nil {
		return nil, fmt.Errorf("marshal studios: %w", err)
	}
	tagsJSON, err := json.Marshal(sliceOrEmpty(match.Tags))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO books (
            volume_id, query, name, overview, production_year,
            studios_json, tags_json, community_rating, matched_by_id, resolved_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(volume_id) DO UPDATE SET
            query = excluded.query,
            name = excluded.name,
            overview = excluded.overview,
            production_year = excluded.production_year,
            studios_json = excluded.studios_json,
            tags_json = excluded.tags_json,
            community_rating = excluded.community_rating,
            matched_by_id = excluded.matched_by_id,
            resolved_at = excluded.resolved_at`,
		volumeID,
		query,
		match.Name,
		match.Overview,
		nullableInt(match.ProductionYear),
		string(studiosJSON),
		string(tagsJSON),
		nullableFloat(match.CommunityRating),
		boolToInt(match.MatchedByID),
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert book: %w", err)
	}
	return s.GetByVolumeID(ctx, volumeID)
}

// GetByVolumeID returns the stored record for a volume id, or nil when absent.
func (s *Store) GetByVolumeID(ctx context.Context, volumeID string) (*Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+recordColumns+` FROM books WHERE volume_id = ?`,
		strings.TrimSpace(volumeID),
	)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query book: %w", err)
	}
	return record, nil
}

// List returns catalog entries newest first. A non-positive limit returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	queryText := `SELECT ` + recordColumns + ` FROM books ORDER BY resolved_at DESC`
	args := []any{}
	if limit > 0 {
		queryText += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, queryText, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return records, nil
}

// Remove deletes a record by volume id.
func (s *Store) Remove(ctx context.Context, volumeID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE volume_id = ?`, strings.TrimSpace(volumeID))
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("volume %q not found in library", volumeID)
	}
	return nil
}

// Count returns the number of catalog entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

func sliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}
