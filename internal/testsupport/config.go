package testsupport

import (
	"path/filepath"
	"testing"

	"quire/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.GoogleBooks.APIKey = "test"
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.MatchCache.Path = filepath.Join(base, "cache", "match_cache.json")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithGoogleBooksBaseURL points the catalog client at a test server.
func WithGoogleBooksBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.GoogleBooks.BaseURL = url
	}
}

// WithJellyfin enables the Jellyfin integration against the given server.
func WithJellyfin(url, apiKey string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Jellyfin.Enabled = true
		cfg.Jellyfin.URL = url
		cfg.Jellyfin.APIKey = apiKey
	}
}

// WithoutMatchCache disables the on-disk match cache for the test config.
func WithoutMatchCache() ConfigOption {
	return func(cfg *config.Config) {
		cfg.MatchCache.Enabled = false
		cfg.MatchCache.Path = ""
	}
}
