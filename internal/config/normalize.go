package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeGoogleBooks(); err != nil {
		return err
	}
	c.normalizeJellyfin()
	if err := c.normalizeMatchCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGoogleBooks() error {
	if c.GoogleBooks.APIKey == "" {
		if value, ok := os.LookupEnv("GOOGLE_BOOKS_API_KEY"); ok {
			c.GoogleBooks.APIKey = strings.TrimSpace(value)
		}
	}
	c.GoogleBooks.BaseURL = strings.TrimSpace(c.GoogleBooks.BaseURL)
	if c.GoogleBooks.BaseURL == "" {
		c.GoogleBooks.BaseURL = defaultGoogleBooksBaseURL
	}
	c.GoogleBooks.Country = strings.ToUpper(strings.TrimSpace(c.GoogleBooks.Country))
	if c.GoogleBooks.PageSize == 0 {
		c.GoogleBooks.PageSize = defaultPageSize
	}
	return nil
}

func (c *Config) normalizeJellyfin() {
	if c.Jellyfin.APIKey == "" {
		if value, ok := os.LookupEnv("JELLYFIN_API_KEY"); ok {
			c.Jellyfin.APIKey = strings.TrimSpace(value)
		}
	}
	c.Jellyfin.URL = strings.TrimSpace(c.Jellyfin.URL)
	c.Jellyfin.APIKey = strings.TrimSpace(c.Jellyfin.APIKey)
}

func (c *Config) normalizeMatchCache() error {
	if strings.TrimSpace(c.MatchCache.Path) == "" {
		c.MatchCache.Path = defaultMatchCachePath
	}
	expanded, err := expandPath(c.MatchCache.Path)
	if err != nil {
		return fmt.Errorf("match_cache.path: %w", err)
	}
	c.MatchCache.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
