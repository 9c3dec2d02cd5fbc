package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGoogleBooks(); err != nil {
		return err
	}
	if err := c.validateJellyfin(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGoogleBooks() error {
	if strings.TrimSpace(c.GoogleBooks.BaseURL) == "" {
		return errors.New("googlebooks.base_url must be set")
	}
	// Google caps maxResults at 40 per request.
	if c.GoogleBooks.PageSize < 1 || c.GoogleBooks.PageSize > 40 {
		return fmt.Errorf("googlebooks.page_size must be between 1 and 40, got %d", c.GoogleBooks.PageSize)
	}
	return nil
}

func (c *Config) validateJellyfin() error {
	if !c.Jellyfin.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Jellyfin.URL) == "" {
		return errors.New("jellyfin.url must be set when jellyfin.enabled is true")
	}
	if strings.TrimSpace(c.Jellyfin.APIKey) == "" {
		return errors.New("jellyfin.api_key must be set when jellyfin.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
