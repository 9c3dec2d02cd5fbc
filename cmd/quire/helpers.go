package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"quire/internal/bookid"
	"quire/internal/library"
	"quire/internal/matchcache"
	"quire/internal/services/googlebooks"
)

// newResolver builds a resolver from the loaded config, sharing the match
// cache when it is enabled.
func (c *commandContext) newResolver() (*bookid.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := googlebooks.New(cfg.GoogleBooks.APIKey, cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.Country)
	if err != nil {
		return nil, fmt.Errorf("build google books client: %w", err)
	}
	return bookid.NewResolver(client, c.newCache(), logger,
		bookid.WithSearchWindow(cfg.GoogleBooks.PageSize))
}

// newCache returns the configured match cache, or a disabled no-op cache.
func (c *commandContext) newCache() *matchcache.Cache {
	cfg, err := c.ensureConfig()
	if err != nil {
		return matchcache.NewCache("", nil)
	}
	logger, _ := c.ensureLogger()
	path := ""
	if cfg.MatchCache.Enabled {
		path = cfg.MatchCache.Path
	}
	return matchcache.NewCache(path, logger)
}

// withStore opens the library store for the duration of fn.
func (c *commandContext) withStore(fn func(*library.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := library.Open(cfg)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatOptionalInt(value *int) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}

func formatOptionalFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *value)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
