package config

const (
	defaultDataDir            = "~/.local/share/quire"
	defaultLogDir             = "~/.local/share/quire/logs"
	defaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"
	defaultPageSize           = 20
	defaultMatchCachePath     = "~/.cache/quire/match_cache.json"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		GoogleBooks: GoogleBooks{
			BaseURL:  defaultGoogleBooksBaseURL,
			PageSize: defaultPageSize,
		},
		MatchCache: MatchCache{
			Enabled: true,
			Path:    defaultMatchCachePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
