// Package config loads, normalizes, and validates quire's TOML configuration.
//
// Resolution order: an explicit --config path, then
// ~/.config/quire/config.toml, then ./quire.toml. Missing files fall back to
// the built-in defaults, which are valid without any configuration at all.
package config
