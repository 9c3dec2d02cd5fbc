// Package matchcache provides a local cache mapping normalized title queries
// to Google Books volume ids.
//
// Once a query has been fuzzily matched, the cached id is authoritative:
// subsequent resolutions of the same logical item skip title parsing, search,
// and candidate selection, fetching fresh metadata directly by id.
//
// # Storage
//
// The cache is a human-readable JSON file at a configurable path (default:
// ~/.cache/quire/match_cache.json), written atomically on every mutation.
//
// CLI commands for inspection and management:
//
//	quire cache list           # List all cached mappings
//	quire cache remove <key>   # Remove one entry
//	quire cache clear          # Remove all entries
package matchcache
