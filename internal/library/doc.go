// Package library persists resolved book metadata in a SQLite catalog.
//
// Every successful resolution is upserted by volume id together with the
// query that produced it, so the CLI can answer "what has quire resolved"
// without re-contacting Google Books. A file lock next to the database keeps
// concurrent quire processes from interleaving writes.
package library
