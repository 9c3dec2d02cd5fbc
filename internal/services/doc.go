// Package services holds cross-cutting plumbing shared by quire's service
// packages: sentinel error markers with a uniform wrapping helper, and typed
// context keys that carry resolution identifiers into structured logs.
package services
