// Package jellyfin pushes resolved book metadata into a Jellyfin server.
//
// The sink is intentionally thin: one item update POST and one library
// refresh POST, both authenticated with the X-Emby-Token header. When the
// integration is disabled in configuration both operations become no-ops so
// callers never need to branch.
package jellyfin
