// Package googlebooks is a thin HTTP client for the Google Books volumes API.
//
// It exposes exactly the two request shapes identification needs: a title
// search over a fixed result window and a volume fetch by id. Retry, backoff,
// and caching policy are deliberately left to callers.
package googlebooks
