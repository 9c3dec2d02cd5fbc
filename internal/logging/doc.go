// Package logging assembles the structured slog loggers used across quire.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so resolution code can tag log
// lines with queries, volume ids, and correlation ids automatically. A no-op
// logger is provided for tests and wiring code that cannot fail.
package logging
