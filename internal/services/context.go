package services

import "context"

type contextKey string

const (
	queryKey     contextKey = "query"
	volumeIDKey  contextKey = "volume_id"
	requestIDKey contextKey = "request_id"
)

// WithQuery annotates context with the raw resolution query.
func WithQuery(ctx context.Context, query string) context.Context {
	if query == "" {
		return ctx
	}
	return context.WithValue(ctx, queryKey, query)
}

// QueryFromContext extracts the resolution query if present.
func QueryFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(queryKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithVolumeID annotates context with a Google Books volume identifier.
func WithVolumeID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, volumeIDKey, id)
}

// VolumeIDFromContext extracts the volume identifier if present.
func VolumeIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(volumeIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
