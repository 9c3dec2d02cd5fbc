package bookid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"quire/internal/logging"
	"quire/internal/matchcache"
	"quire/internal/services"
	"quire/internal/services/googlebooks"
)

const componentName = "bookid"

// searchWindow is the default search page requested from Google Books.
// Matches beyond the window resolve as not found; there is no pagination.
const searchWindow = 20

// Query describes one book to resolve. VolumeID, when set, is authoritative
// and bypasses the fuzzy search entirely.
type Query struct {
	Name     string
	Year     string
	VolumeID string
}

// Match is a successful resolution. MatchedByID reports that the volume id
// was already known (query or cache); callers should not re-run fuzzy search
// for such items.
type Match struct {
	Metadata
	MatchedByID bool
}

// Resolver sequences title parsing, search, candidate selection, the volume
// fetch, and field mapping. It holds no mutable state beyond its injected
// collaborators and is safe for concurrent use.
type Resolver struct {
	books  googlebooks.Searcher
	cache  *matchcache.Cache
	logger *slog.Logger
	window int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSearchWindow overrides the default search window size. Values outside
// 1 to 40 fall back to the default; Google rejects larger pages.
func WithSearchWindow(size int) ResolverOption {
	return func(r *Resolver) {
		if size >= 1 && size <= 40 {
			r.window = size
		}
	}
}

// NewResolver wires a resolver to its collaborators. The cache may be nil to
// disable the known-id bypass; a nil logger falls back to a no-op.
func NewResolver(books googlebooks.Searcher, cache *matchcache.Cache, logger *slog.Logger, opts ...ResolverOption) (*Resolver, error) {
	if books == nil {
		return nil, errors.New("google books searcher required")
	}
	r := &Resolver{
		books:  books,
		cache:  cache,
		logger: logging.NewComponentLogger(logger, componentName),
		window: searchWindow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve turns a query into library metadata, or a services.ErrNotFound
// tagged error when no volume qualifies. Cancellation is observed at entry
// and before each network call and surfaces as the context's own error,
// distinct from not-found.
func (r *Resolver) Resolve(ctx context.Context, query Query) (*Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = services.WithRequestID(ctx, uuid.NewString())

	volumeID := strings.TrimSpace(query.VolumeID)
	name := strings.TrimSpace(query.Name)
	if volumeID == "" && name == "" {
		return nil, services.Wrap(services.ErrValidation, componentName, "resolve", "query name or volume id required", nil)
	}
	ctx = services.WithQuery(ctx, name)
	log := logging.WithContext(ctx, r.logger)

	matchedByID := volumeID != ""
	var bareName, year string
	if volumeID == "" {
		bareName, year = ParseTitle(name)
		if year == "" {
			year = strings.TrimSpace(query.Year)
		}
		if r.cache != nil {
			if entry, found := r.cache.Lookup(matchcache.Key(Normalize(bareName), year)); found {
				volumeID = entry.VolumeID
				matchedByID = true
				log.Debug("match cache hit",
					logging.String(logging.FieldVolumeID, volumeID),
					logging.String("cached_title", entry.Title))
			}
		}
	}

	if volumeID == "" {
		list, err := r.books.Search(ctx, bareName, 0, r.window)
		if err != nil {
			return nil, r.collaboratorFailure(log, "search", err)
		}
		id, found := SelectBest(Normalize(bareName), year, candidatesFrom(list))
		if !found {
			return nil, services.Wrap(services.ErrNotFound, componentName, "match",
				fmt.Sprintf("no candidate matched %q", bareName), nil)
		}
		volumeID = id
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	volume, err := r.books.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, r.collaboratorFailure(log, "volume fetch", err)
	}

	meta := MapVolume(volume, log)
	if r.cache != nil && !matchedByID {
		entry := matchcache.Entry{
			Key:      matchcache.Key(Normalize(bareName), year),
			VolumeID: volumeID,
			Title:    volume.VolumeInfo.Title,
			Year:     year,
		}
		if err := r.cache.Store(entry); err != nil {
			logging.WarnWithContext(log, "failed to cache match", "match_cache_store_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "next resolution repeats the fuzzy search"))
		}
	}
	log.Info("resolved volume",
		logging.String(logging.FieldVolumeID, volumeID),
		logging.String("title", meta.Name),
		logging.Bool("matched_by_id", matchedByID))
	return &Match{Metadata: meta, MatchedByID: matchedByID}, nil
}

// collaboratorFailure maps a transport-level failure to not-found. The
// resolver boundary does not distinguish "network down" from "no such book";
// the log line keeps the detail for diagnosis. Cancellation passes through
// untouched so callers can tell it apart.
func (r *Resolver) collaboratorFailure(log *slog.Logger, operation string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logging.ErrorWithContext(log, "google books collaborator failed", "googlebooks_unavailable",
		logging.String("operation", operation),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check network reachability and google books status"))
	return services.Wrap(services.ErrNotFound, componentName, operation, "collaborator returned no usable response", err)
}

func candidatesFrom(list *googlebooks.VolumeList) []Candidate {
	if list == nil {
		return nil
	}
	candidates := make([]Candidate, 0, len(list.Items))
	for _, item := range list.Items {
		candidates = append(candidates, Candidate{
			ID:            item.ID,
			Title:         item.VolumeInfo.Title,
			PublishedDate: item.VolumeInfo.PublishedDate,
		})
	}
	return candidates
}
