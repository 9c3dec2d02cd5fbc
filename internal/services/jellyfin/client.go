package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"quire/internal/bookid"
	"quire/internal/config"
)

// Service defines the Jellyfin operations used when pushing metadata.
type Service interface {
	UpdateItem(ctx context.Context, itemID string, meta bookid.Metadata) error
	Refresh(ctx context.Context) error
}

// HTTPDoer describes the HTTP client used by the Jellyfin service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// itemUpdate mirrors the Jellyfin item update payload for the fields quire
// maps. ProviderIds carries the Google Books volume id so repeat syncs match
// by identifier instead of name.
type itemUpdate struct {
	Name            string            `json:"Name"`
	Overview        string            `json:"Overview"`
	ProductionYear  *int              `json:"ProductionYear,omitempty"`
	Studios         []studioRef       `json:"Studios,omitempty"`
	Tags            []string          `json:"Tags,omitempty"`
	CommunityRating *float64          `json:"CommunityRating,omitempty"`
	ProviderIds     map[string]string `json:"ProviderIds,omitempty"`
}

type studioRef struct {
	Name string `json:"Name"`
}

type httpService struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

// NewConfiguredService returns a sink that pushes metadata into Jellyfin when
// the integration is enabled and credentialed, and a no-op otherwise.
func NewConfiguredService(cfg *config.Config) Service {
	if cfg == nil || !cfg.Jellyfin.Enabled {
		return noopService{}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Jellyfin.URL), "/")
	apiKey := strings.TrimSpace(cfg.Jellyfin.APIKey)
	if baseURL == "" || apiKey == "" {
		return noopService{}
	}
	return &httpService{baseURL: baseURL, apiKey: apiKey, client: http.DefaultClient}
}

// NewHTTPService constructs an HTTP-backed Jellyfin sink.
func NewHTTPService(baseURL, apiKey string, client HTTPDoer) Service {
	return &httpService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  client,
	}
}

func (s *httpService) UpdateItem(ctx context.Context, itemID string, meta bookid.Metadata) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return fmt.Errorf("jellyfin item id required")
	}

	update := itemUpdate{
		Name:            meta.Name,
		Overview:        meta.Overview,
		ProductionYear:  meta.ProductionYear,
		Tags:            meta.Tags,
		CommunityRating: meta.CommunityRating,
	}
	for _, studio := range meta.Studios {
		update.Studios = append(update.Studios, studioRef{Name: studio})
	}
	if meta.ExternalID != "" {
		update.ProviderIds = map[string]string{"GoogleBooks": meta.ExternalID}
	}

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("marshal item update: %w", err)
	}

	updateURL := fmt.Sprintf("%s/Items/%s", s.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, updateURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build jellyfin update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Emby-Token", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("update jellyfin item: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("jellyfin item update returned %d", resp.StatusCode)
	}
	return nil
}

func (s *httpService) Refresh(ctx context.Context) error {
	refreshURL := fmt.Sprintf("%s/Library/Refresh", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, refreshURL, nil)
	if err != nil {
		return fmt.Errorf("build jellyfin refresh request: %w", err)
	}
	req.Header.Set("X-Emby-Token", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("refresh jellyfin library: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("jellyfin refresh returned %d", resp.StatusCode)
	}
	return nil
}

// noopService satisfies Service when the integration is disabled.
type noopService struct{}

func (noopService) UpdateItem(context.Context, string, bookid.Metadata) error { return nil }

func (noopService) Refresh(context.Context) error { return nil }
