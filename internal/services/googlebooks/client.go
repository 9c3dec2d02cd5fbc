package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// VolumeInfo carries the Google Books metadata fields quire consumes.
type VolumeInfo struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	MainCategory  string   `json:"mainCategory"`
	Categories    []string `json:"categories"`
	AverageRating *float64 `json:"averageRating"`
}

// Volume is a single Google Books record.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeList models the paginated volumes search response.
type VolumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Searcher defines the Google Books operations used by identification.
type Searcher interface {
	Search(ctx context.Context, query string, startIndex, maxResults int) (*VolumeList, error)
	GetVolume(ctx context.Context, volumeID string) (*Volume, error)
}

// Client provides access to the Google Books volumes API.
type Client struct {
	apiKey     string
	baseURL    string
	country    string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Google Books client. The API key is optional; the public
// volumes endpoints serve unauthenticated requests at a lower quota.
func New(apiKey, baseURL, country string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("google books base url required")
	}
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    strings.TrimSpace(country),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries the volumes endpoint for the supplied title fragment.
func (c *Client) Search(ctx context.Context, query string, startIndex, maxResults int) (*VolumeList, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/volumes")
	if err != nil {
		return nil, fmt.Errorf("parse google books url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	if c.country != "" {
		params.Set("country", c.country)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload VolumeList
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode google books response: %w", err)
	}
	return &payload, nil
}

// GetVolume fetches a single volume by Google Books id.
func (c *Client) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	volumeID = strings.TrimSpace(volumeID)
	if volumeID == "" {
		return nil, errors.New("volume id must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/volumes/" + url.PathEscape(volumeID))
	if err != nil {
		return nil, fmt.Errorf("parse google books url: %w", err)
	}
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	if c.country != "" {
		params.Set("country", c.country)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books volume fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Volume
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode volume response: %w", err)
	}
	return &payload, nil
}
