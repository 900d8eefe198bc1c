package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"marquee/internal/domain"
)

const (
	defaultBaseURL   = "https://www.omdbapi.com/"
	defaultTimeout   = 30 * time.Second
	defaultCacheTTL  = 5 * time.Minute
	defaultCacheSize = 256
	userAgent        = "Marquee/1.0"

	minTermLen     = 2
	maxSuggestions = 6
)

// Config holds catalog client settings. Zero fields fall back to
// package defaults.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

// Client implements domain.CatalogRepository against the OMDb API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *responseCache
	logger     *slog.Logger
}

// NewClient creates a new OMDb catalog client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaultCacheSize
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache:  newResponseCache(cfg.CacheTTL, cfg.CacheSize),
		logger: logger,
	}
}

// doRequest performs an authenticated GET and returns the raw body.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("omdb request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &domain.UpstreamError{Message: "invalid API key"}
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// searchKey builds the cache fingerprint for a search query.
func searchKey(term string, filters domain.Filters, page int) string {
	return fmt.Sprintf("search:%s|%s|%s|%d", strings.ToLower(term), filters.Type, filters.Year, page)
}

// Search returns one page of results for a term. Identical queries
// inside the cache window are served from memory.
func (c *Client) Search(ctx context.Context, term string, filters domain.Filters, page int) (*domain.SearchPage, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < minTermLen {
		return nil, &domain.ValidationError{Reason: "search term must be at least 2 characters long"}
	}
	if page < 1 {
		page = 1
	}

	key := searchKey(term, filters, page)
	if cached, ok := c.cache.get(key); ok {
		c.logger.Debug("cache hit", "key", key)
		return cached.(*domain.SearchPage), nil
	}

	query := url.Values{}
	query.Set("s", term)
	query.Set("page", strconv.Itoa(page))
	if filters.Type != "" {
		query.Set("type", string(filters.Type))
	}
	if filters.Year != "" {
		query.Set("y", filters.Year)
	}

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Error != "" {
		// Zero matches are not a failure; everything else is.
		if isNotFoundMessage(resp.Error) {
			result := &domain.SearchPage{Items: []*domain.CatalogItem{}, TotalResults: 0, Page: page}
			c.cache.put(key, result)
			return result, nil
		}
		return nil, &domain.UpstreamError{Message: resp.Error}
	}

	items := make([]*domain.CatalogItem, 0, len(resp.Search))
	for _, raw := range resp.Search {
		items = append(items, mapItem(raw))
	}

	total, _ := strconv.Atoi(resp.TotalResults)
	result := &domain.SearchPage{Items: items, TotalResults: total, Page: page}
	c.cache.put(key, result)

	c.logger.Debug("search complete", "term", term, "page", page, "total", total)
	return result, nil
}

// GetDetails returns the full record for an item id.
func (c *Client) GetDetails(ctx context.Context, id string) (*domain.CatalogItem, error) {
	if id == "" {
		return nil, &domain.ValidationError{Reason: "item id is required"}
	}

	key := "item:" + id
	if cached, ok := c.cache.get(key); ok {
		c.logger.Debug("cache hit", "key", key)
		return cached.(*domain.CatalogItem), nil
	}

	query := url.Values{}
	query.Set("i", id)
	query.Set("plot", "full")

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Error != "" {
		if isNotFoundMessage(resp.Error) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.UpstreamError{Message: resp.Error}
	}

	item := mapDetail(resp)
	c.cache.put(key, item)
	return item, nil
}

// Suggestions searches on the first two words of a title and returns
// up to six related items, excluding the item itself.
func (c *Client) Suggestions(ctx context.Context, title, excludeID string) ([]*domain.CatalogItem, error) {
	words := strings.Fields(title)
	if len(words) > 2 {
		words = words[:2]
	}
	keywords := strings.Join(words, " ")

	page, err := c.Search(ctx, keywords, domain.Filters{}, 1)
	if err != nil {
		return nil, err
	}

	suggestions := make([]*domain.CatalogItem, 0, maxSuggestions)
	for _, item := range page.Items {
		if item.ID == excludeID {
			continue
		}
		suggestions = append(suggestions, item)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}

// ClearCache discards all cached responses. In-flight requests still
// store their results under their original fingerprint.
func (c *Client) ClearCache() {
	c.cache.clear()
	c.logger.Debug("cleared response cache")
}

// isNotFoundMessage matches the upstream "not found" family of error
// strings ("Movie not found!", "Series not found!", ...).
func isNotFoundMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "not found")
}
