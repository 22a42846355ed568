// Package scryfall is the HTTP client for the Scryfall API: rate
// limited, circuit broken, and cached.
package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cardsage/scryfall-search/internal/cache"
	"github.com/cardsage/scryfall-search/internal/metrics"
	"github.com/cardsage/scryfall-search/internal/models"
)

const (
	DefaultBaseURL   = "https://api.scryfall.com"
	defaultUserAgent = "scryfall-search/1.0 (github.com/cardsage/scryfall-search)"
	defaultAccept    = "application/json;q=0.9,*/*;q=0.8"
)

// Config holds the client's tunables. Zero values fall back to the
// documented Scryfall guidance.
type Config struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	MaxRetries       int
	RateInterval     time.Duration
	FailureThreshold int
	RecoveryTimeout  time.Duration
}

// Client talks to the Scryfall API, reading through the cache where
// one is configured.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *Limiter
	breaker    *CircuitBreaker
	store      cache.Cache
	ttls       cache.TTLConfig
	maxRetries int
	sleep      func(context.Context, time.Duration) error
}

// NewClient builds a client. Pass cache.Noop{} to disable caching.
func NewClient(cfg Config, store cache.Cache, ttls cache.TTLConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RateInterval <= 0 {
		cfg.RateInterval = 100 * time.Millisecond
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.RecoveryTimeout <= 0 {
		cfg.RecoveryTimeout = 60 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    NewLimiter(cfg.RateInterval),
		breaker:    NewCircuitBreaker(cfg.FailureThreshold, cfg.RecoveryTimeout),
		store:      store,
		ttls:       ttls,
		maxRetries: cfg.MaxRetries,
		sleep:      sleepCtx,
	}
}

// BreakerState exposes the circuit breaker state for health reporting.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// SearchCards runs a Scryfall search query. Auxiliary filters from
// opts (format, printed language, page) are applied as request
// parameters. A 404 means no matches and returns an empty result.
func (c *Client) SearchCards(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", applyFilters(query, opts))
	params.Set("unique", "cards")
	params.Set("order", "name")
	if opts.Page > 1 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Language != "" && opts.Language != "en" {
		params.Set("include_multilingual", "true")
	}

	key := cache.BuildKey("search", map[string]string{
		"q":    params.Get("q"),
		"page": strconv.Itoa(opts.Page),
		"lang": opts.Language,
	})
	var result models.SearchResult
	if c.cacheGet(ctx, "search", key, &result) {
		return &result, nil
	}

	body, status, err := c.doJSON(ctx, "/cards/search", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return &models.SearchResult{Object: "list", Data: []models.Card{}}, nil
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	c.cacheSet(ctx, key, &result, c.ttls.Search)
	return &result, nil
}

// GetCard fetches a card by Scryfall ID. Returns nil, nil when the ID
// is unknown.
func (c *Client) GetCard(ctx context.Context, id string) (*models.Card, error) {
	key := cache.BuildKey("card", map[string]string{"id": id})
	var card models.Card
	if c.cacheGet(ctx, "card", key, &card) {
		return &card, nil
	}

	body, status, err := c.doJSON(ctx, "/cards/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	c.cacheSet(ctx, key, &card, c.ttls.Card)
	return &card, nil
}

// GetCardByName resolves a card by name via /cards/named. Fuzzy
// matching tolerates misspellings; exact requires the full name.
func (c *Client) GetCardByName(ctx context.Context, name string, exact bool, setCode string) (*models.Card, error) {
	params := url.Values{}
	if exact {
		params.Set("exact", name)
	} else {
		params.Set("fuzzy", name)
	}
	if setCode != "" {
		params.Set("set", setCode)
	}

	body, status, err := c.doJSON(ctx, "/cards/named", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var card models.Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	return &card, nil
}

// Autocomplete returns card name completions for a partial name.
func (c *Client) Autocomplete(ctx context.Context, partial string) ([]string, error) {
	key := cache.BuildKey("autocomplete", map[string]string{"q": partial})
	var catalog models.Catalog
	if c.cacheGet(ctx, "autocomplete", key, &catalog) {
		return catalog.Data, nil
	}

	params := url.Values{}
	params.Set("q", partial)
	body, status, err := c.doJSON(ctx, "/cards/autocomplete", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []string{}, nil
	}

	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	c.cacheSet(ctx, key, &catalog, c.ttls.Default)
	return catalog.Data, nil
}

// RandomCard returns a random card, optionally constrained by a
// Scryfall query.
func (c *Client) RandomCard(ctx context.Context, query string) (*models.Card, error) {
	var params url.Values
	if query != "" {
		params = url.Values{}
		params.Set("q", query)
	}

	body, status, err := c.doJSON(ctx, "/cards/random", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var card models.Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	return &card, nil
}

// Sets lists every Magic set, newest first as Scryfall returns them.
func (c *Client) Sets(ctx context.Context) ([]models.Set, error) {
	key := cache.BuildKey("sets", map[string]string{"all": "1"})
	var list models.SetList
	if c.cacheGet(ctx, "sets", key, &list) {
		return list.Data, nil
	}

	body, status, err := c.doJSON(ctx, "/sets", nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return []models.Set{}, nil
	}

	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}
	c.cacheSet(ctx, key, &list, c.ttls.Set)
	return list.Data, nil
}

// doJSON executes a GET with rate limiting, circuit breaking and
// retries. It returns the raw body and status; 404 passes through so
// callers can map it to their empty value, other non-2xx statuses
// surface as *models.APIError.
func (c *Client) doJSON(ctx context.Context, endpoint string, params url.Values) ([]byte, int, error) {
	if err := c.breaker.Allow(); err != nil {
		return nil, 0, err
	}

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			metrics.ScryfallRetriesTotal.Inc()
			if err := c.sleep(ctx, time.Duration(1<<uint(attempt))*time.Second); err != nil {
				return nil, 0, err
			}
		}
		if err := c.limiter.Acquire(ctx); err != nil {
			return nil, 0, err
		}

		body, status, err := c.execute(ctx, endpoint, reqURL)
		if err != nil {
			c.limiter.RecordFailure(0)
			c.breaker.RecordFailure()
			lastErr = err
			continue
		}

		switch {
		case status == http.StatusOK || status == http.StatusNotFound:
			c.limiter.RecordSuccess()
			c.breaker.RecordSuccess()
			return body, status, nil
		case retryable(status):
			c.limiter.RecordFailure(status)
			c.breaker.RecordFailure()
			lastErr = apiError(status, body)
			log.Printf("Scryfall %s returned %d, retry %d/%d", endpoint, status, attempt+1, c.maxRetries)
			continue
		default:
			c.limiter.RecordFailure(status)
			c.breaker.RecordFailure()
			return nil, status, apiError(status, body)
		}
	}
	return nil, 0, fmt.Errorf("scryfall request failed after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) execute(ctx context.Context, endpoint, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", defaultAccept)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ScryfallRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, 0, fmt.Errorf("scryfall request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.ScryfallRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.ScryfallRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read scryfall response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func retryable(status int) bool {
	switch status {
	case 429, 502, 503, 504:
		return true
	}
	return false
}

func apiError(status int, body []byte) error {
	apiErr := &models.APIError{Status: status, Code: "unknown"}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Object != "error" {
		apiErr = &models.APIError{
			Status:  status,
			Code:    "http_error",
			Details: http.StatusText(status),
		}
	}
	return apiErr
}

func applyFilters(query string, opts models.SearchOptions) string {
	parts := []string{query}
	if opts.FormatFilter != "" {
		parts = append(parts, "f:"+opts.FormatFilter)
	}
	if opts.Language != "" && opts.Language != "en" {
		parts = append(parts, "lang:"+opts.Language)
	}
	return strings.Join(parts, " ")
}

func (c *Client) cacheGet(ctx context.Context, namespace, key string, out any) bool {
	raw, ok := c.store.Get(ctx, key)
	if !ok {
		metrics.CacheMisses.WithLabelValues(namespace).Inc()
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("Dropping corrupt cache entry %s: %v", key, err)
		c.store.Delete(ctx, key)
		metrics.CacheMisses.WithLabelValues(namespace).Inc()
		return false
	}
	metrics.CacheHits.WithLabelValues(namespace).Inc()
	return true
}

func (c *Client) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to serialize cache entry %s: %v", key, err)
		return
	}
	c.store.Set(ctx, key, raw, ttl)
}
