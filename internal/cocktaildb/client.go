package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/five82/barcart/internal/catalog"
)

// ShardFetcher retrieves the normalized records for one shard key.
// This interface is implemented by *Client and can be used for testing.
type ShardFetcher interface {
	FetchShard(ctx context.Context, key string) ([]catalog.Record, error)
}

// Ensure Client implements ShardFetcher at compile time.
var _ ShardFetcher = (*Client)(nil)

// Client talks to the TheCocktailDB JSON API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

const (
	// DefaultBaseURL is the free public API tier.
	DefaultBaseURL        = "https://www.thecocktaildb.com/api/json/v1/1/"
	DefaultRequestTimeout = 15 * time.Second

	defaultUserAgent = "barcart/0.1"
	searchPath       = "search.php"
)

// Options configure a Client. The zero value talks to DefaultBaseURL with
// no timeout override and no rate limit.
type Options struct {
	BaseURL           string
	Timeout           time.Duration // zero disables the per-request timeout
	RequestsPerSecond float64       // zero or negative means unlimited
	HTTPClient        *http.Client
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	burst := 1
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
		burst = max(1, int(opts.RequestsPerSecond))
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: defaultUserAgent,
		limiter:   rate.NewLimiter(limit, burst),
	}, nil
}

// SearchByLetter returns the raw drinks whose name starts with letter.
// A null drinks payload yields an empty slice and no error.
func (c *Client) SearchByLetter(ctx context.Context, letter string) ([]Drink, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return nil, fmt.Errorf("shard key required")
	}

	values := url.Values{}
	values.Set("f", letter)
	rel := &url.URL{Path: searchPath, RawQuery: values.Encode()}

	var payload SearchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.Drinks, nil
}

// FetchShard fetches one letter and normalizes the entries.
func (c *Client) FetchShard(ctx context.Context, key string) ([]catalog.Record, error) {
	drinks, err := c.SearchByLetter(ctx, key)
	if err != nil {
		return nil, err
	}
	return NormalizeAll(drinks), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
