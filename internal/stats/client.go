package stats

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/youjiac/baseball/internal/config"
	"github.com/youjiac/baseball/internal/logger"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	pageSize  = "30"
)

// Client fetches player statistics with a per-query TTL cache.
type Client struct {
	url        string
	referer    string
	httpClient *http.Client
	cache      *queryCache
	now        func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClock overrides the time source for the client and its cache, for
// tests that exercise TTL behavior.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

// NewClient creates a statistics client from configuration.
func NewClient(cfg *config.Config, opts ...ClientOption) *Client {
	c := &Client{
		url:     cfg.StatsURL,
		referer: "https://www.cpbl.com.tw/",
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = newQueryCache(cfg.StatsTTL, c.now)
	return c
}

// Fetch returns statistics for a query, serving identical queries from cache
// within the TTL. Failures are reported in the Result, never as a panic or
// raw transport error.
func (c *Client) Fetch(ctx context.Context, q Query) Result {
	key := q.key()
	if cached, ok := c.cache.get(key); ok {
		logger.Debug("stats cache hit", logger.Fields{"query": key})
		return cached
	}

	result := c.fetch(ctx, q)
	if result.Success {
		c.cache.set(key, result)
	}
	return result
}

// fetch performs one uncached POST against the statistics endpoint.
func (c *Client) fetch(ctx context.Context, q Query) Result {
	form := url.Values{
		"Length":      {"0"},
		"ExecAction":  {"Q"},
		"Online":      {q.Active},
		"KindCode":    {q.RecordType},
		"Year":        {q.Year},
		"Position":    {q.Position},
		"DefenceType": {q.DefenceType},
		"Sortby":      {"01"},
		"GameType":    {"01"},
		"Index":       {"0"},
		"PageSize":    {pageSize},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return c.failure(ErrKindNetwork, "unable to build statistics request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Accept-Language", "zh-TW,zh;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(ErrKindNetwork, "statistics endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.failure(ErrKindNetwork, "statistics endpoint returned an error status", nil)
	}

	rows, err := parseTable(resp.Body, q.Position)
	if err != nil {
		return c.failure(ErrKindParse, "statistics response could not be parsed", err)
	}

	return Result{
		Success:   true,
		Data:      rows,
		Timestamp: c.now().UTC(),
	}
}

// failure builds an error result with a human-readable message and logs the
// underlying cause, which is never surfaced to callers.
func (c *Client) failure(kind ErrorKind, message string, err error) Result {
	logger.Error("stats fetch failed", logger.Fields{"kind": string(kind), "message": message}, err)
	return Result{
		Success:   false,
		ErrorKind: kind,
		Error:     message,
		Timestamp: c.now().UTC(),
	}
}
