package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/youjiac/baseball/internal/config"
	"github.com/youjiac/baseball/internal/extract"
	"github.com/youjiac/baseball/internal/logger"
	"github.com/youjiac/baseball/internal/team"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher retrieves team pages and league tables from the CPBL site.
type Fetcher struct {
	teamURL      string
	standingsURL string
	venueURL     string
	scheduleURL  string

	client      *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	dataDir     string
}

// New creates a Fetcher from configuration. The data directory is created
// eagerly so debug artifacts can always be written.
func New(cfg *config.Config) (*Fetcher, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 3
	}

	return &Fetcher{
		teamURL:      cfg.TeamBaseURL,
		standingsURL: cfg.StandingsURL,
		venueURL:     cfg.VenueSplitsURL,
		scheduleURL:  cfg.ScheduleURL,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		maxAttempts: attempts,
		dataDir:     cfg.DataDir,
	}, nil
}

// FetchTeam fetches and parses one team's roster page, then merges in its
// standing, venue split, and recent trend. Sub-fetch failures for the league
// tables leave those fields empty rather than failing the team.
func (f *Fetcher) FetchTeam(ctx context.Context, code team.Code) (*team.TeamRecord, error) {
	if !team.IsValid(code) {
		return nil, fmt.Errorf("unknown team code %q", code)
	}

	logger.Info("fetching team page", logger.Fields{"team": string(code)})

	params := url.Values{"ClubNo": {string(code)}}
	body, err := f.getWithRetry(ctx, f.teamURL, params, f.debugPath(code))
	if err != nil {
		return nil, fmt.Errorf("fetching team %s: %w", code, err)
	}

	rec, err := extract.TeamPage(bytes.NewReader(body), code)
	if err != nil {
		return nil, fmt.Errorf("parsing team %s: %w", code, err)
	}

	if standings, err := f.Standings(ctx); err != nil {
		logger.Warn("standings fetch failed", logger.Fields{"team": string(code), "reason": err.Error()})
	} else if s, ok := standings[code]; ok {
		rec.Standing = s
	}

	if splits, err := f.VenueSplits(ctx); err != nil {
		logger.Warn("venue split fetch failed", logger.Fields{"team": string(code), "reason": err.Error()})
	} else if v, ok := splits[code]; ok {
		rec.VenueSplit = v
	}

	if games, err := f.RecentResults(ctx); err != nil {
		logger.Warn("schedule fetch failed", logger.Fields{"team": string(code), "reason": err.Error()})
	} else {
		rec.RecentTrend = trendFor(code, games)
	}

	return rec, nil
}

// Standings fetches and parses the league standings table.
func (f *Fetcher) Standings(ctx context.Context) (map[team.Code]team.Standing, error) {
	body, err := f.getWithRetry(ctx, f.standingsURL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	return extract.Standings(bytes.NewReader(body))
}

// VenueSplits fetches and parses the home/away split table.
func (f *Fetcher) VenueSplits(ctx context.Context) (map[team.Code]team.VenueSplit, error) {
	body, err := f.getWithRetry(ctx, f.venueURL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("fetching venue splits: %w", err)
	}
	return extract.VenueSplits(bytes.NewReader(body))
}

// RecentResults fetches finished games from the schedule page, newest first.
func (f *Fetcher) RecentResults(ctx context.Context) ([]team.GameResult, error) {
	body, err := f.getWithRetry(ctx, f.scheduleURL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	games, err := extract.RecentGames(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	// The schedule page lists games chronologically; reverse to newest first.
	for i, j := 0, len(games)-1; i < j; i, j = i+1, j-1 {
		games[i], games[j] = games[j], games[i]
	}
	return games, nil
}

// trendFor filters a team's games out of the league results, keeping at most
// MaxRecentGames entries, newest first.
func trendFor(code team.Code, games []team.GameResult) []team.GameResult {
	trend := make([]team.GameResult, 0, team.MaxRecentGames)
	for _, g := range games {
		home, okHome := team.ResolveName(g.HomeTeam)
		away, okAway := team.ResolveName(g.AwayTeam)
		if (okHome && home == code) || (okAway && away == code) {
			trend = append(trend, g)
			if len(trend) == team.MaxRecentGames {
				break
			}
		}
	}
	return trend
}

// debugPath returns the per-team debug artifact path.
func (f *Fetcher) debugPath(code team.Code) string {
	return filepath.Join(f.dataDir, strings.ToLower(string(code))+"_debug.html")
}

// getWithRetry performs a rate-limited GET with exponential backoff. When an
// artifact path is given, the raw response body is written there on every
// attempt, before any status check, so failures stay inspectable.
func (f *Fetcher) getWithRetry(ctx context.Context, rawURL string, params url.Values, artifact string) ([]byte, error) {
	var body []byte

	operation := func() error {
		var err error
		body, err = f.get(ctx, rawURL, params, artifact)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(f.maxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// get performs a single rate-limited GET attempt.
func (f *Fetcher) get(ctx context.Context, rawURL string, params url.Values, artifact string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, backoff.Permanent(err)
	}

	reqURL := rawURL
	if len(params) > 0 {
		reqURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "zh-TW,zh;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if artifact != "" {
		if werr := os.WriteFile(artifact, body, 0o644); werr != nil {
			logger.Warn("debug artifact write failed", logger.Fields{"path": artifact, "reason": werr.Error()})
		}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}
}
