package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/youjiac/baseball/internal/logger"
	"github.com/youjiac/baseball/internal/storage"
	"github.com/youjiac/baseball/internal/team"
)

// DefaultTTL is the freshness threshold for the persisted snapshot.
const DefaultTTL = time.Hour

// defaultWorkers bounds the parallel per-team fetches.
const defaultWorkers = 3

// Status reports how a Load was satisfied.
type Status string

const (
	// StatusFresh means the persisted snapshot was young enough to reuse.
	StatusFresh Status = "fresh"
	// StatusRefreshed means a fetch cycle produced a new snapshot.
	StatusRefreshed Status = "refreshed"
	// StatusStale means the refresh cycle failed entirely and the previous
	// snapshot is being served instead.
	StatusStale Status = "stale"
)

// ErrRefreshFailed is returned when every team fetch failed and no previous
// snapshot exists to fall back on.
var ErrRefreshFailed = errors.New("refresh failed: no team data available")

// TeamFetcher is the fetching capability the controller depends on.
type TeamFetcher interface {
	FetchTeam(ctx context.Context, code team.Code) (*team.TeamRecord, error)
	RecentResults(ctx context.Context) ([]team.GameResult, error)
}

// Result is the outcome of a Load or Refresh call.
type Result struct {
	Snapshot *team.Snapshot
	Status   Status
	Failed   []team.Code // teams absent from this cycle, in fetch order
}

// Controller is the freshness cache over the persisted snapshot.
type Controller struct {
	store   *storage.Storage
	fetcher TeamFetcher
	ttl     time.Duration
	workers int
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithTTL overrides the freshness threshold.
func WithTTL(ttl time.Duration) Option {
	return func(c *Controller) { c.ttl = ttl }
}

// WithWorkers overrides the per-team fetch parallelism.
func WithWorkers(n int) Option {
	return func(c *Controller) { c.workers = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a freshness controller over the given storage and fetcher.
func New(store *storage.Storage, fetcher TeamFetcher, opts ...Option) *Controller {
	c := &Controller{
		store:   store,
		fetcher: fetcher,
		ttl:     DefaultTTL,
		workers: defaultWorkers,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the current snapshot, reusing the persisted copy when it is
// younger than the threshold and refetching otherwise. Derived fields are
// reapplied from the static tables on every path.
func (c *Controller) Load(ctx context.Context) (*Result, error) {
	previous, err := c.store.Load()
	switch {
	case err == nil:
		if age := c.age(previous); age < c.ttl {
			previous.ApplyDerived()
			logger.Info("serving fresh snapshot", logger.Fields{"age": age.String()})
			return &Result{Snapshot: previous, Status: StatusFresh}, nil
		}
	case errors.Is(err, storage.ErrCorrupt):
		logger.Warn("snapshot corrupt, deleting", logger.Fields{"path": c.store.Path()})
		if derr := c.store.Delete(); derr != nil {
			return nil, fmt.Errorf("recovering from corrupt snapshot: %w", derr)
		}
		previous = nil
	case errors.Is(err, storage.ErrNoSnapshot):
		previous = nil
	default:
		return nil, err
	}

	return c.refresh(ctx, previous)
}

// Refresh bypasses the freshness check and runs a full fetch cycle. The
// previous snapshot, if any, is still the fallback for a failed cycle.
func (c *Controller) Refresh(ctx context.Context) (*Result, error) {
	previous, err := c.store.Load()
	if err != nil {
		previous = nil
	}
	return c.refresh(ctx, previous)
}

// refresh fetches every team, assembles and persists a new snapshot. A team
// that fails is absent from the new snapshot; a cycle where every team fails
// serves the previous snapshot with StatusStale instead of erasing it.
func (c *Controller) refresh(ctx context.Context, previous *team.Snapshot) (*Result, error) {
	snapshot := team.NewSnapshot()

	var mu sync.Mutex
	var failed []team.Code

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, code := range team.AllCodes {
		code := code
		g.Go(func() error {
			rec, err := c.fetcher.FetchTeam(gctx, code)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("team fetch failed", logger.Fields{"team": string(code)}, err)
				failed = append(failed, code)
				return nil // failures stay isolated per team
			}
			snapshot.Teams[code] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sortByFetchOrder(failed)

	if len(snapshot.Teams) == 0 {
		if previous != nil {
			logger.Error("refresh cycle produced no data, serving stale snapshot", nil, nil)
			previous.ApplyDerived()
			return &Result{Snapshot: previous, Status: StatusStale, Failed: failed}, nil
		}
		return nil, ErrRefreshFailed
	}

	if games, err := c.fetcher.RecentResults(ctx); err != nil {
		logger.Warn("head-to-head fetch failed", logger.Fields{"reason": err.Error()})
	} else {
		// Games arrive newest first; insert oldest first so prepending keeps
		// the newest game at the front of each pair entry.
		for i := len(games) - 1; i >= 0; i-- {
			snapshot.AddHeadToHead(games[i])
		}
	}

	snapshot.ApplyDerived()

	if err := c.store.Save(snapshot); err != nil {
		logger.Error("snapshot persist failed", nil, err)
	}

	logger.Info("refresh cycle complete", logger.Fields{
		"teams":  len(snapshot.Teams),
		"failed": len(failed),
	})
	return &Result{Snapshot: snapshot, Status: StatusRefreshed, Failed: failed}, nil
}

// age computes the snapshot age with the injected clock.
func (c *Controller) age(snapshot *team.Snapshot) time.Duration {
	if snapshot != nil && !snapshot.CapturedAt.IsZero() {
		return c.now().Sub(snapshot.CapturedAt)
	}
	age, err := c.store.Age(snapshot)
	if err != nil {
		return c.ttl // unknowable age is treated as stale
	}
	return age
}

// sortByFetchOrder orders failed codes by their position in the fixed fetch
// order, so reports are deterministic regardless of goroutine scheduling.
func sortByFetchOrder(codes []team.Code) {
	rank := make(map[team.Code]int, len(team.AllCodes))
	for i, code := range team.AllCodes {
		rank[code] = i
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && rank[codes[j]] < rank[codes[j-1]]; j-- {
			codes[j], codes[j-1] = codes[j-1], codes[j]
		}
	}
}
