package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/internal/upstream"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
	"github.com/vuapod/orderstats-backend/pkg/logger"
	"github.com/vuapod/orderstats-backend/pkg/metrics"
	"github.com/vuapod/orderstats-backend/pkg/redis"
)

// Fetcher is the upstream orders API surface the service depends on.
type Fetcher interface {
	FetchContributionMargin(ctx context.Context, window upstream.Window) (*insights.StatsResponse, error)
	TriggerSync(ctx context.Context) error
}

// Cache is the query-cache surface, keyed by (startDate, endDate, app).
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ReportKey(startDate, endDate int64, app string) string
	InvalidateReports(ctx context.Context) (int, error)
}

// Service orchestrates fetch, cache, normalization, and aggregation for the
// dashboard. The raw upstream payload is what gets cached; normalization
// runs on every read so each served payload is converted exactly once, on
// both the cache-hit and cache-miss paths.
type Service struct {
	fetcher   Fetcher
	cache     Cache
	cacheTTL  time.Duration
	rates     insights.Rates
	policy    insights.TimezonePolicy
	projector insights.ProjectorOptions
	logg      *logger.Logger
	metrics   *metrics.DashboardMetrics
}

// ServiceParams wires the service dependencies.
type ServiceParams struct {
	Fetcher   Fetcher
	Cache     Cache
	CacheTTL  time.Duration
	Rates     insights.Rates
	Policy    insights.TimezonePolicy
	Projector insights.ProjectorOptions
	Logger    *logger.Logger
	Metrics   *metrics.DashboardMetrics
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Fetcher == nil {
		return nil, fmt.Errorf("upstream fetcher required")
	}
	if params.Rates == (insights.Rates{}) {
		params.Rates = insights.DefaultRates
	}
	if params.Projector.Rates == (insights.Rates{}) {
		params.Projector.Rates = params.Rates
	}
	return &Service{
		fetcher:   params.Fetcher,
		cache:     params.Cache,
		cacheTTL:  params.CacheTTL,
		rates:     params.Rates,
		policy:    params.Policy,
		projector: params.Projector,
		logg:      params.Logger,
		metrics:   params.Metrics,
	}, nil
}

// FetchWindow returns the normalized payload for a query window, reading
// through the cache.
func (s *Service) FetchWindow(ctx context.Context, window upstream.Window) (*insights.StatsResponse, error) {
	raw, err := s.fetchRaw(ctx, window)
	if err != nil {
		return nil, err
	}

	normalized := &insights.StatsResponse{
		Result:       insights.NormalizeStats(raw.Result, s.rates),
		Orders:       raw.Orders,
		NewCustomers: raw.NewCustomers,
	}
	return normalized, nil
}

func (s *Service) fetchRaw(ctx context.Context, window upstream.Window) (*insights.StatsResponse, error) {
	if s.cache == nil {
		return s.fetcher.FetchContributionMargin(ctx, window)
	}

	key := s.cache.ReportKey(window.StartDate, window.EndDate, window.App)
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var payload insights.StatsResponse
		if decodeErr := json.Unmarshal([]byte(cached), &payload); decodeErr == nil {
			s.metrics.IncCacheHit(window.App)
			return &payload, nil
		}
		// Corrupt entry; fall through to a fresh fetch.
		if s.logg != nil {
			s.logg.Warn(ctx, "discarding undecodable cache entry")
		}
	case !errors.Is(err, redis.ErrCacheMiss):
		// Cache trouble must not take the dashboard down.
		if s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("report cache read failed: %v", err))
		}
	}
	s.metrics.IncCacheMiss(window.App)

	payload, err := s.fetcher.FetchContributionMargin(ctx, window)
	if err != nil {
		return nil, err
	}

	if encoded, encodeErr := json.Marshal(payload); encodeErr == nil {
		if setErr := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); setErr != nil && s.logg != nil {
			s.logg.Warn(ctx, fmt.Sprintf("report cache write failed: %v", setErr))
		}
	}
	return payload, nil
}

// Report assembles the full dashboard payload for a window: current and
// previous-period KPIs with deltas, the overview chart series, and per-day
// order groupings with drill-down fields. The current and previous windows
// are fetched concurrently; each failure surfaces, never retries.
func (s *Service) Report(ctx context.Context, window upstream.Window) (*Report, error) {
	prevStart, prevEnd := insights.PreviousWindow(window.StartDate, window.EndDate)
	prevWindow := upstream.Window{StartDate: prevStart, EndDate: prevEnd, App: window.App}

	var (
		wg          sync.WaitGroup
		current     *insights.StatsResponse
		previous    *insights.StatsResponse
		currentErr  error
		previousErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = s.FetchWindow(ctx, window)
	}()
	go func() {
		defer wg.Done()
		previous, previousErr = s.FetchWindow(ctx, prevWindow)
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if previousErr != nil {
		return nil, previousErr
	}

	currentMetrics := insights.CalculateMetrics(current.Result, current.NewCustomers, s.rates)
	previousMetrics := insights.CalculateMetrics(previous.Result, previous.NewCustomers, s.rates)

	groups := insights.GroupByDay(current.Result, current.Orders, s.policy)
	days := make([]DailyGroup, len(groups))
	for i, group := range groups {
		days[i] = DailyGroup{
			Stats:  group.Stats,
			Orders: insights.ProjectOrders(group.Orders, s.projector),
		}
	}

	return &Report{
		Window:     WindowInfo{StartDate: window.StartDate, EndDate: window.EndDate, App: window.App},
		Previous:   WindowInfo{StartDate: prevStart, EndDate: prevEnd, App: window.App},
		Metrics:    currentMetrics,
		PrevValues: previousMetrics,
		Comparison: Compare(currentMetrics, previousMetrics),
		Chart:      insights.TransformChart(current.Result),
		Bars:       insights.TransformBars(current.Result),
		Days:       days,
	}, nil
}

// Sync triggers an upstream order sync and, on success, drops every cached
// report window so the next fetch sees fresh data.
func (s *Service) Sync(ctx context.Context) error {
	if err := s.fetcher.TriggerSync(ctx); err != nil {
		s.metrics.IncSync("failure")
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order sync failed")
	}
	s.metrics.IncSync("success")

	if s.cache != nil {
		deleted, err := s.cache.InvalidateReports(ctx)
		if err != nil {
			// The sync itself succeeded; stale entries expire via TTL.
			if s.logg != nil {
				s.logg.Warn(ctx, fmt.Sprintf("cache invalidation failed after sync: %v", err))
			}
			return nil
		}
		if s.logg != nil {
			s.logg.Info(ctx, fmt.Sprintf("invalidated %d cached report windows", deleted))
		}
	}
	return nil
}
