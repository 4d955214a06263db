package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/pkg/config"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
	"github.com/vuapod/orderstats-backend/pkg/metrics"
)

const (
	opContributionMargin = "contribution_margin"
	opSyncOrders         = "sync_orders"
)

// Window identifies one dashboard query: a unix-timestamp date range plus an
// optional storefront filter. EndDate 0 means open-ended.
type Window struct {
	StartDate int64
	EndDate   int64
	App       string
}

// Client talks to the external orders API that owns the raw data. It issues
// one request per call with no retries; failures surface to the caller as
// dependency errors.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	metrics *metrics.DashboardMetrics
}

// NewClient builds an orders API client from config.
func NewClient(cfg config.UpstreamConfig, m *metrics.DashboardMetrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing upstream base url: %w", err)
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		metrics: m,
	}, nil
}

// FetchContributionMargin retrieves the raw daily stats, orders, and
// new-customer records for the window. Revenue figures come back in EUR;
// normalization is the caller's job.
func (c *Client) FetchContributionMargin(ctx context.Context, window Window) (*insights.StatsResponse, error) {
	endpoint := *c.baseURL
	endpoint.Path += "/orders/contribute-margin"

	query := endpoint.Query()
	query.Set("startDate", strconv.FormatInt(window.StartDate, 10))
	if window.EndDate != 0 {
		query.Set("endDate", strconv.FormatInt(window.EndDate, 10))
	}
	if window.App != "" {
		query.Set("app", window.App)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building upstream request")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveUpstream(opContributionMargin, time.Since(started))
	if err != nil {
		c.metrics.IncUpstreamFailure(opContributionMargin)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching contribution margin")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.metrics.IncUpstreamFailure(opContributionMargin)
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("orders api returned %d", resp.StatusCode))
	}

	var payload insights.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.IncUpstreamFailure(opContributionMargin)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding contribution margin payload")
	}
	if payload.Result == nil {
		payload.Result = map[string]insights.DailyStat{}
	}
	return &payload, nil
}

// TriggerSync fires the upstream order sync. The response body carries
// nothing we consume; only the status matters.
func (c *Client) TriggerSync(ctx context.Context) error {
	endpoint := *c.baseURL
	endpoint.Path += "/orders"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building sync request")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveUpstream(opSyncOrders, time.Since(started))
	if err != nil {
		c.metrics.IncUpstreamFailure(opSyncOrders)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "triggering order sync")
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncUpstreamFailure(opSyncOrders)
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("sync returned %d", resp.StatusCode))
	}
	return nil
}

// Ping checks upstream reachability for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	drainAndClose(resp.Body)
	return nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
