package controllers

import (
	"context"
	"net/http"

	"github.com/vuapod/orderstats-backend/api/responses"
	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/internal/reports"
	"github.com/vuapod/orderstats-backend/internal/upstream"
	"github.com/vuapod/orderstats-backend/pkg/logger"
)

// ReportService is the slice of the reports service the order endpoints use.
type ReportService interface {
	FetchWindow(ctx context.Context, window upstream.Window) (*insights.StatsResponse, error)
	Report(ctx context.Context, window upstream.Window) (*reports.Report, error)
	Sync(ctx context.Context) error
}

// ContributionMargin returns the normalized upstream payload for a window.
func ContributionMargin(service ReportService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		window, err := resolveWindow(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithWindow(ctx, window.StartDate, window.EndDate, window.App)
		}

		payload, err := service.FetchWindow(ctx, window)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, payload)
	}
}

// OrdersReport returns KPIs, previous-window deltas, daily buckets and chart
// series for a window.
func OrdersReport(service ReportService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		window, err := resolveWindow(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithWindow(ctx, window.StartDate, window.EndDate, window.App)
		}

		report, err := service.Report(ctx, window)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// SyncOrders asks the upstream to re-ingest orders and drops cached reports.
func SyncOrders(service ReportService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := service.Sync(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "syncing"})
	}
}
