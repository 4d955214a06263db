package controllers

import (
	"context"

	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/internal/reports"
	"github.com/vuapod/orderstats-backend/internal/upstream"
)

type stubReportService struct {
	payload   *insights.StatsResponse
	report    *reports.Report
	err       error
	syncErr   error
	lastCall  string
	lastQuery upstream.Window
	synced    int
}

func (s *stubReportService) FetchWindow(_ context.Context, window upstream.Window) (*insights.StatsResponse, error) {
	s.lastCall = "fetch"
	s.lastQuery = window
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func (s *stubReportService) Report(_ context.Context, window upstream.Window) (*reports.Report, error) {
	s.lastCall = "report"
	s.lastQuery = window
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func (s *stubReportService) Sync(context.Context) error {
	s.lastCall = "sync"
	s.synced++
	return s.syncErr
}

type stubAuthService struct {
	token string
	err   error
	last  [2]string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, error) {
	s.last = [2]string{username, password}
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}
