package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vuapod/orderstats-backend/internal/insights"
	"github.com/vuapod/orderstats-backend/internal/upstream"
	pkgerrors "github.com/vuapod/orderstats-backend/pkg/errors"
)

// resolveWindow parses the startDate/endDate/app query parameters. startDate
// is required; endDate defaults to zero, which downstream treats as open-ended.
func resolveWindow(r *http.Request) (upstream.Window, error) {
	query := r.URL.Query()

	rawStart := strings.TrimSpace(query.Get("startDate"))
	if rawStart == "" {
		return upstream.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "startDate is required")
	}
	start, err := strconv.ParseInt(rawStart, 10, 64)
	if err != nil || start < 0 {
		return upstream.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "startDate must be a unix timestamp")
	}

	var end int64
	if rawEnd := strings.TrimSpace(query.Get("endDate")); rawEnd != "" {
		end, err = strconv.ParseInt(rawEnd, 10, 64)
		if err != nil || end < 0 {
			return upstream.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "endDate must be a unix timestamp")
		}
	}
	if end != 0 && end < start {
		return upstream.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "endDate must not precede startDate")
	}

	app := strings.TrimSpace(query.Get("app"))
	switch app {
	case "", insights.AppParadis, insights.AppPersoliebe:
	default:
		return upstream.Window{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown app")
	}

	return upstream.Window{StartDate: start, EndDate: end, App: app}, nil
}
