package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vuapod/orderstats-backend/api/controllers"
	"github.com/vuapod/orderstats-backend/api/middleware"
	"github.com/vuapod/orderstats-backend/internal/auth"
	"github.com/vuapod/orderstats-backend/pkg/config"
	"github.com/vuapod/orderstats-backend/pkg/logger"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Config        *config.Config
	Logger        *logger.Logger
	Registry      *prometheus.Registry
	AuthService   auth.Service
	ReportService controllers.ReportService
	Checks        []controllers.HealthCheck
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.CORS(),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Checks...))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(deps.AuthService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/api/v1/orders/contribution-margin", controllers.ContributionMargin(deps.ReportService, logg))
		r.Get("/api/v1/orders/report", controllers.OrdersReport(deps.ReportService, logg))
		r.Post("/api/v1/orders", controllers.SyncOrders(deps.ReportService, logg))
	})

	return r
}
