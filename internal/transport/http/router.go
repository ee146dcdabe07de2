package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storelens/internal/config"
)

// NewRouter assembles the full route tree: the analytics and history APIs
// under /api plus the Prometheus endpoint.
func NewRouter(cfg *config.Config, service AnalyticsService, store HistoryStore, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)
	r.Use(RateLimit(cfg.RateLimit))

	analyticsHandler := NewAnalyticsHandler(service, logger)
	historyHandler := NewHistoryHandler(store, logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/settle_data", analyticsHandler.GetSettlement)
		r.Get("/settle_data/monthly", analyticsHandler.GetSettlementMonthly)
		r.Get("/sales_performance", analyticsHandler.GetSales)
		r.Get("/ad_data", analyticsHandler.GetAdSpend)
		r.Get("/timeslot_data", analyticsHandler.GetTimeslot)

		r.Post("/save_analysis", historyHandler.SaveAnalysis)
		r.Get("/get_history", historyHandler.GetHistory)
		r.Delete("/delete_history/{history_id}", historyHandler.DeleteHistory)
		r.Get("/statistics", historyHandler.GetStatistics)
		r.Get("/export_history", historyHandler.ExportHistory)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
