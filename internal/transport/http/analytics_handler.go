package http

import (
	"log/slog"
	"net/http"

	"storelens/internal/analytics"
)

// AnalyticsService is the adapter surface the handler depends on.
type AnalyticsService interface {
	Settlement(startDate, endDate string) (*analytics.SettlementData, error)
	SettlementMonthly() ([]analytics.SettlementMonthly, error)
	Sales(startDate, endDate string) (*analytics.SalesData, error)
	AdSpend(startDate, endDate string) (*analytics.AdSpendData, error)
	Timeslot(startDate, endDate string) (*analytics.TimeslotData, error)
}

// AnalyticsHandler serves the four source-analysis endpoints.
type AnalyticsHandler struct {
	service AnalyticsService
	logger  *slog.Logger
}

// NewAnalyticsHandler creates the analytics handler.
func NewAnalyticsHandler(service AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With(slog.String("component", "analytics_handler")),
	}
}

func dateRange(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("start_date"), q.Get("end_date")
}

// GetSettlement handles GET /api/settle_data.
func (h *AnalyticsHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	data, err := h.service.Settlement(start, end)
	if err != nil {
		h.logger.Error("settlement analysis failed", slog.String("error", err.Error()))
		respondError(w, r, err, "정산 데이터 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, data)
}

// GetSettlementMonthly handles GET /api/settle_data/monthly.
func (h *AnalyticsHandler) GetSettlementMonthly(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.SettlementMonthly()
	if err != nil {
		h.logger.Error("monthly settlement analysis failed", slog.String("error", err.Error()))
		respondError(w, r, err, "월별 데이터 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, data)
}

// GetSales handles GET /api/sales_performance.
func (h *AnalyticsHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	data, err := h.service.Sales(start, end)
	if err != nil {
		h.logger.Error("sales analysis failed", slog.String("error", err.Error()))
		respondError(w, r, err, "판매성과 데이터 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, data)
}

// GetAdSpend handles GET /api/ad_data.
func (h *AnalyticsHandler) GetAdSpend(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	data, err := h.service.AdSpend(start, end)
	if err != nil {
		h.logger.Error("ad spend analysis failed", slog.String("error", err.Error()))
		respondError(w, r, err, "광고비 데이터 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, data)
}

// GetTimeslot handles GET /api/timeslot_data.
func (h *AnalyticsHandler) GetTimeslot(w http.ResponseWriter, r *http.Request) {
	start, end := dateRange(r)
	data, err := h.service.Timeslot(start, end)
	if err != nil {
		h.logger.Error("timeslot analysis failed", slog.String("error", err.Error()))
		respondError(w, r, err, "시간대 데이터 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, data)
}
