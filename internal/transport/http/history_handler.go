package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"storelens/internal/history"
)

// HistoryStore is the history surface the handler depends on.
type HistoryStore interface {
	Save(module string, inputs history.Inputs, results history.Results, metadata history.Metadata) (string, error)
	List(filter history.ListFilter) ([]history.Record, error)
	Delete(id string) error
	Statistics() (*history.Statistics, error)
	Export() ([]byte, string, error)
}

// HistoryHandler serves the analysis history endpoints.
type HistoryHandler struct {
	store  HistoryStore
	logger *slog.Logger
}

// NewHistoryHandler creates the history handler.
func NewHistoryHandler(store HistoryStore, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{
		store:  store,
		logger: logger.With(slog.String("component", "history_handler")),
	}
}

// saveRequest is the body of POST /api/save_analysis.
type saveRequest struct {
	Module   string           `json:"module"`
	Inputs   history.Inputs   `json:"inputs"`
	Results  history.Results  `json:"results"`
	Metadata history.Metadata `json:"metadata"`
}

// SaveAnalysis handles POST /api/save_analysis.
func (h *HistoryHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, err, "저장 중 오류가 발생했습니다: 잘못된 요청 형식입니다.")
		return
	}

	id, err := h.store.Save(req.Module, req.Inputs, req.Results, req.Metadata)
	if err != nil {
		h.logger.Error("history save failed", slog.String("error", err.Error()))
		respondError(w, r, err, "저장 중 오류가 발생했습니다.")
		return
	}
	respondMessage(w, r, "분석 결과가 저장되었습니다.", id)
}

// GetHistory handles GET /api/get_history.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.store.List(history.ListFilter{
		Module:    q.Get("module"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Limit:     q.Get("limit"),
	})
	if err != nil {
		h.logger.Error("history list failed", slog.String("error", err.Error()))
		respondError(w, r, err, "조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, records)
}

// DeleteHistory handles DELETE /api/delete_history/{history_id}.
func (h *HistoryHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "history_id")
	if err := h.store.Delete(id); err != nil {
		h.logger.Error("history delete failed",
			slog.String("id", id),
			slog.String("error", err.Error()))
		respondError(w, r, err, "삭제 중 오류가 발생했습니다.")
		return
	}
	respondMessage(w, r, "기록이 삭제되었습니다.", "")
}

// GetStatistics handles GET /api/statistics.
func (h *HistoryHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Statistics()
	if err != nil {
		h.logger.Error("history statistics failed", slog.String("error", err.Error()))
		respondError(w, r, err, "통계 조회 중 오류가 발생했습니다.")
		return
	}
	respondData(w, r, stats)
}

// ExportHistory handles GET /api/export_history, streaming the workbook as
// an attachment.
func (h *HistoryHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.store.Export()
	if err != nil {
		h.logger.Error("history export failed", slog.String("error", err.Error()))
		respondError(w, r, err, "내보내기 중 오류가 발생했습니다.")
		return
	}

	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
