package handler

import (
	"context"
	"net/http"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

// SummaryService defines the behavior needed by SummaryHandler.
type SummaryService interface {
	Summary(ctx context.Context) domain.Summary
	MonthlySeries(ctx context.Context) []domain.MonthlyPoint
	Categories(ctx context.Context) []domain.CategoryShare
}

// SummaryHandler serves the dashboard aggregates.
type SummaryHandler struct {
	summaryUC SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryUC SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryUC: summaryUC}
}

func (h *SummaryHandler) Overview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(h.summaryUC.Summary(r.Context())))
}

func (h *SummaryHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.MonthlySeriesFromDomain(h.summaryUC.MonthlySeries(r.Context())))
}

func (h *SummaryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.CategoryBreakdownFromDomain(h.summaryUC.Categories(r.Context())))
}
