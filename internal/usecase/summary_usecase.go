package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// SummaryUseCase derives dashboard aggregates from the current collection.
// Nothing is cached; every call recomputes from the latest snapshot.
type SummaryUseCase struct {
	source TransactionSource
	clock  Clock
}

// NewSummaryUseCase creates a new SummaryUseCase.
func NewSummaryUseCase(source TransactionSource, clock Clock) *SummaryUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &SummaryUseCase{
		source: source,
		clock:  clock,
	}
}

// Summary returns totals, this month's figures, counts and extremes.
func (uc *SummaryUseCase) Summary(ctx context.Context) domain.Summary {
	return domain.Summarize(uc.source.Snapshot(ctx), uc.clock.Now())
}

// MonthlySeries returns the trailing six months, oldest first.
func (uc *SummaryUseCase) MonthlySeries(ctx context.Context) []domain.MonthlyPoint {
	return domain.MonthlySeries(uc.source.Snapshot(ctx), uc.clock.Now())
}

// Categories returns the expense breakdown by category.
func (uc *SummaryUseCase) Categories(ctx context.Context) []domain.CategoryShare {
	return domain.CategoryBreakdown(uc.source.Snapshot(ctx))
}
