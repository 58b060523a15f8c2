package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
// Category is only meaningful for expenses.
func TransactionFromDomain(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		Type:        string(t.Type),
	}
	if t.IsExpense() {
		resp.Category = string(domain.Classify(t.Description))
	}
	return resp
}

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// TransactionsFromDomain converts domain transactions to a list response.
func TransactionsFromDomain(txs domain.Transactions) TransactionListResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = TransactionFromDomain(t)
	}
	return TransactionListResponse{Transactions: out, Total: len(out)}
}

// SummaryResponse is the dashboard overview.
type SummaryResponse struct {
	TotalBalance    decimal.Decimal `json:"total_balance"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	Month           string          `json:"month"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthlyNet      decimal.Decimal `json:"monthly_net"`
	LargestIncome   decimal.Decimal `json:"largest_income"`
	LargestExpense  decimal.Decimal `json:"largest_expense"`
	Count           int             `json:"count"`
	IncomeCount     int             `json:"income_count"`
	ExpenseCount    int             `json:"expense_count"`
}

// SummaryFromDomain converts a domain summary to a response.
func SummaryFromDomain(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalBalance:    s.TotalBalance,
		TotalIncome:     s.TotalIncome,
		TotalExpenses:   s.TotalExpenses,
		Month:           s.Month.Label(),
		MonthlyIncome:   s.MonthlyIncome,
		MonthlyExpenses: s.MonthlyExpenses,
		MonthlyNet:      s.MonthlyNet,
		LargestIncome:   s.Extremes.LargestIncome,
		LargestExpense:  s.Extremes.LargestExpense,
		Count:           s.Count,
		IncomeCount:     s.IncomeCount,
		ExpenseCount:    s.ExpenseCount,
	}
}

// MonthlyPointResponse is one month of the trend series.
type MonthlyPointResponse struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlySeriesResponse wraps the trend series, oldest first.
type MonthlySeriesResponse struct {
	Months []MonthlyPointResponse `json:"months"`
}

// MonthlySeriesFromDomain converts domain points to a response.
func MonthlySeriesFromDomain(points []domain.MonthlyPoint) MonthlySeriesResponse {
	out := make([]MonthlyPointResponse, len(points))
	for i, p := range points {
		out[i] = MonthlyPointResponse{
			Month:    p.Label,
			Income:   p.Income,
			Expenses: p.Expenses,
			Net:      p.Net,
		}
	}
	return MonthlySeriesResponse{Months: out}
}

// CategoryShareResponse is one slice of the expense breakdown.
type CategoryShareResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryBreakdownResponse wraps the expense breakdown.
type CategoryBreakdownResponse struct {
	Categories []CategoryShareResponse `json:"categories"`
}

// CategoryBreakdownFromDomain converts domain shares to a response.
func CategoryBreakdownFromDomain(shares []domain.CategoryShare) CategoryBreakdownResponse {
	out := make([]CategoryShareResponse, len(shares))
	for i, s := range shares {
		out[i] = CategoryShareResponse{
			Category:   string(s.Category),
			Amount:     s.Amount,
			Percentage: s.Percentage,
		}
	}
	return CategoryBreakdownResponse{Categories: out}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
