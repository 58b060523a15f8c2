package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

func TestTransactionFromDomain_CategoryOnlyForExpenses(t *testing.T) {
	expense := TransactionFromDomain(domain.Transaction{
		ID:          "a",
		Amount:      decimal.NewFromInt(12),
		Description: "Uber ride",
		Type:        domain.TransactionTypeExpense,
	})
	if expense.Category != string(domain.CategoryTransportation) {
		t.Fatalf("expected transportation category, got %q", expense.Category)
	}

	income := TransactionFromDomain(domain.Transaction{
		ID:          "b",
		Amount:      decimal.NewFromInt(12),
		Description: "uber refund",
		Type:        domain.TransactionTypeIncome,
	})
	if income.Category != "" {
		t.Fatalf("expected no category on income, got %q", income.Category)
	}
}

func TestTransactionListResponse_AmountsAsStrings(t *testing.T) {
	resp := TransactionsFromDomain(domain.Transactions{{
		ID:     "a",
		Amount: decimal.RequireFromString("10.50"),
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Type:   domain.TransactionTypeIncome,
	}})

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"amount":"10.5"`) || !strings.Contains(string(body), `"total":1`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestSummaryFromDomain(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	s := SummaryFromDomain(domain.Summarize(domain.Transactions{
		{ID: "a", Amount: decimal.NewFromInt(200), Date: now, Type: domain.TransactionTypeIncome},
		{ID: "b", Amount: decimal.NewFromInt(50), Date: now, Type: domain.TransactionTypeExpense, Description: "restaurant"},
	}, now))

	if s.Month != "Mar 2024" || s.TotalBalance.String() != "150" || s.LargestExpense.String() != "50" {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.IncomeCount != 1 || s.ExpenseCount != 1 || s.Count != 2 {
		t.Fatalf("unexpected counts %+v", s)
	}
}
