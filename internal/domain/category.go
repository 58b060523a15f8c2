package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is a keyword-derived bucket for expenses.
type Category string

const (
	CategoryFood           Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryOther          Category = "Other"
)

type categoryRule struct {
	category Category
	keywords []string
}

// Order matters: the first matching rule wins.
var categoryRules = []categoryRule{
	{CategoryFood, []string{"food", "restaurant", "grocery"}},
	{CategoryTransportation, []string{"gas", "fuel", "transport", "uber"}},
	{CategoryEntertainment, []string{"entertainment", "movie", "game"}},
	{CategoryShopping, []string{"shopping", "clothes", "amazon"}},
	{CategoryUtilities, []string{"utility", "electric", "water", "internet"}},
	{CategoryHealthcare, []string{"health", "medical", "doctor"}},
}

// Categories lists every category in classification order, Other last.
func Categories() []Category {
	out := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		out = append(out, rule.category)
	}
	return append(out, CategoryOther)
}

// Classify assigns a description to exactly one category.
func Classify(description string) Category {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category   Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// CategoryTotals sums expense amounts per category. Income is ignored.
func CategoryTotals(txs Transactions) map[Category]decimal.Decimal {
	totals := make(map[Category]decimal.Decimal)
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		c := Classify(t.Description)
		totals[c] = totals[c].Add(t.Amount)
	}
	return totals
}

// CategoryBreakdown returns the categories that have expenses, in
// classification order, each with its share of total expenses.
func CategoryBreakdown(txs Transactions) []CategoryShare {
	totals := CategoryTotals(txs)
	expenses := Total(txs, TransactionTypeExpense)

	shares := make([]CategoryShare, 0, len(totals))
	for _, c := range Categories() {
		amount, ok := totals[c]
		if !ok {
			continue
		}
		shares = append(shares, CategoryShare{
			Category:   c,
			Amount:     amount,
			Percentage: Percentage(amount, expenses),
		})
	}
	return shares
}

var hundred = decimal.NewFromInt(100)

// Percentage returns part/total*100 rounded to one decimal place, or 0 when
// total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(1)
}
