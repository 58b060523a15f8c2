package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeriesMonths is the length of the trailing monthly series.
const SeriesMonths = 6

// MonthLabelLayout formats month labels, e.g. "Mar 2024".
const MonthLabelLayout = "Jan 2006"

// Total sums the amounts of every transaction of the given type.
func Total(txs Transactions, typ TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txs {
		if t.Type == typ {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// NetBalance is total income minus total expense.
func NetBalance(txs Transactions) decimal.Decimal {
	return Total(txs, TransactionTypeIncome).Sub(Total(txs, TransactionTypeExpense))
}

// Count returns how many transactions have the given type.
func Count(txs Transactions, typ TransactionType) int {
	n := 0
	for _, t := range txs {
		if t.Type == typ {
			n++
		}
	}
	return n
}

// MonthWindow is an inclusive range covering one calendar month.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// MonthOf returns the window for the calendar month containing t, in t's location.
func MonthOf(t time.Time) MonthWindow {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return MonthWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// CurrentMonth returns the window for the month containing now.
func CurrentMonth(now time.Time) MonthWindow {
	return MonthOf(now)
}

// Contains reports whether t lies within the window, bounds included.
func (w MonthWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Label returns the human readable month, e.g. "Mar 2024".
func (w MonthWindow) Label() string {
	return w.Start.Format(MonthLabelLayout)
}

// InWindow returns the transactions dated inside w.
func InWindow(txs Transactions, w MonthWindow) Transactions {
	var out Transactions
	for _, t := range txs {
		if w.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// MonthlyPoint is one month of the trailing series.
type MonthlyPoint struct {
	Label    string
	Start    time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// MonthlySeries returns exactly SeriesMonths points ending with the month of
// now, oldest first. Months without data are zero.
func MonthlySeries(txs Transactions, now time.Time) []MonthlyPoint {
	current := MonthOf(now).Start
	points := make([]MonthlyPoint, 0, SeriesMonths)

	for i := SeriesMonths - 1; i >= 0; i-- {
		w := MonthOf(current.AddDate(0, -i, 0))
		inMonth := InWindow(txs, w)
		income := Total(inMonth, TransactionTypeIncome)
		expenses := Total(inMonth, TransactionTypeExpense)

		points = append(points, MonthlyPoint{
			Label:    w.Label(),
			Start:    w.Start,
			Income:   income,
			Expenses: expenses,
			Net:      income.Sub(expenses),
		})
	}
	return points
}

// Extremes holds the largest single income and expense.
type Extremes struct {
	LargestIncome  decimal.Decimal
	LargestExpense decimal.Decimal
}

// FindExtremes returns the largest amount per type, zero for an empty subset.
func FindExtremes(txs Transactions) Extremes {
	ex := Extremes{LargestIncome: decimal.Zero, LargestExpense: decimal.Zero}
	for _, t := range txs {
		switch t.Type {
		case TransactionTypeIncome:
			if t.Amount.GreaterThan(ex.LargestIncome) {
				ex.LargestIncome = t.Amount
			}
		case TransactionTypeExpense:
			if t.Amount.GreaterThan(ex.LargestExpense) {
				ex.LargestExpense = t.Amount
			}
		}
	}
	return ex
}

// Summary is the dashboard overview.
type Summary struct {
	TotalBalance    decimal.Decimal
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	MonthlyNet      decimal.Decimal
	Month           MonthWindow
	Extremes        Extremes
	Count           int
	IncomeCount     int
	ExpenseCount    int
}

// Summarize computes the dashboard overview as of now.
func Summarize(txs Transactions, now time.Time) Summary {
	month := CurrentMonth(now)
	thisMonth := InWindow(txs, month)
	monthlyIncome := Total(thisMonth, TransactionTypeIncome)
	monthlyExpenses := Total(thisMonth, TransactionTypeExpense)

	return Summary{
		TotalBalance:    NetBalance(txs),
		TotalIncome:     Total(txs, TransactionTypeIncome),
		TotalExpenses:   Total(txs, TransactionTypeExpense),
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		MonthlyNet:      monthlyIncome.Sub(monthlyExpenses),
		Month:           month,
		Extremes:        FindExtremes(txs),
		Count:           txs.Len(),
		IncomeCount:     Count(txs, TransactionTypeIncome),
		ExpenseCount:    Count(txs, TransactionTypeExpense),
	}
}
