package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether money came in or went out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a single recorded income or expense event.
// Amount is always a positive magnitude; direction is carried by Type.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Transactions is the whole collection. Values are never mutated in place;
// every change returns a new slice.
type Transactions []Transaction

// Len returns the number of transactions.
func (ts Transactions) Len() int {
	return len(ts)
}

// Find returns the transaction with the given ID.
func (ts Transactions) Find(id string) (Transaction, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// With returns a new collection that also contains t.
func (ts Transactions) With(t Transaction) Transactions {
	out := make(Transactions, 0, len(ts)+1)
	out = append(out, ts...)
	return append(out, t)
}

// Replaced returns a new collection where the record sharing t.ID is swapped for t.
func (ts Transactions) Replaced(t Transaction) (Transactions, error) {
	out := make(Transactions, len(ts))
	found := false
	for i, existing := range ts {
		if existing.ID == t.ID {
			out[i] = t
			found = true
			continue
		}
		out[i] = existing
	}
	if !found {
		return nil, ErrTransactionNotFound
	}
	return out, nil
}

// Without returns a new collection with the record identified by id removed.
func (ts Transactions) Without(id string) (Transactions, error) {
	out := make(Transactions, 0, len(ts))
	found := false
	for _, existing := range ts {
		if existing.ID == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		return nil, ErrTransactionNotFound
	}
	return out, nil
}

// SortedByDateDesc returns a copy ordered newest first.
func (ts Transactions) SortedByDateDesc() Transactions {
	out := make(Transactions, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// OfType returns the subset with the given type.
func (ts Transactions) OfType(typ TransactionType) Transactions {
	var out Transactions
	for _, t := range ts {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}
