package domain

import (
	"fmt"
	"time"
)

// Event types
const (
	EventTypeTransactionAdded   = "transaction.added"
	EventTypeTransactionUpdated = "transaction.updated"
	EventTypeTransactionDeleted = "transaction.deleted"
)

// Notification variants
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a short human readable message emitted after a mutation.
// Its content is informative only.
type Notification struct {
	CreatedAt     time.Time `json:"created_at"`
	EventType     string    `json:"event_type"`
	TransactionID string    `json:"transaction_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Variant       string    `json:"variant"`
}

// NewTransactionAddedNotification describes a newly recorded transaction.
func NewTransactionAddedNotification(t Transaction, at time.Time) Notification {
	kind := "Income"
	if t.IsExpense() {
		kind = "Expense"
	}
	return Notification{
		CreatedAt:     at,
		EventType:     EventTypeTransactionAdded,
		TransactionID: t.ID,
		Title:         "Transaction added",
		Description:   fmt.Sprintf("%s of $%s has been recorded.", kind, t.Amount.StringFixed(2)),
		Variant:       VariantDefault,
	}
}

// NewTransactionUpdatedNotification describes an edit.
func NewTransactionUpdatedNotification(t Transaction, at time.Time) Notification {
	return Notification{
		CreatedAt:     at,
		EventType:     EventTypeTransactionUpdated,
		TransactionID: t.ID,
		Title:         "Transaction updated",
		Description:   "Your transaction has been successfully updated.",
		Variant:       VariantDefault,
	}
}

// NewTransactionDeletedNotification describes a removal.
func NewTransactionDeletedNotification(id string, at time.Time) Notification {
	return Notification{
		CreatedAt:     at,
		EventType:     EventTypeTransactionDeleted,
		TransactionID: id,
		Title:         "Transaction deleted",
		Description:   "The transaction has been removed from your records.",
		Variant:       VariantDestructive,
	}
}
