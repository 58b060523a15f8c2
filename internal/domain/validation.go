package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field names used in ValidationErrors.
const (
	FieldAmount = "amount"
	FieldDate   = "date"
)

// Validation messages
const (
	MsgInvalidAmount = "Please enter a valid amount"
	MsgZeroAmount    = "Amount cannot be zero"
	MsgMissingDate   = "Please select a date"
)

// ValidationErrors maps a field name to a human readable message.
type ValidationErrors map[string]string

// Error implements error.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrValidation) match.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// TransactionInput is the raw, unvalidated form input.
// Amount carries a sign: negative means expense.
type TransactionInput struct {
	Date        *time.Time
	Amount      string
	Description string
}

// TransactionDraft is a validated transaction without an ID.
type TransactionDraft struct {
	Date        time.Time
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
}

// ToTransaction attaches an ID to the draft.
func (d TransactionDraft) ToTransaction(id string) Transaction {
	return Transaction{
		ID:          id,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		Type:        d.Type,
	}
}

// Amounts are bounded so formatting and persistence stay cheap. The exponent
// is checked first because comparing a huge exponent rescales the value.
const maxAmountExponent = 18

var maxAmount = decimal.New(1, 15)

func amountInRange(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp > maxAmountExponent || exp < -maxAmountExponent {
		return false
	}
	return amount.Abs().LessThan(maxAmount)
}

// ParseTransactionInput validates raw input from scratch and derives the
// transaction type from the sign of the amount.
func ParseTransactionInput(input TransactionInput) (TransactionDraft, error) {
	errs := ValidationErrors{}

	amount, err := decimal.NewFromString(strings.TrimSpace(input.Amount))
	switch {
	case err != nil:
		errs[FieldAmount] = MsgInvalidAmount
	case amount.IsZero():
		errs[FieldAmount] = MsgZeroAmount
	case !amountInRange(amount):
		errs[FieldAmount] = MsgInvalidAmount
	}

	if input.Date == nil || input.Date.IsZero() {
		errs[FieldDate] = MsgMissingDate
	}

	if len(errs) > 0 {
		return TransactionDraft{}, errs
	}

	typ := TransactionTypeIncome
	if amount.IsNegative() {
		typ = TransactionTypeExpense
	}

	return TransactionDraft{
		Amount:      amount.Abs(),
		Date:        *input.Date,
		Description: strings.TrimSpace(input.Description),
		Type:        typ,
	}, nil
}

// ValidateTransaction checks a stored record's shape.
func ValidateTransaction(t Transaction) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrMalformedPayload)
	}
	if !t.Amount.IsPositive() || !amountInRange(t.Amount) {
		return fmt.Errorf("%w: transaction %s", ErrInvalidAmount, t.ID)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction %s has no date", ErrMalformedPayload, t.ID)
	}
	return nil
}
