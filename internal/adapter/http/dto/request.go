package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// dateOnlyLayout is accepted alongside RFC 3339 for transaction dates.
const dateOnlyLayout = "2006-01-02"

// Amount is a signed amount sent either as a JSON string or a bare number.
// Negative values record an expense.
type Amount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	if string(data) == "null" {
		*a = ""
		return nil
	}
	*a = Amount(data)
	return nil
}

// TransactionRequest is the body of create and update requests.
type TransactionRequest struct {
	Amount      Amount `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ToDomainInput converts to domain input. An unparseable date is passed on
// as missing so it surfaces as a field validation error.
func (r *TransactionRequest) ToDomainInput() domain.TransactionInput {
	return domain.TransactionInput{
		Amount:      string(r.Amount),
		Date:        parseDate(r.Date),
		Description: r.Description,
	}
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	// A bare date means local midnight, matching the month windows built
	// from the server clock.
	if t, err := time.ParseInLocation(dateOnlyLayout, s, time.Local); err == nil {
		return &t
	}
	return nil
}
