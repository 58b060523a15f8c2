package kv

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// record is the persisted shape of a transaction. Amount is written as a
// bare JSON number.
type record struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
}

func toRecord(t domain.Transaction) record {
	return record{
		ID:          t.ID,
		Amount:      json.Number(t.Amount.String()),
		Date:        t.Date.UTC().Format(time.RFC3339Nano),
		Description: t.Description,
		Type:        string(t.Type),
	}
}

func (r record) toDomain() (domain.Transaction, error) {
	if strings.TrimSpace(r.ID) == "" {
		return domain.Transaction{}, fmt.Errorf("%w: missing id", domain.ErrMalformedPayload)
	}

	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: record %s: amount %q", domain.ErrMalformedPayload, r.ID, r.Amount)
	}

	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: record %s: date %q", domain.ErrMalformedPayload, r.ID, r.Date)
	}

	t := domain.Transaction{
		ID:          r.ID,
		Amount:      amount,
		Date:        date,
		Description: r.Description,
		Type:        domain.TransactionType(r.Type),
	}
	if err := domain.ValidateTransaction(t); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: record %s: %v", domain.ErrMalformedPayload, r.ID, err)
	}
	return t, nil
}

// Encode serializes the whole collection as a JSON array.
func Encode(txs domain.Transactions) ([]byte, error) {
	records := make([]record, 0, len(txs))
	for _, t := range txs {
		records = append(records, toRecord(t))
	}
	return json.Marshal(records)
}

// Decode parses a persisted collection. A single malformed record rejects
// the whole payload.
func Decode(data []byte) (domain.Transactions, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	txs := make(domain.Transactions, 0, len(records))
	for _, r := range records {
		t, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}
