package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

func TestTransactionRequest_AmountFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"amount":"-50.25"}`, "-50.25"},
		{"number", `{"amount":-50.25}`, "-50.25"},
		{"null", `{"amount":null}`, ""},
		{"missing", `{}`, ""},
		{"garbage string", `{"amount":"abc"}`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransactionRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := req.ToDomainInput().Amount; got != tt.want {
				t.Fatalf("expected amount %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTransactionRequest_Dates(t *testing.T) {
	tests := []struct {
		name string
		date string
		want *time.Time
	}{
		{"date only", "2024-03-15", ptr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))},
		{"rfc3339", "2024-03-15T10:30:00Z", ptr(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))},
		{"empty", "", nil},
		{"invalid", "15/03/2024", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := TransactionRequest{Amount: "1", Date: tt.date}
			got := req.ToDomainInput().Date

			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil date, got %v", got)
				}
				return
			}
			if got == nil || !got.Equal(*tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTransactionRequest_DateOnlyIsLocalMidnight(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("EST", -5*60*60)
	t.Cleanup(func() { time.Local = orig })

	req := TransactionRequest{Amount: "1", Date: "2024-03-01"}
	got := req.ToDomainInput().Date
	if got == nil {
		t.Fatal("expected a date")
	}
	if got.Location() != time.Local || got.Day() != 1 || got.Hour() != 0 {
		t.Fatalf("expected local midnight on the 1st, got %v", got)
	}

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)
	if !domain.CurrentMonth(now).Contains(*got) {
		t.Fatalf("expected %v to fall in March", got)
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
