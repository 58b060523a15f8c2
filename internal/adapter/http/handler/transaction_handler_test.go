package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

type transactionServiceStub struct {
	listFn   func(ctx context.Context) domain.Transactions
	getFn    func(ctx context.Context, id string) (domain.Transaction, error)
	addFn    func(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error)
	editFn   func(ctx context.Context, id string, input domain.TransactionInput) (domain.Transaction, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context) domain.Transactions {
	return s.listFn(ctx)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	return s.getFn(ctx, id)
}

func (s *transactionServiceStub) AddTransaction(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error) {
	return s.addFn(ctx, input)
}

func (s *transactionServiceStub) EditTransaction(ctx context.Context, id string, input domain.TransactionInput) (domain.Transaction, error) {
	return s.editFn(ctx, id, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(h *TransactionHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/transactions", h.List)
	r.Post("/transactions", h.Create)
	r.Get("/transactions/{id}", h.Get)
	r.Put("/transactions/{id}", h.Update)
	r.Delete("/transactions/{id}", h.Delete)
	return r
}

func sampleTransactions() domain.Transactions {
	return domain.Transactions{
		{ID: "b", Amount: decimal.NewFromInt(50), Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Description: "restaurant", Type: domain.TransactionTypeExpense},
		{ID: "a", Amount: decimal.NewFromInt(200), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "salary", Type: domain.TransactionTypeIncome},
	}
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	var captured domain.TransactionInput

	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error) {
			captured = input
			return domain.Transaction{
				ID:          "01HX",
				Amount:      decimal.NewFromInt(50),
				Date:        *input.Date,
				Description: input.Description,
				Type:        domain.TransactionTypeExpense,
			}, nil
		},
	}))

	body := []byte(`{"amount":"-50","date":"2024-03-15","description":"restaurant bill"}`)
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Amount != "-50" || captured.Date == nil || captured.Description != "restaurant bill" {
		t.Fatalf("unexpected input passed to use case: %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.ID != "01HX" || resp.Type != "expense" || resp.Category != string(domain.CategoryFood) {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{}))

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(`{`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_ValidationError(t *testing.T) {
	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		addFn: func(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error) {
			return domain.Transaction{}, domain.ValidationErrors{domain.FieldAmount: domain.MsgZeroAmount}
		},
	}))

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(`{"amount":"0","date":"2024-03-15"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Fields["amount"] != "Amount cannot be zero" {
		t.Fatalf("expected amount field error, got %+v", resp)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context) domain.Transactions { return sampleTransactions() },
	}))

	tests := []struct {
		name    string
		url     string
		status  int
		wantIDs []string
	}{
		{"all", "/transactions", http.StatusOK, []string{"b", "a"}},
		{"income only", "/transactions?type=income", http.StatusOK, []string{"a"}},
		{"limit", "/transactions?limit=1", http.StatusOK, []string{"b"}},
		{"bad type", "/transactions?type=refund", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if tt.wantIDs == nil {
				return
			}

			var resp dto.TransactionListResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if resp.Total != len(tt.wantIDs) {
				t.Fatalf("expected total %d, got %d", len(tt.wantIDs), resp.Total)
			}
			for i, id := range tt.wantIDs {
				if resp.Transactions[i].ID != id {
					t.Fatalf("expected id %s at %d, got %s", id, i, resp.Transactions[i].ID)
				}
			}
		})
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, id string) (domain.Transaction, error) {
			return domain.Transaction{}, domain.ErrTransactionNotFound
		},
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update_PassesID(t *testing.T) {
	var gotID string

	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		editFn: func(ctx context.Context, id string, input domain.TransactionInput) (domain.Transaction, error) {
			gotID = id
			return domain.Transaction{ID: id, Amount: decimal.NewFromInt(10), Date: *input.Date, Type: domain.TransactionTypeIncome}, nil
		},
	}))

	req := httptest.NewRequest(http.MethodPut, "/transactions/b", bytes.NewBufferString(`{"amount":10,"date":"2024-03-16T00:00:00Z"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != "b" {
		t.Fatalf("expected id b, got %s", gotID)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	deleted := ""
	router := newTestRouter(NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			if id == "missing" {
				return domain.ErrTransactionNotFound
			}
			deleted = id
			return nil
		},
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/transactions/a", nil))
	if rec.Code != http.StatusNoContent || deleted != "a" {
		t.Fatalf("expected 204 deleting a, got %d deleted=%q", rec.Code, deleted)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/transactions/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
