package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fakturo/bankrecon/internal/adapter/http/dto"
	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/metrics"
)

// ManualMatchService defines the manual match behavior needed by
// TransactionHandler.
type ManualMatchService interface {
	MatchTransaction(ctx context.Context, tenantID, transactionID, invoiceID string) (*domain.StatementTransaction, error)
}

// PaymentService defines the payment behavior needed by TransactionHandler.
type PaymentService interface {
	CreatePaymentFromTransaction(ctx context.Context, tenantID, transactionID string) (*domain.Payment, error)
}

// UnmatchedService defines the unmatched listing behavior needed by
// TransactionHandler.
type UnmatchedService interface {
	GetUnmatchedTransactions(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	matchUC   ManualMatchService
	paymentUC PaymentService
	queryUC   UnmatchedService
	metrics   *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(matchUC ManualMatchService, paymentUC PaymentService, queryUC UnmatchedService, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{
		matchUC:   matchUC,
		paymentUC: paymentUC,
		queryUC:   queryUC,
		metrics:   m,
	}
}

// Match manually binds a transaction to an invoice.
func (h *TransactionHandler) Match(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "missing transaction ID")
		return
	}

	var req dto.MatchTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if req.InvoiceID == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "missing invoice_id")
		return
	}

	txn, err := h.matchUC.MatchTransaction(r.Context(), tenantID(r), id, req.InvoiceID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TransactionsMatched.WithLabelValues("manual").Inc()
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// CreatePayment materializes a payment from a matched transaction.
func (h *TransactionHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "missing transaction ID")
		return
	}

	payment, err := h.paymentUC.CreatePaymentFromTransaction(r.Context(), tenantID(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.PaymentsCreated.Inc()
		amount, _ := payment.Amount.Float64()
		h.metrics.PaymentAmount.Observe(amount)
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// ListUnmatched lists the tenant's unmatched transactions across statements.
func (h *TransactionHandler) ListUnmatched(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.queryUC.GetUnmatchedTransactions(r.Context(), tenantID(r), parseIntQuery(r, "limit", 0))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        int64(len(transactions)),
	})
}
