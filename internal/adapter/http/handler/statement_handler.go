package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fakturo/bankrecon/internal/adapter/http/dto"
	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/metrics"
	"github.com/fakturo/bankrecon/internal/parser"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// ImportService defines the import behavior needed by StatementHandler.
type ImportService interface {
	ImportStatement(ctx context.Context, input usecase.ImportStatementInput) (*domain.Statement, error)
}

// StatementService defines the query behavior needed by StatementHandler.
type StatementService interface {
	ListStatements(ctx context.Context, input usecase.ListStatementsInput) ([]*domain.Statement, error)
	GetStatementWithTransactions(ctx context.Context, tenantID, id string) (*domain.Statement, error)
}

// MatchService defines the matching behavior needed by StatementHandler.
type MatchService interface {
	AutoMatch(ctx context.Context, tenantID, statementID string) (*usecase.AutoMatchResult, error)
}

// StatementHandler handles statement-related HTTP requests.
type StatementHandler struct {
	importUC    ImportService
	statementUC StatementService
	matchUC     MatchService
	metrics     *metrics.Metrics
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(importUC ImportService, statementUC StatementService, matchUC MatchService, m *metrics.Metrics) *StatementHandler {
	return &StatementHandler{
		importUC:    importUC,
		statementUC: statementUC,
		matchUC:     matchUC,
		metrics:     m,
	}
}

// Import imports a statement file.
func (h *StatementHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(tenantID(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	statement, err := h.importUC.ImportStatement(r.Context(), input)
	if err != nil {
		h.recordImportFailure(err)
		writeDomainError(w, err)

		return
	}

	if h.metrics != nil {
		format := req.Format
		if format == "" {
			if detected, err := parser.DetectFormat(req.FileName); err == nil {
				format = string(detected)
			}
		}
		h.metrics.StatementsImported.WithLabelValues(format).Inc()
		h.metrics.TransactionsParsed.WithLabelValues(format).Add(float64(len(statement.Transactions)))
	}

	writeJSON(w, http.StatusCreated, dto.StatementFromDomain(statement))
}

// List lists statements for the tenant.
func (h *StatementHandler) List(w http.ResponseWriter, r *http.Request) {
	statements, err := h.statementUC.ListStatements(r.Context(), usecase.ListStatementsInput{
		TenantID:      tenantID(r),
		AccountNumber: r.URL.Query().Get("account_number"),
		Status:        r.URL.Query().Get("status"),
		Limit:         parseIntQuery(r, "limit", 0),
		Offset:        parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListStatementsResponse{
		Statements: dto.StatementsFromDomain(statements),
		Total:      int64(len(statements)),
	})
}

// Get retrieves a statement with all of its transactions.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "missing statement ID")
		return
	}

	statement, err := h.statementUC.GetStatementWithTransactions(r.Context(), tenantID(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromDomain(statement))
}

// AutoMatch runs an auto-match pass over a statement.
func (h *StatementHandler) AutoMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "missing statement ID")
		return
	}

	result, err := h.matchUC.AutoMatch(r.Context(), tenantID(r), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if h.metrics != nil {
		for strategy, count := range result.ByStrategy {
			h.metrics.TransactionsMatched.WithLabelValues(string(strategy)).Add(float64(count))
		}
		h.metrics.TransactionsUnmatched.Add(float64(result.Unmatched))
	}

	writeJSON(w, http.StatusOK, dto.AutoMatchFromResult(result))
}

func (h *StatementHandler) recordImportFailure(err error) {
	if h.metrics == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateStatement):
		h.metrics.DuplicateStatements.Inc()
	default:
		_, code := mapDomainError(err)
		h.metrics.ImportErrors.WithLabelValues(code).Inc()
	}
}
