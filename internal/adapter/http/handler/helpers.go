package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fakturo/bankrecon/internal/adapter/http/dto"
	"github.com/fakturo/bankrecon/internal/adapter/http/middleware"
	"github.com/fakturo/bankrecon/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps a domain error to its HTTP status and error code.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := mapDomainError(err)
	writeError(w, status, code, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes and stable error
// codes.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE"
	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest, "INVALID_FORMAT"
	case errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity, "PARSE_ERROR"
	case errors.Is(err, domain.ErrDuplicateStatement):
		return http.StatusConflict, "DUPLICATE_STATEMENT"
	case errors.Is(err, domain.ErrImportFailed):
		return http.StatusInternalServerError, "IMPORT_FAILED"
	case errors.Is(err, domain.ErrStatementNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrNotMatched):
		return http.StatusConflict, "NOT_MATCHED"
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTenantID),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest, "INVALID_REQUEST"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// tenantID extracts the tenant identifier resolved by the tenant middleware.
func tenantID(r *http.Request) string {
	return middleware.TenantID(r.Context())
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
