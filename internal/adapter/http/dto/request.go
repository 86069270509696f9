package dto

import (
	"encoding/base64"
	"fmt"

	"github.com/fakturo/bankrecon/internal/usecase"
)

// ImportStatementRequest represents a request to import a statement file.
// Content carries the raw file bytes base64-encoded.
type ImportStatementRequest struct {
	FileName string `json:"file_name"`
	Format   string `json:"format,omitempty"`
	Content  string `json:"content"`
}

// ToUseCaseInput converts to use case input, decoding the file content.
func (r *ImportStatementRequest) ToUseCaseInput(tenantID string) (usecase.ImportStatementInput, error) {
	content, err := base64.StdEncoding.DecodeString(r.Content)
	if err != nil {
		return usecase.ImportStatementInput{}, fmt.Errorf("invalid base64 content: %w", err)
	}

	return usecase.ImportStatementInput{
		TenantID: tenantID,
		FileName: r.FileName,
		Format:   r.Format,
		Content:  content,
	}, nil
}

// MatchTransactionRequest represents a manual match request.
type MatchTransactionRequest struct {
	InvoiceID string `json:"invoice_id"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
