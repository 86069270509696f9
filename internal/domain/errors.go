package domain

import "errors"

var (
	// Parser errors
	ErrUnsupportedFormat = errors.New("unsupported statement format")
	ErrEmptyFile         = errors.New("statement file is empty")
	ErrInvalidFormat     = errors.New("statement file is malformed")
	ErrParse             = errors.New("failed to parse statement")

	// Import errors
	ErrDuplicateStatement = errors.New("statement already imported")
	ErrImportFailed       = errors.New("failed to import statement")

	// Payment errors
	ErrInvalidAmount = errors.New("amount must be positive")

	// Matching errors
	ErrStatementNotFound   = errors.New("statement not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrNotMatched          = errors.New("transaction is not matched to an invoice")
)
