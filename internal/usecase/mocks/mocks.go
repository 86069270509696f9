package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// MockStatementRepository is an in-memory implementation of
// StatementRepository. Per-method Func fields override the default
// behavior when set.
type MockStatementRepository struct {
	mu           sync.RWMutex
	statements   map[string]*domain.Statement
	transactions map[string]*domain.StatementTransaction

	CreateWithTransactionsFunc      func(ctx context.Context, tx usecase.Transaction, statement *domain.Statement) error
	GetByIDFunc                     func(ctx context.Context, tenantID, id string) (*domain.Statement, error)
	GetByNaturalKeyFunc             func(ctx context.Context, tenantID, accountNumber, statementNumber string) (*domain.Statement, error)
	ListFunc                        func(ctx context.Context, filter domain.StatementFilter) ([]*domain.Statement, error)
	UpdateStatusFunc                func(ctx context.Context, id string, status domain.StatementStatus, updatedAt time.Time) error
	GetTransactionByIDFunc          func(ctx context.Context, tenantID, id string) (*domain.StatementTransaction, error)
	ListTransactionsByStatementFunc func(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error)
	ListUnmatchedByStatementFunc    func(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error)
	CountUnmatchedByStatementFunc   func(ctx context.Context, statementID string) (int64, error)
	ListUnmatchedByTenantFunc       func(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error)
	UpdateTransactionMatchFunc      func(ctx context.Context, id string, invoiceID *string, status domain.MatchStatus, updatedAt time.Time) error

	UpdateStatusCalls           int
	UpdateTransactionMatchCalls int
}

func NewMockStatementRepository() *MockStatementRepository {
	return &MockStatementRepository{
		statements:   make(map[string]*domain.Statement),
		transactions: make(map[string]*domain.StatementTransaction),
	}
}

func (m *MockStatementRepository) CreateWithTransactions(ctx context.Context, tx usecase.Transaction, statement *domain.Statement) error {
	if m.CreateWithTransactionsFunc != nil {
		return m.CreateWithTransactionsFunc(ctx, tx, statement)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statements[statement.ID] = statement
	for _, txn := range statement.Transactions {
		m.transactions[txn.ID] = txn
	}
	return nil
}

func (m *MockStatementRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Statement, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.statements[id]; ok && s.TenantID == tenantID {
		return s, nil
	}
	return nil, domain.ErrStatementNotFound
}

func (m *MockStatementRepository) GetByNaturalKey(ctx context.Context, tenantID, accountNumber, statementNumber string) (*domain.Statement, error) {
	if m.GetByNaturalKeyFunc != nil {
		return m.GetByNaturalKeyFunc(ctx, tenantID, accountNumber, statementNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.statements {
		if s.TenantID == tenantID && s.AccountNumber == accountNumber && s.StatementNumber == statementNumber {
			return s, nil
		}
	}
	return nil, domain.ErrStatementNotFound
}

func (m *MockStatementRepository) List(ctx context.Context, filter domain.StatementFilter) ([]*domain.Statement, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Statement
	for _, s := range m.statements {
		if s.TenantID != filter.TenantID {
			continue
		}
		if filter.AccountNumber != "" && s.AccountNumber != filter.AccountNumber {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *MockStatementRepository) UpdateStatus(ctx context.Context, id string, status domain.StatementStatus, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateStatusCalls++
	m.mu.Unlock()
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.statements[id]; ok {
		s.Status = status
		s.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockStatementRepository) GetTransactionByID(ctx context.Context, tenantID, id string) (*domain.StatementTransaction, error) {
	if m.GetTransactionByIDFunc != nil {
		return m.GetTransactionByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[id]; ok && t.TenantID == tenantID {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockStatementRepository) ListTransactionsByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error) {
	if m.ListTransactionsByStatementFunc != nil {
		return m.ListTransactionsByStatementFunc(ctx, statementID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.StatementTransaction
	for _, t := range m.transactions {
		if t.StatementID == statementID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *MockStatementRepository) ListUnmatchedByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error) {
	if m.ListUnmatchedByStatementFunc != nil {
		return m.ListUnmatchedByStatementFunc(ctx, statementID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.StatementTransaction
	for _, t := range m.transactions {
		if t.StatementID == statementID && t.MatchStatus == domain.MatchStatusUnmatched {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *MockStatementRepository) CountUnmatchedByStatement(ctx context.Context, statementID string) (int64, error) {
	if m.CountUnmatchedByStatementFunc != nil {
		return m.CountUnmatchedByStatementFunc(ctx, statementID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, t := range m.transactions {
		if t.StatementID == statementID && t.MatchStatus == domain.MatchStatusUnmatched {
			count++
		}
	}
	return count, nil
}

func (m *MockStatementRepository) ListUnmatchedByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error) {
	if m.ListUnmatchedByTenantFunc != nil {
		return m.ListUnmatchedByTenantFunc(ctx, tenantID, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.StatementTransaction
	for _, t := range m.transactions {
		if t.TenantID == tenantID && t.MatchStatus == domain.MatchStatusUnmatched {
			result = append(result, t)
			if len(result) >= limit {
				break
			}
		}
	}
	return result, nil
}

func (m *MockStatementRepository) UpdateTransactionMatch(ctx context.Context, id string, invoiceID *string, status domain.MatchStatus, updatedAt time.Time) error {
	m.mu.Lock()
	m.UpdateTransactionMatchCalls++
	m.mu.Unlock()
	if m.UpdateTransactionMatchFunc != nil {
		return m.UpdateTransactionMatchFunc(ctx, id, invoiceID, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.transactions[id]; ok {
		t.InvoiceID = invoiceID
		t.MatchStatus = status
		t.UpdatedAt = updatedAt
	}
	return nil
}

// MockInvoiceRepository is an in-memory implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice

	GetByIDFunc            func(ctx context.Context, tenantID, id string) (*domain.Invoice, error)
	GetByNumberFunc        func(ctx context.Context, tenantID, invoiceNumber string) (*domain.Invoice, error)
	ListOpenByPartnersFunc func(ctx context.Context, tenantID string, partnerIDs []string, minAmount, maxAmount decimal.Decimal) ([]*domain.Invoice, error)
	GetByIDForUpdateFunc   func(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Invoice, error)
	UpdatePaymentFunc      func(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.Invoice),
	}
}

// Add seeds an invoice.
func (m *MockInvoiceRepository) Add(invoice *domain.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[invoice.ID] = invoice
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok && inv.TenantID == tenantID {
		return inv, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, tenantID, invoiceNumber string) (*domain.Invoice, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, tenantID, invoiceNumber)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, inv := range m.invoices {
		if inv.TenantID == tenantID && inv.InvoiceNumber == invoiceNumber {
			return inv, nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) ListOpenByPartners(ctx context.Context, tenantID string, partnerIDs []string, minAmount, maxAmount decimal.Decimal) ([]*domain.Invoice, error) {
	if m.ListOpenByPartnersFunc != nil {
		return m.ListOpenByPartnersFunc(ctx, tenantID, partnerIDs, minAmount, maxAmount)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	partners := make(map[string]bool, len(partnerIDs))
	for _, id := range partnerIDs {
		partners[id] = true
	}
	var result []*domain.Invoice
	for _, inv := range m.invoices {
		if inv.TenantID != tenantID || !partners[inv.PartnerID] {
			continue
		}
		open := false
		for _, s := range domain.OpenInvoiceStatuses {
			if inv.Status == s {
				open = true
				break
			}
		}
		if !open {
			continue
		}
		if inv.TotalAmount.LessThan(minAmount) || inv.TotalAmount.GreaterThan(maxAmount) {
			continue
		}
		result = append(result, inv)
	}
	return result, nil
}

func (m *MockInvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, tenantID, id)
	}
	return m.GetByID(ctx, tenantID, id)
}

func (m *MockInvoiceRepository) UpdatePayment(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error {
	if m.UpdatePaymentFunc != nil {
		return m.UpdatePaymentFunc(ctx, tx, id, paidAmount, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := m.invoices[id]; ok {
		inv.PaidAmount = paidAmount
		inv.PaymentStatus = status
		inv.UpdatedAt = updatedAt
	}
	return nil
}

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments []*domain.Payment

	CreateFunc              func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	SumClearedByInvoiceFunc func(ctx context.Context, tx usecase.Transaction, invoiceID string) (decimal.Decimal, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, payment)
	return nil
}

func (m *MockPaymentRepository) SumClearedByInvoice(ctx context.Context, tx usecase.Transaction, invoiceID string) (decimal.Decimal, error) {
	if m.SumClearedByInvoiceFunc != nil {
		return m.SumClearedByInvoiceFunc(ctx, tx, invoiceID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, p := range m.payments {
		if p.InvoiceID == invoiceID && p.Status == domain.PaymentStatusCleared {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

// Payments returns all recorded payments.
func (m *MockPaymentRepository) Payments() []*domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Payment(nil), m.payments...)
}

// MockRetrier is a mock implementation of Retrier. Without a RetryFunc it
// runs the operation once and counts the invocation.
type MockRetrier struct {
	RetryFunc  func(ctx context.Context, operation func() error) error
	RetryCalls int
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	m.RetryCalls++
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu           sync.Mutex
	counter      int
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%03d", m.counter)
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{values: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	m.values[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}
