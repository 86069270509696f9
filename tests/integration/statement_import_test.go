package integration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	adaptershttp "github.com/fakturo/bankrecon/internal/adapter/http"
	"github.com/fakturo/bankrecon/internal/adapter/http/dto"
	"github.com/fakturo/bankrecon/internal/adapter/http/handler"
	"github.com/fakturo/bankrecon/internal/adapter/http/middleware"
	"github.com/fakturo/bankrecon/internal/adapter/repository/postgres"
	redisrepo "github.com/fakturo/bankrecon/internal/adapter/repository/redis"
	infraredis "github.com/fakturo/bankrecon/internal/infrastructure/redis"
	"github.com/fakturo/bankrecon/internal/usecase"
	"github.com/fakturo/bankrecon/tests/testutil"
)

const testStatementXML = `<?xml version="1.0" encoding="UTF-8"?>
<BankStatement>
  <Header>
    <AccountNumber>160-0000123456789-55</AccountNumber>
    <BankName>Banca Intesa</BankName>
    <StatementNumber>42</StatementNumber>
    <StatementDate>2024-03-05</StatementDate>
    <OpeningBalance>1000.00</OpeningBalance>
    <ClosingBalance>6000.00</ClosingBalance>
    <Currency>RSD</Currency>
  </Header>
  <Transactions>
    <Transaction>
      <TransactionDate>2024-03-05</TransactionDate>
      <ValueDate>2024-03-05</ValueDate>
      <Reference>INV-2024-100</Reference>
      <Description>Invoice payment</Description>
      <Credit>5000.00</Credit>
      <CounterpartyName>Acme d.o.o.</CounterpartyName>
      <CounterpartyAccount>205-0000987654321-33</CounterpartyAccount>
    </Transaction>
  </Transactions>
</BankStatement>`

func newTestServer(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	ctx := context.Background()
	pool := testDB.Pool

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	txManager := postgres.NewTxManager(pool)
	statementRepo := postgres.NewStatementRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	partnerRepo := redisrepo.NewCachedPartnerRepository(
		postgres.NewPartnerRepository(pool),
		redisrepo.NewCache(redisClient),
	)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()

	importUC := usecase.NewImportUseCase(txManager, statementRepo, idGen, retrier)
	statementUC := usecase.NewStatementUseCase(statementRepo)
	matchUC := usecase.NewMatchUseCase(statementRepo, invoiceRepo, partnerRepo, 1.0, nil)
	paymentUC := usecase.NewPaymentUseCase(txManager, statementRepo, invoiceRepo, paymentRepo, idGen, retrier)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		StatementHandler:   handler.NewStatementHandler(importUC, statementUC, matchUC, nil),
		TransactionHandler: handler.NewTransactionHandler(matchUC, paymentUC, statementUC, nil),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:   redisrepo.NewIdempotencyStore(redisClient),
	})
}

func importStatement(t *testing.T, router http.Handler, tenantID, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(dto.ImportStatementRequest{
		FileName: fileName,
		Content:  base64.StdEncoding.EncodeToString([]byte(content)),
	})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/statements/import", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(middleware.TenantIDHeader, tenantID)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	return w
}

func TestStatementImport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()
	testDB.TruncateAll(ctx)

	router := newTestServer(t, testDB)

	t.Run("import statement file", func(t *testing.T) {
		w := importStatement(t, router, "tenant-1", "izvod-42.xml", testStatementXML)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}

		var resp dto.StatementResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}

		if resp.AccountNumber != "160-0000123456789-55" {
			t.Errorf("unexpected account number: %s", resp.AccountNumber)
		}
		if resp.StatementNumber != "42" {
			t.Errorf("unexpected statement number: %s", resp.StatementNumber)
		}
		if resp.Status != "IMPORTED" {
			t.Errorf("expected IMPORTED status, got %s", resp.Status)
		}
		if len(resp.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(resp.Transactions))
		}
		if resp.Transactions[0].MatchStatus != "UNMATCHED" {
			t.Errorf("expected UNMATCHED transaction, got %s", resp.Transactions[0].MatchStatus)
		}
	})

	t.Run("duplicate import is rejected", func(t *testing.T) {
		w := importStatement(t, router, "tenant-1", "izvod-42-again.xml", testStatementXML)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d: %s", http.StatusConflict, w.Code, w.Body.String())
		}

		var resp dto.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse error response: %v", err)
		}
		if resp.Error != "DUPLICATE_STATEMENT" {
			t.Errorf("expected DUPLICATE_STATEMENT, got %s", resp.Error)
		}
	})

	t.Run("same statement imports for another tenant", func(t *testing.T) {
		w := importStatement(t, router, "tenant-2", "izvod-42.xml", testStatementXML)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		w := importStatement(t, router, "tenant-1", "izvod.pdf", "%PDF-1.4")

		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected status %d, got %d: %s", http.StatusUnsupportedMediaType, w.Code, w.Body.String())
		}
	})

	t.Run("listing is tenant scoped", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/statements/", nil)
		r.Header.Set(middleware.TenantIDHeader, "tenant-2")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ListStatementsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Total != 1 {
			t.Errorf("expected 1 statement for tenant-2, got %d", resp.Total)
		}
	})
}
