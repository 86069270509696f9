package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/fakturo/bankrecon/internal/adapter/http"
	"github.com/fakturo/bankrecon/internal/adapter/http/handler"
	postgresRepo "github.com/fakturo/bankrecon/internal/adapter/repository/postgres"
	redisRepo "github.com/fakturo/bankrecon/internal/adapter/repository/redis"
	"github.com/fakturo/bankrecon/internal/infrastructure/config"
	"github.com/fakturo/bankrecon/internal/infrastructure/logging"
	"github.com/fakturo/bankrecon/internal/infrastructure/metrics"
	"github.com/fakturo/bankrecon/internal/infrastructure/postgres"
	"github.com/fakturo/bankrecon/internal/infrastructure/redis"
	"github.com/fakturo/bankrecon/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	appLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	statementRepo := postgresRepo.NewStatementRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	partnerRepo := redisRepo.NewCachedPartnerRepository(postgresRepo.NewPartnerRepository(pool), cache)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	importUC := usecase.NewImportUseCase(txManager, statementRepo, idGen, retrier)
	statementUC := usecase.NewStatementUseCase(statementRepo)
	matchUC := usecase.NewMatchUseCase(statementRepo, invoiceRepo, partnerRepo, cfg.MatchTolerancePct, appLogger.Logger)
	paymentUC := usecase.NewPaymentUseCase(txManager, statementRepo, invoiceRepo, paymentRepo, idGen, retrier)

	// Initialize handlers
	statementHandler := handler.NewStatementHandler(importUC, statementUC, matchUC, m)
	transactionHandler := handler.NewTransactionHandler(matchUC, paymentUC, statementUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		StatementHandler:   statementHandler,
		TransactionHandler: transactionHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      http.MaxBytesHandler(router, cfg.HTTPMaxUploadBytes),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
