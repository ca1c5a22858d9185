package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/finvault/corebank/internal/adapter/http"
	"github.com/finvault/corebank/internal/adapter/http/handler"
	postgresRepo "github.com/finvault/corebank/internal/adapter/repository/postgres"
	redisRepo "github.com/finvault/corebank/internal/adapter/repository/redis"
	"github.com/finvault/corebank/internal/infrastructure/auth"
	"github.com/finvault/corebank/internal/infrastructure/config"
	"github.com/finvault/corebank/internal/infrastructure/logger"
	"github.com/finvault/corebank/internal/infrastructure/metrics"
	"github.com/finvault/corebank/internal/infrastructure/postgres"
	"github.com/finvault/corebank/internal/infrastructure/redis"
	"github.com/finvault/corebank/internal/usecase"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DatabaseURL, migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	retrier := postgresRepo.NewRetrier(appLogger)
	idGen := postgresRepo.NewULIDGenerator()
	numberGen := postgresRepo.NewRandomNumberGenerator()

	// Use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, idGen, numberGen)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, transactionRepo, retrier, idGen, numberGen)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, accountRepo)
	statementUC := usecase.NewStatementUseCase(accountRepo, transactionRepo)

	// HTTP layer
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(customerUC, jwtManager, m),
		AccountHandler:     handler.NewAccountHandler(accountUC),
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC, m),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		StatementHandler:   handler.NewStatementHandler(statementUC),
		AdminHandler:       handler.NewLedgerAdminHandler(ledgerRepo),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		JWTManager:         jwtManager,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Metrics:            m,
		Logger:             appLogger,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
