package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reward-gateway/config"
	httpHandler "reward-gateway/internal/adapter/http/handler"
	"reward-gateway/internal/adapter/settlement"
	pgStorage "reward-gateway/internal/adapter/storage/postgres"
	redisStorage "reward-gateway/internal/adapter/storage/redis"
	"reward-gateway/internal/core/ports"
	"reward-gateway/internal/service"
	"reward-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("record_only", cfg.Rewards.RecordOnly).
		Msg("Starting Reward Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories and stores
	rewardRepo := pgStorage.NewRewardRepo(pool)
	nonceStore := redisStorage.NewNonceStore(rdb)

	// Initialize core services
	envelopeSvc, err := service.NewNaClEnvelopeService(cfg.Identity, cfg.Counterparty)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize envelope verifier")
	}
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize settlement client and sender pool
	settlementClient, err := settlement.NewClient(cfg.Settlement, cfg.Senders, nil, logger.Component(log, "settlement"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize settlement client")
	}

	senderPool := service.NewWalletSenderPool(
		settlementClient,
		cfg.Pool,
		cfg.Settlement.EstimatedFee,
		logger.Component(log, "pool"),
	)
	addresses := make([]string, 0, len(cfg.Senders))
	for _, s := range cfg.Senders {
		addresses = append(addresses, s.Address)
	}
	// The context passed here also bounds the balance subscriptions, so it
	// must live for the whole process.
	if err := senderPool.Register(ctx, addresses); err != nil {
		log.Fatal().Err(err).Msg("Failed to register sender wallets")
	}
	log.Info().Int("wallets", len(addresses)).Msg("Sender pool ready")

	// Initialize business services
	transferSvc := service.NewRewardTransferService(
		rewardRepo,
		settlementClient,
		senderPool,
		cfg.Rewards.RecordOnly,
		cfg.Settlement.StaleLookbackBlocks,
		logger.Component(log, "transfer"),
	)
	reprocessSvc := service.NewRewardReprocessService(
		rewardRepo,
		transferSvc,
		senderPool,
		cfg.Rewards.ReprocessInterval,
		logger.Component(log, "reprocess"),
	)

	// Background reprocessor: suspended in record-only mode.
	if cfg.Rewards.ReprocessEnabled && !cfg.Rewards.RecordOnly {
		go reprocessSvc.Run(ctx)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Events: httpHandler.NewEventHandler(
			envelopeSvc, nonceStore, transferSvc, cfg.Rewards, logger.Component(log, "events"),
		),
		Ops: httpHandler.NewOpsHandler(
			rewardRepo, senderPool, reprocessSvc, hashSvc, tokenSvc, cfg.Ops, logger.Component(log, "ops"),
		),
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Config:         cfg,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
