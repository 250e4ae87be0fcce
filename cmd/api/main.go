package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashqard-redemption/config"
	httpHandler "dashqard-redemption/internal/adapter/http/handler"
	"dashqard-redemption/internal/adapter/platform"
	memoryStorage "dashqard-redemption/internal/adapter/storage/memory"
	pgStorage "dashqard-redemption/internal/adapter/storage/postgres"
	redisStorage "dashqard-redemption/internal/adapter/storage/redis"
	"dashqard-redemption/internal/core/ports"
	"dashqard-redemption/internal/service"
	"dashqard-redemption/pkg/logger"

	"github.com/gin-gonic/gin"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load(os.Getenv("DQR_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("session_backend", cfg.Session.Backend).
		Msg("Starting Dashqard redemption API")

	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	// PostgreSQL holds the redemption audit log.
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.Migrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	var (
		sessions       ports.SessionStore
		submitLock     ports.SubmissionLock
		amountCache    ports.AmountCache
		rateLimitStore *redisStorage.RateLimitStore
	)
	switch cfg.Session.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		sessions = redisStorage.NewSessionStore(rdb, cfg.Session.TTL)
		submitLock = redisStorage.NewSubmissionLock(rdb)
		amountCache = redisStorage.NewAmountCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	case "memory":
		store := memoryStorage.NewSessionStore(cfg.Session.TTL)
		go store.RunSweeper(ctx, sweepInterval)
		sessions = store
		submitLock = memoryStorage.NewSubmissionLock()
		log.Warn().Msg("Sessions kept in process memory; amount caching and rate limiting are disabled")
	}

	if cfg.Redemption.FingerprintKey == "" {
		log.Warn().Msg("redemption.fingerprint_key is empty; phone fingerprints are unkeyed")
	}
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("jwt.secret is empty; every bearer token will be rejected")
	}

	platformClient := platform.NewClient(cfg.Platform, log)
	fingerprinter := service.NewBlake2bFingerprinter(cfg.Redemption.FingerprintKey)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	eventRepo := pgStorage.NewRedemptionEventRepo(pool)
	auditSvc := service.NewAuditService(eventRepo, log)
	balances := service.NewBalanceResolver(platformClient, amountCache, fingerprinter, cfg.Redemption.AmountCacheTTL, log)

	redemptionSvc := service.NewRedemptionService(
		sessions,
		platformClient,
		balances,
		submitLock,
		amountCache,
		eventRepo,
		auditSvc,
		fingerprinter,
		service.RedemptionOptions{
			Debounce:         cfg.Redemption.Debounce,
			SubmitLockTTL:    cfg.Redemption.SubmitLockTTL,
			VendorSearchSize: cfg.Platform.VendorSearchSize,
		},
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RedemptionSvc:  redemptionSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// In-flight lookups write to the session store and audit writes to
	// PostgreSQL, so both must finish before the clients close.
	redemptionSvc.Close()
	if err := auditSvc.Wait(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Audit events still pending at shutdown")
	}
	cancelBackground()

	log.Info().Msg("Server exited")
}
