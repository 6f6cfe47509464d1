package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hemstore-gateway/config"
	httpHandler "hemstore-gateway/internal/adapter/http/handler"
	pgStorage "hemstore-gateway/internal/adapter/storage/postgres"
	redisStorage "hemstore-gateway/internal/adapter/storage/redis"
	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/internal/service"
	"hemstore-gateway/pkg/logger"
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

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Hemstore gateway integration service")

	ctx := context.Background()

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

	// Initialize repositories
	orderRepo := pgStorage.NewOrderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Gateway credential profiles. Logistics falls back to the payment
	// profile when unset, matching merchants whose contract covers both
	// legs under one credential set.
	paymentProfile := cfg.Gateway.Payment.Profile(domain.PurposePayment)
	logisticsProfile := cfg.Gateway.Logistics.Profile(domain.PurposeLogistics)
	if logisticsProfile.IsAbsent() && !paymentProfile.IsAbsent() {
		log.Info().Msg("logistics credentials unset, falling back to payment profile")
		logisticsProfile = paymentProfile
		logisticsProfile.Purpose = domain.PurposeLogistics
	}
	for _, p := range []domain.CredentialProfile{paymentProfile, logisticsProfile} {
		if !p.IsAbsent() {
			if err := p.Validate(); err != nil {
				log.Fatal().Err(err).Str("purpose", string(p.Purpose)).Msg("Invalid gateway credentials")
			}
			log.Info().
				Str("purpose", string(p.Purpose)).
				Str("identifier", p.Identifier).
				Str("hash_key", logger.Mask(p.CipherKey, 4)).
				Msg("Gateway credentials loaded")
		} else {
			log.Warn().Str("purpose", string(p.Purpose)).Msg("Gateway credentials unset, feature disabled")
		}
	}

	encoding, err := domain.ParseCipherEncoding(cfg.Gateway.CipherEncoding)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid cipher encoding")
	}

	// Initialize core services
	codec := service.NewEnvelopeCodec(encoding)
	builder := service.NewTradeBuilder(orderRepo, codec, service.TradeBuilderConfig{
		MPGURL:        cfg.Gateway.MPGURL,
		StoreMapURL:   cfg.Gateway.StoreMapURL,
		NotifyBaseURL: cfg.Gateway.NotifyBaseURL,
		ClientBaseURL: cfg.Gateway.ClientBaseURL,
		ItemDesc:      cfg.Gateway.ItemDesc,
		TradeLimitSec: cfg.Gateway.TradeLimitSec,
		FieldSuffix:   cfg.Gateway.FieldSuffix,
		Payment:       paymentProfile,
		Logistics:     logisticsProfile,
	}, log)
	verifier := service.NewCallbackVerifier(codec, service.DefaultCallbackFieldNames(), paymentProfile, logisticsProfile, log)
	settlement := service.NewSettlementService(orderRepo, log)
	orderSvc := service.NewOrderService(orderRepo, transactor, log)

	var relay ports.StoreRelay
	if !logisticsProfile.IsAbsent() {
		relay, err = service.NewStoreRelay(logisticsProfile, cfg.Relay.TTL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize store relay")
		}
	} else {
		relay = unavailableRelay{}
	}

	// Initialize rate limit store and health checkers
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:       orderSvc,
		TradeBuilder:   builder,
		Verifier:       verifier,
		Settlement:     settlement,
		StoreRelay:     relay,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Diag: httpHandler.DiagConfig{
			MPGURL:         cfg.Gateway.MPGURL,
			StoreMapURL:    cfg.Gateway.StoreMapURL,
			NotifyBaseURL:  cfg.Gateway.NotifyBaseURL,
			ClientBaseURL:  cfg.Gateway.ClientBaseURL,
			CipherEncoding: encoding,
			FieldSuffix:    cfg.Gateway.FieldSuffix,
			Payment:        paymentProfile,
			Logistics:      logisticsProfile,
		},
		ClientBaseURL: cfg.Gateway.ClientBaseURL,
		Logger:        log,
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
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
