package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pointswise/internal/api"
	"pointswise/internal/api/handlers"
	"pointswise/internal/engine"
	"pointswise/internal/repository"
	"pointswise/internal/service"
	"pointswise/pkg/config"
	"pointswise/pkg/logger"
	"pointswise/pkg/middleware"
)

// @title Pointswise API
// @version 1.0
// @description Booking decision engine: compares portal, direct, and award payment paths for a trip

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting pointswise service")

	// Engine tuning: defaults overridden by configuration.
	params := engineParams(cfg.Engine)

	// Result cache: redis when configured, in-process map otherwise.
	var cache repository.ResultCache
	if cfg.Redis.Enabled {
		redisCache := repository.NewRedisCache(cfg.Redis.Addr, appLogger)
		defer redisCache.Close()
		cache = redisCache
		appLogger.Info("Using redis result cache", zap.String("addr", cfg.Redis.Addr))
	} else {
		cache = repository.NewMockCache()
		appLogger.Info("Using in-process result cache")
	}

	// Services
	compareService := service.NewComparisonService(params, cache, cfg.Redis.TTL, appLogger)
	partnerService := service.NewPartnerService()

	// Handlers
	compareHandler := handlers.NewCompareHandler(compareService, appLogger)
	partnerHandler := handlers.NewPartnerHandler(partnerService, appLogger)

	// Rate limiter, one bucket refill per minute.
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	// Setup router
	app := api.SetupRouter(compareHandler, partnerHandler, limiter, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

func engineParams(cfg config.Engine) engine.Params {
	params := engine.DefaultParams()
	params.CloseCallDollarGap = cfg.CloseCallDollarGap
	params.CloseCallPercentGap = cfg.CloseCallPercentGap
	params.FXWideningFactor = cfg.FXWideningFactor
	params.AwardCPPFloorCents = cfg.AwardCPPFloorCents
	params.DoubleDipFloorRate = cfg.DoubleDipFloorRate
	params.CreditMaximum = cfg.CreditMaximum
	params.MilesPriceCents = cfg.MilesPriceCents
	return params
}
