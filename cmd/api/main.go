package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hotelmadagascar/concierge/internal/api/router"
	"github.com/hotelmadagascar/concierge/internal/app/bootstrap"
	"github.com/hotelmadagascar/concierge/internal/chatbot"
	appconfig "github.com/hotelmadagascar/concierge/internal/config"
	"github.com/hotelmadagascar/concierge/internal/observability/metrics"
	"github.com/hotelmadagascar/concierge/internal/records"
	"github.com/hotelmadagascar/concierge/internal/session"
	"github.com/hotelmadagascar/concierge/internal/webchat"
	"github.com/hotelmadagascar/concierge/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting concierge API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	catalogStore, err := bootstrap.BuildCatalog(cfg, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient == nil {
		logger.Error("redis is required for conversation state", "addr", cfg.RedisAddr)
		os.Exit(1)
	}
	sessions := session.New(redisClient, cfg.SessionTTL)

	var recorder webchat.Recorder
	var recordsHandler *records.Handler
	db, err := bootstrap.BuildDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer func() { _ = db.Close() }()
		repo := records.NewRepository(db)
		recorder = repo
		recordsHandler = records.NewHandler(repo, logger)
	} else {
		logger.Warn("no database configured, bookings will not be persisted")
	}

	registry := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(registry)

	engine := chatbot.NewEngine(catalogStore)
	chatHandler := webchat.NewHandler(engine, sessions, recorder, catalogStore, chatMetrics, logger)
	chatHandler.DefaultLang = cfg.DefaultLang

	r := router.New(&router.Config{
		Logger:             logger,
		WebchatHandler:     chatHandler,
		RecordsHandler:     recordsHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ChatRateLimit:      float64(cfg.ChatRateLimit),
		ChatRateBurst:      cfg.ChatRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}
