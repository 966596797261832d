package bootstrap

import (
	"context"
	"crypto/tls"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/hotelmadagascar/concierge/internal/catalog"
	appconfig "github.com/hotelmadagascar/concierge/internal/config"
	"github.com/hotelmadagascar/concierge/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildDatabase opens the Postgres connection when a database URL is
// configured. Returns nil without error when persistence is disabled.
func BuildDatabase(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*sql.DB, error) {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: ping database: %w", err)
	}
	logger.Info("database connected")
	return db, nil
}

// BuildCatalog loads the service catalog and knowledge base. A configured
// seed file overrides the built-in data.
func BuildCatalog(cfg *appconfig.Config, logger *logging.Logger) (*catalog.Store, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg == nil || strings.TrimSpace(cfg.SeedPath) == "" {
		return catalog.NewStore(nil, nil), nil
	}

	raw, err := os.ReadFile(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: read seed file: %w", err)
	}
	var feed catalog.Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("bootstrap: parse seed file: %w", err)
	}
	logger.Info("catalog loaded from seed file",
		"path", cfg.SeedPath,
		"services", len(feed.Services),
		"knowledge_items", len(feed.Knowledge),
	)
	return catalog.NewStore(feed.Services, feed.Knowledge), nil
}
