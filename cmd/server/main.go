// Command server runs the site backend: cached content delivery with
// bundled fallbacks, form-to-email dispatch, and document uploads.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/guidedbycompassion/website/internal/config"
	"github.com/guidedbycompassion/website/internal/content"
	"github.com/guidedbycompassion/website/internal/httpserver"
	"github.com/guidedbycompassion/website/internal/notification"
	"github.com/guidedbycompassion/website/pkg/cache"
	"github.com/guidedbycompassion/website/pkg/health"
	"github.com/guidedbycompassion/website/pkg/logger"
	"github.com/guidedbycompassion/website/pkg/mailer/resend"
	"github.com/guidedbycompassion/website/pkg/redis"
	"github.com/guidedbycompassion/website/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, httpserver.LogExtractor())

	docCache, checks, closeCache, err := newDocumentCache(ctx, cfg.RedisURL, log)
	if err != nil {
		return err
	}
	defer closeCache()

	client := content.NewClient(cfg.Content)
	resolver := content.NewResolver(client, docCache, log)

	// Seed the cache so the first page loads do not wait on the row store.
	// A failed warm-up is an availability concern, not a startup failure.
	if _, err := resolver.WarmFromView(ctx, cfg.Content.BulkTable, cfg.Content.BulkView); err != nil {
		log.Warn("content warm-up failed", "error", err)
	}

	composer := notification.NewComposer(
		resend.New(cfg.Resend),
		cfg.Mailer,
		cfg.Notification,
		cfg.Resend.Configured(),
		log,
	)

	var store storage.Storage
	if cfg.Storage.Configured() {
		s3, err := storage.New(cfg.Storage)
		if err != nil {
			return err
		}
		store = s3
	} else {
		log.Warn("object storage not configured, uploads disabled")
	}

	router := httpserver.NewRouter(httpserver.Deps{
		Resolver:   resolver,
		Composer:   composer,
		Store:      store,
		Log:        log,
		CORSOrigin: cfg.HTTP.CORSOrigin,
		BulkTable:  cfg.Content.BulkTable,
		BulkView:   cfg.Content.BulkView,
		Checks:     checks,
	})

	return httpserver.Run(ctx, cfg.HTTP.Addr, router, log,
		cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.ShutdownTimeout)
}

// newDocumentCache picks the cache backend: Redis when REDIS_URL is set,
// otherwise in-process memory. Redis also contributes a readiness check.
func newDocumentCache(ctx context.Context, redisURL string, log *slog.Logger) (cache.Cache[content.Document], health.Checks, func(), error) {
	if redisURL == "" {
		mem := cache.NewMemory[content.Document]()
		return mem, nil, func() { _ = mem.Close() }, nil
	}

	client, err := redis.Open(ctx, redisURL)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("content cache backed by redis")

	c := cache.NewRedis[content.Document](client, nil)
	checks := health.Checks{"redis": redis.Healthcheck(client)}
	return c, checks, func() { _ = client.Close() }, nil
}
