// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/guidedbycompassion/website/internal/content"
	"github.com/guidedbycompassion/website/internal/notification"
	"github.com/guidedbycompassion/website/pkg/logger"
	"github.com/guidedbycompassion/website/pkg/mailer"
	"github.com/guidedbycompassion/website/pkg/mailer/resend"
	"github.com/guidedbycompassion/website/pkg/storage"
)

// Config is the full service configuration, one nested struct per concern.
type Config struct {
	HTTP HTTP

	Content      content.Config
	Notification notification.Config
	Mailer       mailer.Config
	Resend       resend.Config
	Storage      storage.Config
	Sentry       logger.SentryConfig

	// RedisURL switches the content cache from the in-process backend to
	// Redis when set.
	RedisURL string `env:"REDIS_URL"`
}

// HTTP holds the listener settings.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// CORSOrigin is the site origin allowed to call the API.
	CORSOrigin string `env:"HTTP_CORS_ORIGIN" envDefault:"*"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
