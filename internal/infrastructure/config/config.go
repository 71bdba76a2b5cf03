package config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full process configuration, loaded once at startup. The three
// historical deployment variants differ only in AllowedOrigins and cookie
// attributes, so those are environment settings rather than code paths.
type Config struct {
	Port      string        `env:"PORT,      default=3000"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	Cookie CookieConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// CookieConfig holds the deployment-dependent session cookie attributes.
type CookieConfig struct {
	Secure   bool   `env:"COOKIE_SECURE,   default=true"`
	SameSite string `env:"COOKIE_SAMESITE, default=none"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI"`
	Database string        `env:"MONGO_DB,      default=cart"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// SameSiteMode maps the configured string to its http.SameSite value.
// Unrecognised values fall back to SameSiteNoneMode, the cross-origin
// deployment default.
func (c CookieConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}

// Load reads configuration from environment variables and enforces the
// startup preconditions: without a signing secret or a store URI the process
// would limp along issuing unsigned tokens or failing every request, so it
// refuses to start instead.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.Mongo.URI == "" {
		return errors.New("config: MONGO_URI is required")
	}
	return nil
}
