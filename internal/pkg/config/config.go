package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	AppSecret string `env:"APP_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig
}

type UpstreamConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=https://sandbox.dibuiltadi.com"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=30s"`
}

type SessionConfig struct {
	// Backend selects where the operator's bearer token lives between
	// requests: "cookie" (sealed into the cookie itself) or "redis".
	Backend    string        `env:"SESSION_BACKEND, default=cookie"`
	CookieName string        `env:"SESSION_COOKIE,  default=dashboard_session"`
	TTL        time.Duration `env:"SESSION_TTL,     default=24h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
