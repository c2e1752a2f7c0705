package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Shopify   ShopifyConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce_api"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type ShopifyConfig struct {
	ShopName      string `env:"SHOPIFY_SHOP_NAME"`
	AccessToken   string `env:"SHOPIFY_ACCESS_TOKEN"`
	WebhookSecret string `env:"SHOPIFY_WEBHOOK_SECRET"`
}

type RateLimitConfig struct {
	// Backend selects the login limiter store: "memory" (process-local) or
	// "redis" (shared across replicas).
	Backend string        `env:"RATE_LIMIT_BACKEND, default=memory"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW,  default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
