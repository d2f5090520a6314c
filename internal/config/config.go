package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port            string
	Mode            string
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// MySQLConfig database settings
type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// RateLimitConfig bounds requests per client IP on the auth endpoints.
type RateLimitConfig struct {
	Requests int64
	Window   time.Duration
}

type Config struct {
	Server      ServerConfig
	MySQL       MySQLConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	JWT         JWTConfig
	RateLimit   RateLimitConfig
	CORSOrigins []string
	SeedData    bool
}

var defaultCORSOrigins = []string{
	"http://localhost:3000", "http://127.0.0.1:3000",
	"http://localhost:5500", "http://127.0.0.1:5500",
	"http://localhost:8000", "http://127.0.0.1:8000",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetDefault("MYSQL_HOST", "127.0.0.1")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_USER", "shop")
	v.SetDefault("MYSQL_DATABASE", "shop")
	v.SetDefault("MYSQL_MAX_OPEN_CONNS", 100)
	v.SetDefault("MYSQL_MAX_IDLE_CONNS", 20)
	v.SetDefault("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("MYSQL_CONN_MAX_IDLE_TIME", time.Minute)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RABBITMQ_EXCHANGE", "shop.exchange")

	v.SetDefault("JWT_TTL", 2*time.Hour)
	v.SetDefault("JWT_ISSUER", "shop-service")

	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	v.SetDefault("SEED_DATA", true)
	return v
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := newViper()

	dsn := v.GetString("MYSQL_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			v.GetString("MYSQL_USER"),
			v.GetString("MYSQL_PASSWORD"),
			v.GetString("MYSQL_HOST"),
			v.GetString("MYSQL_PORT"),
			v.GetString("MYSQL_DATABASE"),
		)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			Mode:            v.GetString("GIN_MODE"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		MySQL: MySQLConfig{
			DSN:             dsn,
			MaxOpenConns:    v.GetInt("MYSQL_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("MYSQL_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("MYSQL_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("MYSQL_CONN_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			TTL:    v.GetDuration("JWT_TTL"),
			Issuer: v.GetString("JWT_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt64("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		SeedData:    v.GetBool("SEED_DATA"),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
