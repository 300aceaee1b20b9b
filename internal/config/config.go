package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Migration  MigrationConfig
	Cache      CacheConfig
	Reports    ReportsConfig
	Pagination PaginationConfig
	RateLimit  RateLimitConfig
	Summary    SummaryConfig
	LogLevel   slog.Level
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ServiceName      string
	Version          string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Schema          string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MigrationConfig struct {
	AutoMigrate    bool
	Seed           bool
	MigrationsPath string
	SeedsPath      string
}

// CacheConfig controls the redis-backed report cache
type CacheConfig struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string
}

type ReportsConfig struct {
	DefaultWindowDays int
}

type PaginationConfig struct {
	DefaultSize int
	MaxSize     int
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

type SummaryConfig struct {
	Currency string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ServiceName:     getEnv("SERVICE_NAME", "payment-api"),
			Version:         getEnv("SERVICE_VERSION", "1.0.0"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "payment_platform"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			Schema:          getEnv("DB_SCHEMA", "operators"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Migration: MigrationConfig{
			AutoMigrate:    getBoolEnv("AUTO_MIGRATE", false),
			Seed:           getBoolEnv("SEED_DATABASE", false),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:      getEnv("SEEDS_PATH", "db/seeds"),
		},
		Cache: CacheConfig{
			Enabled:   getBoolEnv("CACHE_ENABLED", false),
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			TTL:       getDurationEnv("CACHE_TTL", 10*time.Minute),
			KeyPrefix: getEnv("CACHE_KEY_PREFIX", "payment-api:"),
		},
		Reports: ReportsConfig{
			DefaultWindowDays: getIntEnv("REPORT_DEFAULT_WINDOW_DAYS", 30),
		},
		Pagination: PaginationConfig{
			DefaultSize: getIntEnv("PAGINATION_DEFAULT_SIZE", 20),
			MaxSize:     getIntEnv("PAGINATION_MAX_SIZE", 100),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Summary: SummaryConfig{
			Currency: getEnv("SUMMARY_CURRENCY", "USD"),
		},
		LogLevel: getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	if c.Schema != "" {
		dsn += " search_path=" + c.Schema
	}
	return dsn
}

// URL returns the connection string in URL form for database/sql and golang-migrate
func (c *DatabaseConfig) URL() string {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
	if c.Schema != "" {
		url += "&search_path=" + c.Schema
	}
	return url
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// Address returns host:port for the HTTP listener
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getLogLevelEnv(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		log.Printf("Invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return level
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
