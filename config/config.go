package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Unknown item pricing policies for order submission
const (
	UnknownItemZeroPrice = "zero"
	UnknownItemReject    = "reject"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Email        EmailConfig
	App          AppConfig
	CORS         CORSConfig
	Redis        RedisConfig
	Order        OrderConfig
	S3           S3Config
	Log          LogConfig
	Notification NotificationConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	URL          string
	MaxIdleConns int
	MaxOpenConns int
}

type EmailConfig struct {
	ResendAPIKey    string
	From            string
	RestaurantEmail string
}

type AppConfig struct {
	RestaurantName string
	BaseURL        string // used for links in emails and QR codes
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RedisConfig struct {
	Addr         string // empty disables the menu cache
	Password     string
	DB           int
	MenuCacheTTL time.Duration
	RefreshSpec  string
}

type OrderConfig struct {
	UnknownItemPolicy string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	BaseURL         string // CloudFront or S3 direct URL
}

type LogConfig struct {
	Level  string
	Format string
}

type NotificationConfig struct {
	Workers   int
	QueueSize int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	environment := getEnv("ENVIRONMENT", EnvDevelopment)
	defaultFormat := "console"
	if environment == EnvProduction {
		defaultFormat = "json"
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: environment,
		},
		Database: DatabaseConfig{
			URL:          getEnv("DATABASE_URL", ""),
			MaxIdleConns: parseInt(getEnv("DB_MAX_IDLE_CONNS", "10"), 10),
			MaxOpenConns: parseInt(getEnv("DB_MAX_OPEN_CONNS", "100"), 100),
		},
		Email: EmailConfig{
			ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
			From:            getEnv("EMAIL_FROM", "Elegance Restaurant <onboarding@resend.dev>"),
			RestaurantEmail: getEnv("RESTAURANT_EMAIL", "reservations@elegance-restaurant.com"),
		},
		App: AppConfig{
			RestaurantName: getEnv("RESTAURANT_NAME", "Elegance Restaurant"),
			BaseURL:        strings.TrimRight(getEnv("BASE_URL", "http://localhost:3000"), "/"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           parseInt(getEnv("REDIS_DB", "0"), 0),
			MenuCacheTTL: parseDuration(getEnv("MENU_CACHE_TTL", "5m"), 5*time.Minute),
			RefreshSpec:  getEnv("MENU_CACHE_REFRESH", "@every 5m"),
		},
		Order: OrderConfig{
			UnknownItemPolicy: strings.ToLower(getEnv("ORDER_UNKNOWN_ITEM_POLICY", UnknownItemZeroPrice)),
		},
		S3: S3Config{
			Region:          getEnv("S3_REGION", "eu-central-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			BaseURL:         strings.TrimRight(getEnv("S3_BASE_URL", ""), "/"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultFormat),
		},
		Notification: NotificationConfig{
			Workers:   parseInt(getEnv("NOTIFICATION_WORKERS", "2"), 2),
			QueueSize: parseInt(getEnv("NOTIFICATION_QUEUE_SIZE", "64"), 64),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations that must never run.
// The ephemeral development database is only reachable outside production.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Database.URL == "" {
		return errors.New("DATABASE_URL is required in production")
	}
	switch c.Order.UnknownItemPolicy {
	case UnknownItemZeroPrice, UnknownItemReject:
	default:
		return fmt.Errorf("invalid ORDER_UNKNOWN_ITEM_POLICY %q", c.Order.UnknownItemPolicy)
	}
	if c.Notification.Workers < 1 {
		return errors.New("NOTIFICATION_WORKERS must be at least 1")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

func (c *DatabaseConfig) DSN() string {
	return c.URL
}

// UseEphemeral reports whether the process should fall back to an in-memory database.
func (c *DatabaseConfig) UseEphemeral() bool {
	return c.URL == ""
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *S3Config) Enabled() bool {
	return c.Bucket != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
