package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EmailConfig holds configuration for the outbound mailer.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// Config holds all configuration for the application
type Config struct {
	Environment        string
	Port               string
	BaseURL            string
	DefaultLocale      string
	AllowedOrigins     []string
	PageSize           int
	BookingFailureRate float64
	BookingDelayMs     int
	Email              EmailConfig
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		BaseURL:       os.Getenv("BASE_URL"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.PageSize = 12
	if s := os.Getenv("PAGE_SIZE"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			cfg.PageSize = v
		}
	}

	// Fault injection for the booking workflow; off unless configured.
	if s := os.Getenv("BOOKING_FAILURE_RATE"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 1 {
			cfg.BookingFailureRate = v
		}
	}
	if s := os.Getenv("BOOKING_DELAY_MS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.BookingDelayMs = v
		}
	}

	return cfg, nil
}
