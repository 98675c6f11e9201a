package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string

	CORSAllowedOrigins []string

	LogFormat        string
	LogLevel         string
	MetricsNamespace string
	EnablePrometheus bool
	EnableTracing    bool
	OTLPEndpoint     string
	TracingSampling  float64

	MenuCacheTTL time.Duration

	EventsWebhookURL     string
	EventsWebhookSecret  string
	EventsWebhookTimeout time.Duration

	QuoteRateLimitMax    int
	QuoteRateLimitWindow time.Duration

	// Discount strategy parameters; defaults mirror the stock promo
	// configuration.
	PromoAmount      int64
	PromoMinSpend    int64
	VoucherRateBps   int
	VoucherCap       int64
	HappyHourRateBps int
	HappyHourStart   string
	HappyHourEnd     string
	BirthdayRateBps  int
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:      valueOrDefault(k.String("APP_ENV"), "development"),
		Port:        valueOrDefault(k.String("PORT"), "8080"),
		DatabaseURL: k.String("DATABASE_URL"),
		RedisURL:    k.String("REDIS_URL"),

		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),

		LogFormat:        valueOrDefault(k.String("OBS_LOG_FORMAT"), "json"),
		LogLevel:         valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		MetricsNamespace: valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "resto"),
		EnablePrometheus: parseBool(valueOrDefault(k.String("OBS_ENABLE_PROMETHEUS"), "true")),
		EnableTracing:    parseBool(valueOrDefault(k.String("OBS_ENABLE_TRACING"), "true")),
		OTLPEndpoint:     k.String("OBS_OTLP_ENDPOINT"),
		TracingSampling:  parseFloat(k.String("OBS_TRACING_SAMPLING_RATIO"), 1.0),

		MenuCacheTTL: parseDuration(k.String("MENU_CACHE_TTL"), "5m"),

		EventsWebhookURL:     k.String("EVENTS_WEBHOOK_URL"),
		EventsWebhookSecret:  k.String("EVENTS_WEBHOOK_SECRET"),
		EventsWebhookTimeout: parseDuration(k.String("EVENTS_WEBHOOK_TIMEOUT"), "5s"),

		QuoteRateLimitMax:    parseInt(k.String("QUOTE_RATELIMIT_MAX"), 60),
		QuoteRateLimitWindow: parseDuration(k.String("QUOTE_RATELIMIT_WINDOW"), "1m"),

		PromoAmount:      parseInt64(k.String("PRICING_PROMO_AMOUNT"), 20_000),
		PromoMinSpend:    parseInt64(k.String("PRICING_PROMO_MIN_SPEND"), 100_000),
		VoucherRateBps:   parseInt(k.String("PRICING_VOUCHER_RATE_BPS"), 2_000),
		VoucherCap:       parseInt64(k.String("PRICING_VOUCHER_CAP"), 50_000),
		HappyHourRateBps: parseInt(k.String("PRICING_HAPPY_HOUR_RATE_BPS"), 2_500),
		HappyHourStart:   valueOrDefault(k.String("PRICING_HAPPY_HOUR_START"), "14:00"),
		HappyHourEnd:     valueOrDefault(k.String("PRICING_HAPPY_HOUR_END"), "16:00"),
		BirthdayRateBps:  parseInt(k.String("PRICING_BIRTHDAY_RATE_BPS"), 3_000),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// HappyHourWindow parses the configured HH:MM bounds into minutes since
// midnight, falling back to 14:00-16:00 on malformed input.
func (c *Config) HappyHourWindow() (start, end int) {
	start = parseClock(c.HappyHourStart, 14*60)
	end = parseClock(c.HappyHourEnd, 16*60)
	if end < start {
		start, end = 14*60, 16*60
	}
	return start, end
}

func parseClock(value string, fallback int) int {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return fallback
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fallback
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fallback
	}
	return hour*60 + minute
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func parseInt64(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(envs map[string]string) (*Config, error) {
	original := make(map[string]string, len(envs))
	for key := range envs {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, envs[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
