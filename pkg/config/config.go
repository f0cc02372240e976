package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Runtime
	Env       string // development, staging, production
	LogLevel  string
	LogFormat string

	// Meet
	MeetName string // display name, e.g. "Bjelovar Record Breakers"
	MeetSlug string // archive key, e.g. "bjelovar-2025"

	// Pipeline
	InputDir      string
	OutputDir     string
	ClubsFile     string   // nominations file inside InputDir
	TopPerClub    int      // lifters counted per club in rankings
	StripSuffixes []string // division suffixes removed before classification

	// Report server
	Port string

	// Scheduler
	WatchSchedule string // cron expression for watch mode rebuilds

	// Fetch
	FetchRateRPS float64 // polite rate limit for remote downloads

	// Database (optional, archive only)
	Database DatabaseConfig
}

// DatabaseConfig holds PostgreSQL configuration for the meet archive.
type DatabaseConfig struct {
	URL             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		MeetName: getEnv("MEET_NAME", ""),
		MeetSlug: getEnv("MEET_SLUG", ""),

		InputDir:      getEnv("INPUT_DIR", "input"),
		OutputDir:     getEnv("OUTPUT_DIR", "output"),
		ClubsFile:     getEnv("CLUBS_FILE", "klubovi.csv"),
		TopPerClub:    getEnvAsInt("TOP_PER_CLUB", 5),
		StripSuffixes: getEnvAsList("STRIP_SUFFIXES", "-EQ,-OSI"),

		Port: getEnv("PORT", "8090"),

		WatchSchedule: getEnv("WATCH_SCHEDULE", "0 */5 * * * *"),

		FetchRateRPS: getEnvAsFloat("FETCH_RATE_RPS", 1),

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 4),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.TopPerClub < 1 {
		return fmt.Errorf("TOP_PER_CLUB must be at least 1")
	}

	if c.FetchRateRPS <= 0 {
		return fmt.Errorf("FETCH_RATE_RPS must be positive")
	}

	return nil
}

// HasDatabase reports whether the optional archive database is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.URL != ""
}

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
