package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/lunchly/utils"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	SeedDemoData       bool
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lunchly"),
		SQLitePath: getEnv("SQLITE_PATH", "lunchly.db"),

		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		RateLimitRPS:       getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 20),
		SeedDemoData:       getBool("SEED_DEMO_DATA", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
