package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "8080"
	DefaultAccessTokenExpiryMin  = 60
	DefaultRefreshTokenExpiryMin = 10080
	DefaultLoginMaxAttempts      = 5
	DefaultUnlockCodeTTLMin      = 10
	DefaultAuditBufferSize       = 256
	DefaultSMTPPort              = 587
	DefaultLogLevel              = "info"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	DBURL         string
	RedisAddr     string
	RedisPassword string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	LoginMaxAttempts int
	UnlockCodeTTLMin int
	AuditBufferSize  int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

// Load builds the configuration once at startup. Values come from
// config/.env.dev or config/.env.prod depending on ENV, with real
// environment variables taking precedence over file entries.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("no env file loaded from %s: %v", envFile, err)
	}

	return &Config{
		Env:      env,
		Port:     getEnv("PORT", DefaultPort),
		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),

		DBURL:         mustGetEnv("DB_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),

		LoginMaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		UnlockCodeTTLMin: getEnvAsInt("UNLOCK_CODE_TTL", DefaultUnlockCodeTTLMin),
		AuditBufferSize:  getEnvAsInt("AUDIT_BUFFER_SIZE", DefaultAuditBufferSize),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", DefaultSMTPPort),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@localhost"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
