// File: internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config 服務啟動所需的全部設定
type Config struct {
	Host            string
	Port            string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RunMigrations   bool
	LogLevel        zerolog.Level
	LogPretty       bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// godotenvLoad 測試可覆寫
var godotenvLoad = func() error { return godotenv.Load() }

// Load 讀取 .env（若存在）與環境變數
func Load() (*Config, error) {
	_ = godotenvLoad()

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("無效的 REDIS_DB: %w", err)
	}

	runMigrations, err := getBoolEnv("RUN_MIGRATIONS", true)
	if err != nil {
		return nil, fmt.Errorf("無效的 RUN_MIGRATIONS: %w", err)
	}

	logPretty, err := getBoolEnv("LOG_PRETTY", false)
	if err != nil {
		return nil, fmt.Errorf("無效的 LOG_PRETTY: %w", err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("無效的 LOG_LEVEL: %w", err)
	}

	shutdownSeconds, err := getIntEnv("SHUTDOWN_TIMEOUT", 10)
	if err != nil || shutdownSeconds <= 0 {
		return nil, fmt.Errorf("無效的 SHUTDOWN_TIMEOUT: %q", os.Getenv("SHUTDOWN_TIMEOUT"))
	}

	return &Config{
		Host:            os.Getenv("HOST"),
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     databaseURL(),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		RunMigrations:   runMigrations,
		LogLevel:        level,
		LogPretty:       logPretty,
		AllowedOrigins:  getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
	}, nil
}

// Address 回傳 echo 監聽位址 (host:port)
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// databaseURL 優先使用 DATABASE_URL，否則由 DB_* 組出連線字串
func databaseURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("DB_USER", "postgres"), getEnv("DB_PASSWORD", "password")),
		Host:   getEnv("DB_HOST", "localhost") + ":" + getEnv("DB_PORT", "5432"),
		Path:   "/" + getEnv("DB_NAME", "dev"),
	}
	return u.String()
}

// MaskPassword 將連線字串中的密碼替換為 ****，供日誌輸出
func MaskPassword(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); !ok {
		return dsn
	}
	u.User = url.UserPassword(u.User.Username(), "****")
	return strings.Replace(u.String(), "%2A%2A%2A%2A", "****", 1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
