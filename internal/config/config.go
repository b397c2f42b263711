// Пакет config загружает и валидирует конфигурацию каталога пресетов
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string

	// --- PostgreSQL ---

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	// Режим SSL: disable, require, verify-ca, verify-full
	DBSSLMode string
	// Максимум одновременных подключений в пуле.
	// При исчерпании пула запросы ждут свободное подключение.
	DBMaxConns int32

	// --- Таймауты ---

	// Дедлайн обработки одного API-запроса, включая ожидание подключения к БД
	RequestTimeout   time.Duration
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	// Таймаут graceful shutdown
	ShutdownTimeout time.Duration

	// --- Кэш пресетов ---

	// Максимальное количество пресетов в LRU-кэше
	CacheSize int
	// Время жизни записи в кэше
	CacheTTL time.Duration

	// --- topologymetrics ---

	DephealthGroup         string
	DephealthCheckInterval time.Duration
}

// Load загружает конфигурацию из переменных окружения.
// Перед разбором подхватывает .env из рабочего каталога, если он есть;
// уже заданные переменные окружения .env не перезаписывает.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// --- Сервер ---

	// PC_PORT: порт HTTP-сервера (по умолчанию 8080)
	cfg.Port, err = getEnvInt("PC_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("PC_PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PC_PORT: значение %d вне допустимого диапазона 1-65535", cfg.Port)
	}

	cfg.LogLevel, err = parseLogLevel(getEnvDefault("PC_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("PC_LOG_LEVEL: %w", err)
	}

	cfg.LogFormat = getEnvDefault("PC_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("PC_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	// --- PostgreSQL ---

	cfg.DBHost, err = getEnvRequired("PC_DB_HOST")
	if err != nil {
		return nil, err
	}

	cfg.DBPort, err = getEnvInt("PC_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("PC_DB_PORT: %w", err)
	}

	cfg.DBName, err = getEnvRequired("PC_DB_NAME")
	if err != nil {
		return nil, err
	}

	cfg.DBUser, err = getEnvRequired("PC_DB_USER")
	if err != nil {
		return nil, err
	}

	cfg.DBPassword, err = getEnvRequired("PC_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	cfg.DBSSLMode = getEnvDefault("PC_DB_SSL_MODE", "disable")
	validSSLModes := map[string]bool{
		"disable": true, "require": true, "verify-ca": true, "verify-full": true,
	}
	if !validSSLModes[cfg.DBSSLMode] {
		return nil, fmt.Errorf("PC_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	// PC_DB_MAX_CONNS: размер пула (по умолчанию 5)
	maxConns, err := getEnvInt("PC_DB_MAX_CONNS", 5)
	if err != nil {
		return nil, fmt.Errorf("PC_DB_MAX_CONNS: %w", err)
	}
	if maxConns < 1 || maxConns > 1000 {
		return nil, fmt.Errorf("PC_DB_MAX_CONNS: значение %d вне допустимого диапазона 1-1000", maxConns)
	}
	cfg.DBMaxConns = int32(maxConns)

	// --- Таймауты ---

	cfg.RequestTimeout, err = getEnvPositiveDuration("PC_REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_REQUEST_TIMEOUT: %w", err)
	}

	cfg.HTTPReadTimeout, err = getEnvDuration("PC_HTTP_READ_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_HTTP_READ_TIMEOUT: %w", err)
	}

	cfg.HTTPWriteTimeout, err = getEnvDuration("PC_HTTP_WRITE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_HTTP_WRITE_TIMEOUT: %w", err)
	}

	cfg.HTTPIdleTimeout, err = getEnvDuration("PC_HTTP_IDLE_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_HTTP_IDLE_TIMEOUT: %w", err)
	}

	cfg.ShutdownTimeout, err = getEnvDuration("PC_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_SHUTDOWN_TIMEOUT: %w", err)
	}

	// --- Кэш ---

	cfg.CacheSize, err = getEnvInt("PC_CACHE_SIZE", 1000)
	if err != nil {
		return nil, fmt.Errorf("PC_CACHE_SIZE: %w", err)
	}
	if cfg.CacheSize < 1 {
		return nil, fmt.Errorf("PC_CACHE_SIZE: значение должно быть > 0")
	}

	cfg.CacheTTL, err = getEnvPositiveDuration("PC_CACHE_TTL", time.Minute)
	if err != nil {
		return nil, fmt.Errorf("PC_CACHE_TTL: %w", err)
	}

	// --- topologymetrics ---

	cfg.DephealthGroup = getEnvDefault("PC_DEPHEALTH_GROUP", "preset-catalog")

	cfg.DephealthCheckInterval, err = getEnvPositiveDuration("PC_DEPHEALTH_CHECK_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PC_DEPHEALTH_CHECK_INTERVAL: %w", err)
	}

	return cfg, nil
}

// DatabaseDSN возвращает строку подключения к PostgreSQL для pgxpool.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

// MigrateURL возвращает URL для golang-migrate (драйвер pgx5).
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}

// DatabaseURL возвращает URL PostgreSQL без учётных данных.
// Используется только для лейблов метрик topologymetrics.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%d/%s", c.DBHost, c.DBPort, c.DBName)
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// getEnvPositiveDuration как getEnvDuration, но требует значение > 0.
func getEnvPositiveDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	d, err := getEnvDuration(key, defaultVal)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("значение должно быть > 0")
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}
