package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Локальный резервный реестр (SQLite)
	LocalDBPath string `env:"LOCAL_DB_PATH" envDefault:"kt-monitor.db"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Admin PIN
	AdminUsername    string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminFallbackPIN string `env:"ADMIN_FALLBACK_PIN"`
	AdminInitialPIN  string `env:"ADMIN_INITIAL_PIN"`

	// Geocoder Config
	NominatimURL           string        `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeCountrySuffix   string        `env:"GEOCODE_COUNTRY_SUFFIX" envDefault:"Thailand"`
	GeocodeRateLimit       float64       `env:"GEOCODE_RATE_LIMIT" envDefault:"1"`
	GeocodeCacheTTL        time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"24h"`
	GeocodeSuggestionLimit int           `env:"GEOCODE_SUGGESTION_LIMIT" envDefault:"5"`

	// Ranking Config
	RankingAverageSpeedKmh float64 `env:"RANKING_AVERAGE_SPEED_KMH" envDefault:"30"`
	RankingRoadFactor      float64 `env:"RANKING_ROAD_FACTOR" envDefault:"1.35"`
	RankingMaxResults      int     `env:"RANKING_MAX_RESULTS" envDefault:"0"`

	// MinIO Config
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioBucket    string `env:"MINIO_BUCKET" envDefault:"responders"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		LocalDBPath:            getEnv("LOCAL_DB_PATH", "kt-monitor.db"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:                getEnvAsList("API_KEYS", nil),
		AdminUsername:          getEnv("ADMIN_USERNAME", "admin"),
		AdminFallbackPIN:       os.Getenv("ADMIN_FALLBACK_PIN"),
		AdminInitialPIN:        os.Getenv("ADMIN_INITIAL_PIN"),
		NominatimURL:           getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocodeCountrySuffix:   getEnv("GEOCODE_COUNTRY_SUFFIX", "Thailand"),
		GeocodeRateLimit:       getEnvAsFloat("GEOCODE_RATE_LIMIT", 1),
		GeocodeCacheTTL:        getEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		GeocodeSuggestionLimit: getEnvAsInt("GEOCODE_SUGGESTION_LIMIT", 5),
		RankingAverageSpeedKmh: getEnvAsFloat("RANKING_AVERAGE_SPEED_KMH", 30),
		RankingRoadFactor:      getEnvAsFloat("RANKING_ROAD_FACTOR", 1.35),
		RankingMaxResults:      getEnvAsInt("RANKING_MAX_RESULTS", 0),
		MinioEndpoint:          os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:         os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:         os.Getenv("MINIO_SECRET_KEY"),
		MinioUseSSL:            getEnvAsBool("MINIO_USE_SSL", false),
		MinioBucket:            getEnv("MINIO_BUCKET", "responders"),
		CORSAllowedOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.WebhookMaxRetries < 1 {
		return nil, fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", cfg.WebhookMaxRetries)
	}
	if cfg.RankingAverageSpeedKmh <= 0 {
		return nil, fmt.Errorf("RANKING_AVERAGE_SPEED_KMH must be positive, got %v", cfg.RankingAverageSpeedKmh)
	}

	return cfg, nil
}

// ImagesEnabled сообщает, настроено ли хранилище изображений
func (c *Config) ImagesEnabled() bool {
	return c.MinioEndpoint != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список значений, разделенных запятыми
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
