package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultStoreConnectTimeout - сколько ждать Postgres и Redis при старте
const DefaultStoreConnectTimeout = 30 * time.Second

// Config - структура для хранения конфигурации клиента синхронизации
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"4"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	StoreConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"30s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Backend
	BackendURL   string        `env:"BACKEND_URL" envDefault:"http://localhost:8080/api"`
	WebSocketURL string        `env:"WEBSOCKET_URL" envDefault:"ws://localhost:8080/ws/websocket"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	// Realtime
	ReconnectInitial time.Duration `env:"RECONNECT_INITIAL" envDefault:"5s"`
	ReconnectMax     time.Duration `env:"RECONNECT_MAX" envDefault:"60s"`
	Heartbeat        time.Duration `env:"STOMP_HEARTBEAT" envDefault:"4s"`

	// Сессия пользователя (сохранённый токен)
	UserID      string `env:"USER_ID"`
	AuthToken   string `env:"AUTH_TOKEN"`
	HouseholdID string `env:"HOUSEHOLD_ID"`

	// Map
	InitialLat     float64       `env:"MAP_INITIAL_LAT" envDefault:"63.43"`
	InitialLng     float64       `env:"MAP_INITIAL_LNG" envDefault:"10.39"`
	MapDebounce    time.Duration `env:"MAP_DEBOUNCE" envDefault:"500ms"`
	NoticeDuration time.Duration `env:"MAP_NOTICE_DURATION" envDefault:"3s"`

	// Geocoding / geolocation / routing
	GeocodingURL       string        `env:"GEOCODING_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodingUserAgent string        `env:"GEOCODING_USER_AGENT" envDefault:"EmergencyMapApplication"`
	GeocodingCountry   string        `env:"GEOCODING_COUNTRY" envDefault:"no"`
	GeocodingCacheTTL  time.Duration `env:"GEOCODING_CACHE_TTL" envDefault:"24h"`
	IPGeolocationURL   string        `env:"IP_GEOLOCATION_URL" envDefault:"https://ipapi.co/json/"`
	RoutingURL         string        `env:"ROUTING_URL" envDefault:"https://router.project-osrm.org"`
	PositionMaxAge     time.Duration `env:"POSITION_MAX_AGE" envDefault:"10s"`

	// Position sharing
	PositionInterval time.Duration `env:"POSITION_INTERVAL" envDefault:"30s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         int32(getEnvAsInt("DB_MAX_CONNS", 4)),
		HTTPPort:           getEnv("HTTP_PORT", "8090"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:8080/api"),
		WebSocketURL:       getEnv("WEBSOCKET_URL", "ws://localhost:8080/ws/websocket"),
		HTTPTimeout:        getEnvAsDuration("HTTP_TIMEOUT", 10*time.Second),
		ReconnectInitial:   getEnvAsDuration("RECONNECT_INITIAL", 5*time.Second),
		ReconnectMax:       getEnvAsDuration("RECONNECT_MAX", 60*time.Second),
		Heartbeat:          getEnvAsDuration("STOMP_HEARTBEAT", 4*time.Second),
		UserID:             os.Getenv("USER_ID"),
		AuthToken:          os.Getenv("AUTH_TOKEN"),
		HouseholdID:        os.Getenv("HOUSEHOLD_ID"),
		InitialLat:         getEnvAsFloat("MAP_INITIAL_LAT", 63.43),
		InitialLng:         getEnvAsFloat("MAP_INITIAL_LNG", 10.39),
		MapDebounce:        getEnvAsDuration("MAP_DEBOUNCE", 500*time.Millisecond),
		NoticeDuration:     getEnvAsDuration("MAP_NOTICE_DURATION", 3*time.Second),
		GeocodingURL:       getEnv("GEOCODING_URL", "https://nominatim.openstreetmap.org"),
		GeocodingUserAgent: getEnv("GEOCODING_USER_AGENT", "EmergencyMapApplication"),
		GeocodingCountry:   getEnv("GEOCODING_COUNTRY", "no"),
		GeocodingCacheTTL:  getEnvAsDuration("GEOCODING_CACHE_TTL", 24*time.Hour),
		IPGeolocationURL:   getEnv("IP_GEOLOCATION_URL", "https://ipapi.co/json/"),
		RoutingURL:         getEnv("ROUTING_URL", "https://router.project-osrm.org"),
		PositionMaxAge:     getEnvAsDuration("POSITION_MAX_AGE", 10*time.Second),
		PositionInterval:   getEnvAsDuration("POSITION_INTERVAL", 30*time.Second),
	}

	cfg.StoreConnectTimeout = getEnvAsDuration("STORE_CONNECT_TIMEOUT", DefaultStoreConnectTimeout)

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.ReconnectMax < cfg.ReconnectInitial {
		cfg.ReconnectMax = cfg.ReconnectInitial
	}

	return cfg, nil
}

// HasSession сообщает, есть ли сохранённые данные сессии
func (c *Config) HasSession() bool {
	return c.UserID != "" && c.AuthToken != ""
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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
