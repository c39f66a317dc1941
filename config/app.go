package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	LogLevel string
	BaseURL  string
	MediaDir string

	// Store settings used when formatting prices.
	Currency       string
	CurrencySymbol string
	PriceDecimals  int

	// MaxQueryAmount caps first/last on every connection.
	MaxQueryAmount int
	SessionTTL     time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:        GetEnv("APP_NAME", "woocommerce.GO"),
			Port:           GetEnv("PORT", "8080"),
			Env:            os.Getenv("APP_ENV"),
			Debug:          os.Getenv("DEBUG") == "true",
			LogLevel:       GetEnv("LOG_LEVEL", "info"),
			BaseURL:        GetEnv("BASE_URL", "http://localhost:8080"),
			MediaDir:       GetEnv("MEDIA_DIR", "media"),
			Currency:       GetEnv("CURRENCY", "USD"),
			CurrencySymbol: GetEnv("CURRENCY_SYMBOL", "$"),
			PriceDecimals:  envInt("PRICE_DECIMALS", 2),
			MaxQueryAmount: envInt("MAX_QUERY_AMOUNT", 100),
			SessionTTL:     envDuration("SESSION_TTL", 48*time.Hour),
		}
	})
}

// App returns AppConfig, loading it on first use.
func App() *Config {
	LoadAppConfig()
	return AppConfig
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
