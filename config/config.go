package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	// Catalog
	CatalogFile      string // Empty means the embedded seed catalog
	CatalogLoadDelay time.Duration
	PageSize         int
	Currency         string
	// Checkout
	CheckoutDelay time.Duration
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
	// Notifications (Kafka disabled when no brokers are set)
	KafkaBrokers []string
	KafkaTopic   string
	// Cache
	CacheEnumsTTL time.Duration
	// Business Rules
	MaxCartQuantity int
}

const defaultSessionSecret = "default_secret_CHANGE_ME"

func LoadConfig() *Config {
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// A missing .env is normal in containers.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    getDurationEnv("SESSION_TTL", 24*time.Hour),

		CatalogFile:      getEnv("CATALOG_FILE", ""),
		CatalogLoadDelay: getDurationEnv("CATALOG_LOAD_DELAY", 2*time.Second),
		PageSize:         getIntEnv("PAGE_SIZE", 8),
		Currency:         strings.ToUpper(getEnv("CURRENCY", "PHP")),

		CheckoutDelay: getDurationEnv("CHECKOUT_DELAY", 2*time.Second),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),

		KafkaBrokers: getListEnv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "storefront_events"),

		CacheEnumsTTL: getDurationEnv("CACHE_ENUMS_TTL", time.Hour),

		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.SessionSecret == defaultSessionSecret {
		log.Println("WARNING: Using default session secret. Set SESSION_SECRET outside development.")
	}
	if c.PageSize <= 0 {
		log.Fatal("CRITICAL: PAGE_SIZE must be positive")
	}
	if c.MaxCartQuantity <= 0 {
		log.Fatal("CRITICAL: MAX_CART_QUANTITY must be positive")
	}
	if c.SessionTTL <= 0 {
		log.Fatal("CRITICAL: SESSION_TTL must be positive")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
