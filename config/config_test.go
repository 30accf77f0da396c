package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, 2*time.Second, cfg.CatalogLoadDelay)
	assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
	assert.Equal(t, "PHP", cfg.Currency)
	assert.Equal(t, 1000, cfg.MaxCartQuantity)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("CHECKOUT_DELAY", "150ms")
	t.Setenv("CURRENCY", "usd")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, ,kafka-2:9092")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 150*time.Millisecond, cfg.CheckoutDelay)
	assert.Equal(t, "USD", cfg.Currency)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
}
