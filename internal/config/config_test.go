package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "STATS_FILE", "STATS_TIMEZONE", "API_TIMEOUT", "AVATAR_TIMEOUT", "CARD_RATE_LIMIT", "CARD_RATE_BURST"} {
			t.Setenv(key, "")
		}
		cfg := Load()
		assert.Equal(t, 10*time.Second, cfg.APITimeout)
		assert.Equal(t, 5*time.Second, cfg.AvatarTimeout)
		assert.Equal(t, float64(5), cfg.CardRateLimit)
		assert.Equal(t, 10, cfg.CardRateBurst)
		assert.Equal(t, time.UTC, cfg.Location())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STATS_FILE", "/tmp/counters.json")
		t.Setenv("STATS_TIMEZONE", "Europe/Paris")
		t.Setenv("AVATAR_TIMEOUT", "2s")
		t.Setenv("CARD_RATE_BURST", "3")
		cfg := Load()
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "/tmp/counters.json", cfg.StatsFile)
		assert.Equal(t, 2*time.Second, cfg.AvatarTimeout)
		assert.Equal(t, 3, cfg.CardRateBurst)
		assert.Equal(t, "Europe/Paris", cfg.Location().String())
	})
}
