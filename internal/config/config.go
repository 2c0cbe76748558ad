// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // STATS_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StatsFile     string
	StatsTimezone string
	GitHubAPIURL  string
	APITimeout    time.Duration
	AvatarTimeout time.Duration
	CardRateLimit float64
	CardRateBurst int
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found

	return &Config{
		Port:          getEnv("PORT", "8080"),
		StatsFile:     getEnv("STATS_FILE", "stats.json"),
		StatsTimezone: getEnv("STATS_TIMEZONE", "UTC"),
		GitHubAPIURL:  getEnv("GITHUB_API_URL", ""),
		APITimeout:    getDuration("API_TIMEOUT", 10*time.Second),
		AvatarTimeout: getDuration("AVATAR_TIMEOUT", 5*time.Second),
		CardRateLimit: getFloat("CARD_RATE_LIMIT", 5),
		CardRateBurst: getInt("CARD_RATE_BURST", 10),
	}
}

// Location resolves StatsTimezone, falling back to UTC when it is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	i, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return i
}
