// Package config provides centralized configuration loaded from environment
// variables, shared by the CLI and library entry points.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config carries every tunable of the data core. Zero configuration works:
// all fields have defaults matching the public CPBL site.
type Config struct {
	// Remote endpoints
	TeamBaseURL    string // team roster pages, fetched with ?ClubNo=
	StandingsURL   string // season standings table
	VenueSplitsURL string // home/away split table
	ScheduleURL    string // recent game results
	StatsURL       string // statistics endpoint, POST form

	// HTTP behavior
	HTTPTimeout       time.Duration
	RetryAttempts     int
	RequestsPerSecond float64

	// Local state
	DataDir string // snapshot and debug artifacts

	// Freshness
	SnapshotTTL time.Duration
	StatsTTL    time.Duration

	// Chat collaborator
	ChatHost  string // Ollama-compatible endpoint, empty disables the backend
	ChatModel string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		TeamBaseURL:    envOr("CPBL_TEAM_URL", "https://www.cpbl.com.tw/team"),
		StandingsURL:   envOr("CPBL_STANDINGS_URL", "https://www.cpbl.com.tw/standings/season"),
		VenueSplitsURL: envOr("CPBL_VENUE_URL", "https://www.cpbl.com.tw/standings/venue"),
		ScheduleURL:    envOr("CPBL_SCHEDULE_URL", "https://www.cpbl.com.tw/schedule"),
		StatsURL:       envOr("CPBL_STATS_URL", "https://www.cpbl.com.tw/stats/recordallaction"),

		HTTPTimeout:       envDuration("CPBL_HTTP_TIMEOUT", 30*time.Second),
		RetryAttempts:     envInt("CPBL_RETRY_ATTEMPTS", 3),
		RequestsPerSecond: envFloat("CPBL_REQUESTS_PER_SECOND", 2),

		DataDir: envOr("CPBL_DATA_DIR", defaultDataDir()),

		SnapshotTTL: envDuration("CPBL_SNAPSHOT_TTL", time.Hour),
		StatsTTL:    envDuration("CPBL_STATS_TTL", time.Hour),

		ChatHost:  envOr("CPBL_CHAT_HOST", "http://localhost:11434"),
		ChatModel: envOr("CPBL_CHAT_MODEL", "llama3.1"),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cpbl-dashboard"
	}
	return filepath.Join(home, ".local", "share", "cpbl-dashboard")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
