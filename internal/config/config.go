package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything cmd/server reads from the environment
type Config struct {
	Env      string
	LogLevel string

	// HTTP API
	HTTPAddress     string
	HTTPTimeout     time.Duration
	HTTPIdleTimeout time.Duration
	AllowedOrigins  []string

	// Redis history store, empty address keeps history in memory
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Discord transport, empty token disables the bot
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// Casino rules
	SessionTTL   time.Duration
	HistoryCap   int
	HistoryLimit int
	RequireTerms bool
	TermsDelay   time.Duration
	RedirectURL  string
	MinBet       int
	MaxBet       int

	// BoostDuration is one boost activation in seconds
	BoostDuration int
}

// Load reads an optional .env file and then the process environment
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		Env:           getEnv("ENV", "local"),
		LogLevel:      getEnv("LOG_LEVEL", ""),
		HTTPAddress:   getEnv("HTTP_ADDRESS", ":8080"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		RedirectURL:   getEnv("REDIRECT_URL", "https://www.roblox.com/fr/games/8737602449/PLS-DONATE"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 4*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPIdleTimeout, err = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TermsDelay, err = getDuration("TERMS_DELAY", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.HistoryCap, err = getInt("HISTORY_CAP", 50); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = getInt("HISTORY_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.BoostDuration, err = getInt("BOOST_DURATION", 10); err != nil {
		return nil, err
	}
	if cfg.MinBet, err = getInt("MIN_BET", 1); err != nil {
		return nil, err
	}
	if cfg.MaxBet, err = getInt("MAX_BET", 1000); err != nil {
		return nil, err
	}
	if cfg.RequireTerms, err = getBool("REQUIRE_TERMS", true); err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = []string{getEnv("ALLOWED_ORIGIN", "*")}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
