package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config selects the encoder and level
type Config struct {
	// Env is one of local, dev or prod
	Env string

	// Level is a zap level name, empty keeps the env default
	Level string
}

// New builds the process logger: console output for local, JSON otherwise
func New(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &Config{Env: EnvLocal}
	}

	var zc zap.Config
	switch cfg.Env {
	case EnvLocal, "":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case EnvDev:
		zc = zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case EnvProd:
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log env %q", cfg.Env)
	}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	return zc.Build()
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
