package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/crypto"
)

const (
	SourceCrypto = "crypto"
	SourceMath   = "math"
)

var (
	ErrUnknownSource     = errors.New("PWGEN_RANDOM_SOURCE must be crypto or math")
	ErrInsecureSource    = errors.New("math random source is not allowed in production")
	ErrInvalidRateLimits = errors.New("PWGEN_RATE_RPS and PWGEN_RATE_BURST must be positive")
)

type Config struct {
	Host         string
	Port         string
	Env          string
	Defaults     crypto.GeneratorOptions
	CopyReset    time.Duration
	RandomSource string
	RateRPS      float64
	RateBurst    int
	LogFile      string
}

func Load() Config {
	return Config{
		Host: getEnv("HOST", "127.0.0.1"),
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
		Defaults: crypto.GeneratorOptions{
			Length:  crypto.Clamp(getInt("PWGEN_DEFAULT_LENGTH", crypto.DefaultLength)),
			Digits:  getBool("PWGEN_DIGITS", true),
			Symbols: getBool("PWGEN_SYMBOLS", true),
		},
		CopyReset:    getDuration("PWGEN_COPY_RESET", clipboard.DefaultResetAfter),
		RandomSource: getEnv("PWGEN_RANDOM_SOURCE", SourceCrypto),
		RateRPS:      getFloat("PWGEN_RATE_RPS", 5),
		RateBurst:    getInt("PWGEN_RATE_BURST", 10),
		LogFile:      os.Getenv("PWGEN_LOG_FILE"),
	}
}

// Validate rejects settings the binaries cannot run with.
func (c Config) Validate() error {
	switch c.RandomSource {
	case SourceCrypto:
	case SourceMath:
		if c.Env == "production" {
			return ErrInsecureSource
		}
	default:
		return ErrUnknownSource
	}
	if c.RateRPS <= 0 || c.RateBurst <= 0 {
		return ErrInvalidRateLimits
	}
	return nil
}

// Source returns the random source named by RandomSource.
func (c Config) Source() crypto.Source {
	if c.RandomSource == SourceMath {
		return crypto.NewMathSource(uint64(time.Now().UnixNano()))
	}
	return crypto.CryptoSource{}
}

// Addr is the listen address for the HTTP API.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("ignoring invalid number setting", "key", key, "value", v)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring invalid boolean setting", "key", key, "value", v)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", v)
		return fallback
	}
	return d
}
