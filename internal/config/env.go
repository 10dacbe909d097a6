package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string  `envconfig:"PORT" default:"8080"`
	AppIdentifier  string  `envconfig:"WALLET_APP_ID" default:"com.localwallet.desktop"`
	ConfigDir      string  `envconfig:"WALLET_CONFIG_DIR"`
	AddressRecord  bool    `envconfig:"WALLET_ADDRESS_RECORD" default:"true"`
	AtomicWrites   bool    `envconfig:"WALLET_ATOMIC_WRITES" default:"false"`
	Watch          bool    `envconfig:"WALLET_WATCH" default:"true"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads configuration from environment variables without touching
// the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if c.RateLimitBurst < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must not be negative")
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetAppIdentifier returns the application identifier used to name the config dir
func GetAppIdentifier() string {
	return Get().AppIdentifier
}

// GetConfigDir returns the storage directory override, empty if unset
func GetConfigDir() string {
	return Get().ConfigDir
}

// AddressRecordEnabled reports whether the plaintext address record is served
func AddressRecordEnabled() bool {
	return Get().AddressRecord
}

// AtomicWritesEnabled reports whether saves go through temp file + rename
func AtomicWritesEnabled() bool {
	return Get().AtomicWrites
}

// WatchEnabled reports whether on-disk changes to wallet files are logged
func WatchEnabled() bool {
	return Get().Watch
}

// GetLogLevel returns log level from configuration
func GetLogLevel() string {
	return Get().LogLevel
}

// GetRateLimit returns requests per second and burst for the HTTP API.
// A non-positive rate disables limiting.
func GetRateLimit() (float64, int) {
	return Get().RateLimitRPS, Get().RateLimitBurst
}
