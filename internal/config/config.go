package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/foodchat/internal/logging"
)

// DefaultOrdersDSN names an in-memory sqlite database: orders vanish with
// the process.
const DefaultOrdersDSN = "file:foodchat?mode=memory&cache=shared"

// Config holds runtime settings for the foodchat shell.
//
// Fields:
//   - OrdersDSN: sqlite DSN for the mocked order store.
//   - SeedDemoOrders: give each new identity two demo orders.
//   - TypingDelay: how long the "typing…" indicator shows before a reply.
//     Zero disables it.
//   - LogBackend, LogFormat, LogLevel: see logging.Options.
type Config struct {
	OrdersDSN      string        `env:"FOODCHAT_ORDERS_DSN"`
	SeedDemoOrders bool          `env:"FOODCHAT_SEED_DEMO_ORDERS"`
	TypingDelay    time.Duration `env:"FOODCHAT_TYPING_DELAY"`
	LogBackend     string        `env:"FOODCHAT_LOG_BACKEND"`
	LogFormat      string        `env:"FOODCHAT_LOG_FORMAT"`
	LogLevel       string        `env:"FOODCHAT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.OrdersDSN = DefaultOrdersDSN
	c.SeedDemoOrders = true
	c.TypingDelay = 600 * time.Millisecond
	c.LogBackend = logging.BackendSlog
	c.LogFormat = logging.FormatText
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OrdersDSN) == "" {
		return fmt.Errorf("orders dsn is empty")
	}
	if c.TypingDelay < 0 {
		return fmt.Errorf("typing delay must not be negative, got %s", c.TypingDelay)
	}
	switch strings.ToLower(c.LogBackend) {
	case "", logging.BackendSlog, logging.BackendZap:
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoggingOptions returns the logging settings as logging.Options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Backend: c.LogBackend, Format: c.LogFormat, Level: c.LogLevel}
}
