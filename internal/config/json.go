package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/foodchat/internal/flagx"
)

// Duration accepts either a Go duration string ("600ms") or integer
// nanoseconds in JSON.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from "zero", so a file only overrides what it names.
type JsonConfig struct {
	OrdersDSN      *string   `json:"orders_dsn"`
	SeedDemoOrders *bool     `json:"seed_demo_orders"`
	TypingDelay    *Duration `json:"typing_delay"`
	LogBackend     *string   `json:"log_backend"`
	LogFormat      *string   `json:"log_format"`
	LogLevel       *string   `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Without either flag it does nothing.
func parseJson(cfg *Config) error {
	path := flagx.ConfigPath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.OrdersDSN != nil {
		cfg.OrdersDSN = *jc.OrdersDSN
	}
	if jc.SeedDemoOrders != nil {
		cfg.SeedDemoOrders = *jc.SeedDemoOrders
	}
	if jc.TypingDelay != nil {
		cfg.TypingDelay = jc.TypingDelay.Duration
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
