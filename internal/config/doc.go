// Package config loads runtime configuration for the foodchat shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. FOODCHAT_* environment variables, read with cleanenv.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-d string   orders sqlite DSN
//	-s bool     seed demo orders (-s=false disables)
//	-t int      typing indicator delay (milliseconds)
//	-b string   log backend (slog|zap)
//	-f string   log format (json|text)
//	-l string   log level
//
// # JSON schema
//
// Durations may be strings like "600ms" or integer nanoseconds:
//
//	{
//	  "orders_dsn": "file:foodchat?mode=memory&cache=shared",
//	  "seed_demo_orders": true,
//	  "typing_delay": "600ms",
//	  "log_backend": "zap",
//	  "log_format": "json",
//	  "log_level": "info"
//	}
package config
