package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/foodchat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   orders sqlite DSN
//	-s bool     seed demo orders for new identities (write -s=false to disable)
//	-t int      typing indicator delay in milliseconds, 0 disables it; when
//	            absent the earlier value is kept at full precision
//	-b string   log backend: slog or zap
//	-f string   log format: json or text
//	-l string   log level: debug, info, warn, error
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and any
// other flag are left alone.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-t", "-b", "-f", "-l"})

	fs := flag.NewFlagSet("foodchat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.OrdersDSN, "d", cfg.OrdersDSN, "orders sqlite DSN")
	fs.BoolVar(&cfg.SeedDemoOrders, "s", cfg.SeedDemoOrders, "seed demo orders for new identities")
	typingMs := fs.Int("t", int(cfg.TypingDelay/time.Millisecond), "typing indicator delay (in milliseconds)")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (json|text)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TypingDelay = time.Duration(*typingMs) * time.Millisecond
		}
	})
	return nil
}
