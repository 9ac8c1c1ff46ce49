package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

type SummaryFormat string

const (
	SummaryText SummaryFormat = "text"
	SummaryJSON SummaryFormat = "json"
	SummaryNone SummaryFormat = "none"
)

type Config struct {
	Interactive  bool
	TickInterval time.Duration
	Summary      SummaryFormat
	LogFile      string
	LogLevel     zapcore.Level
}

// RegisterFlags adds the session flags to a command's flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP("interactive", "i", false, "Run in interactive prompt mode")
	flags.Duration("tick", stopwatch.DefaultTickInterval, "How often the display refreshes while running")
	flags.String("summary", string(SummaryText), "Summary printed on exit (text, json, none)")
	flags.String("log-file", "", "Log file path (defaults to lapwatch.log next to the executable)")
	flags.String("log-level", "info", "Log level")
}

func FromFlags(flags *pflag.FlagSet) (Config, error) {
	cfg := Config{}
	var err error

	if cfg.Interactive, err = flags.GetBool("interactive"); err != nil {
		return cfg, err
	}
	if cfg.TickInterval, err = flags.GetDuration("tick"); err != nil {
		return cfg, err
	}
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}

	summary, err := flags.GetString("summary")
	if err != nil {
		return cfg, err
	}
	switch SummaryFormat(summary) {
	case SummaryText, SummaryJSON, SummaryNone:
		cfg.Summary = SummaryFormat(summary)
	default:
		return cfg, fmt.Errorf("unknown summary format %q", summary)
	}

	if cfg.LogFile, err = flags.GetString("log-file"); err != nil {
		return cfg, err
	}
	if cfg.LogFile == "" {
		if cfg.LogFile, err = defaultLogFile(); err != nil {
			return cfg, err
		}
	}

	level, err := flags.GetString("log-level")
	if err != nil {
		return cfg, err
	}
	if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
		return cfg, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func defaultLogFile() (string, error) {
	dir, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Join(filepath.Dir(dir), "lapwatch.log"), nil
}
