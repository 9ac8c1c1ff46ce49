package config

import (
	"strings"
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

func parse(t *testing.T, args ...string) (Config, error) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	testza.AssertNoError(t, flags.Parse(args))
	return FromFlags(flags)
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	testza.AssertNoError(t, err)
	testza.AssertFalse(t, cfg.Interactive)
	testza.AssertEqual(t, 10*time.Millisecond, cfg.TickInterval)
	testza.AssertEqual(t, SummaryText, cfg.Summary)
	testza.AssertEqual(t, zapcore.InfoLevel, cfg.LogLevel)
	testza.AssertTrue(t, strings.HasSuffix(cfg.LogFile, "lapwatch.log"))
}

func TestOverrides(t *testing.T) {
	cfg, err := parse(t, "-i", "--tick", "50ms", "--summary", "json", "--log-file", "/tmp/lw.log", "--log-level", "debug")
	testza.AssertNoError(t, err)
	testza.AssertTrue(t, cfg.Interactive)
	testza.AssertEqual(t, 50*time.Millisecond, cfg.TickInterval)
	testza.AssertEqual(t, SummaryJSON, cfg.Summary)
	testza.AssertEqual(t, "/tmp/lw.log", cfg.LogFile)
	testza.AssertEqual(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestInvalidValues(t *testing.T) {
	testCases := [][]string{
		{"--tick", "0s"},
		{"--tick", "-5ms"},
		{"--summary", "yaml"},
		{"--log-level", "loud"},
	}

	for _, args := range testCases {
		_, err := parse(t, args...)
		testza.AssertNotNil(t, err, args)
	}
}
