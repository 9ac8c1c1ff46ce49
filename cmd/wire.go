package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aschey/lapwatch/internal/config"
	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/aschey/lapwatch/internal/summary"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func NewLogger(lifecycle fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zapCfg.OutputPaths = []string{cfg.LogFile}
	zapCfg.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return logger.Sync()
		},
	})
	return logger, nil
}

func NewStopwatch(
	lifecycle fx.Lifecycle,
	cfg config.Config,
	clock stopwatch.Clock,
	ticker stopwatch.Ticker,
	logger *zap.Logger,
) *stopwatch.Stopwatch {
	sw := stopwatch.New(clock, ticker, logger.Named("stopwatch"), cfg.TickInterval)
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sw.Close()
			return nil
		},
	})
	return sw
}

func appOptions(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(NewLogger),
		fx.Provide(stopwatch.NewSystemClock),
		fx.Provide(stopwatch.NewSystemTicker),
		fx.Provide(NewStopwatch),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)
}

type session func(sw *stopwatch.Stopwatch, logger *zap.Logger) error

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	runSession := session(runTUI)
	if cfg.Interactive {
		runSession = runPrompt
	}
	return runWith(ctx, cfg, out, appOptions(cfg), runSession)
}

// runWith starts the app, hands the stopwatch to the session and stops the app once the session
// returns or panics, so the tick source is always released.
func runWith(
	ctx context.Context,
	cfg config.Config,
	out io.Writer,
	options fx.Option,
	runSession session,
) (err error) {
	var sw *stopwatch.Stopwatch
	var logger *zap.Logger
	app := fx.New(options, fx.Populate(&sw, &logger))
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}

	var sessionErr error
	finished := false
	defer func() {
		stopErr := app.Stop(context.Background())
		if err = errors.Join(sessionErr, stopErr); err != nil || !finished {
			return
		}
		err = summary.Write(out, sw.State(), cfg.Summary)
	}()

	sessionErr = runSession(sw, logger)
	if sessionErr != nil {
		logger.Error("Session failed", zap.Error(sessionErr))
	}
	finished = true
	return nil
}
