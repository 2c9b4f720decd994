package sampledata

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/okian/rematricula/internal/adapters/dataset"
	app "github.com/okian/rematricula/internal/app"
	"github.com/okian/rematricula/pkg/logger"
)

const logFilePermission = 0o600

// SetupLogging configures the global logger. With a logFile, output goes to
// both stdout and the file.
func SetupLogging(logFile string, verbose bool) error {
	var w io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, file)
	}
	if err := logger.Init(logger.WithWriter(w)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	return nil
}

// Run generates a sample, writes it and, when cfg.Verify is set, renders it
// through the dashboard service.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	lg := logger.Get().Named("sampledata")
	lg.Info(ctx, "generating sample data",
		logger.String("dir", cfg.Dir),
		logger.Int("advisors", cfg.Advisors),
		logger.Int("callsPerAdvisor", cfg.CallsPerAdvisor),
		logger.String("format", cfg.Format))

	s, err := Generate(cfg)
	if err != nil {
		return nil, err
	}

	paths, err := Write(ctx, cfg.Dir, cfg.Format, s)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Seed: s.Seed, Advisors: cfg.Advisors, Calls: len(s.Calls), Files: paths}
	for _, c := range s.Calls {
		if c.Efectiva {
			stats.Effective++
		}
	}

	if cfg.Verify {
		if err := verify(ctx, cfg, stats); err != nil {
			return stats, err
		}
		stats.Rendered = true
	}

	lg.Info(ctx, "sample data written",
		logger.Any("seed", stats.Seed),
		logger.Int("calls", stats.Calls),
		logger.Int("effective", stats.Effective),
		logger.Any("files", stats.Files),
		logger.Bool("rendered", stats.Rendered))
	return stats, nil
}

// verify loads the written files the way the server does and checks the
// rendered view against what was generated.
func verify(ctx context.Context, cfg *Config, stats *Stats) error {
	loader := dataset.NewLoader(dataset.WithDir(cfg.Dir), dataset.WithFiles(FilesFor(cfg.Format)))
	svc := app.New(app.WithLoader(loader), app.WithRequirements(cfg.Requirements))

	v, err := svc.Render(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	if got := v.Scorecards.Calls(); got != stats.Calls {
		return fmt.Errorf("%w: rendered %d calls, generated %d", ErrVerify, got, stats.Calls)
	}
	if stats.Calls > 0 && !v.Heatmap.Valid() {
		return fmt.Errorf("%w: heatmap: %s", ErrVerify, v.Heatmap.Warning)
	}
	if len(v.Scores.Labels) != cfg.Advisors {
		return fmt.Errorf("%w: rendered %d advisors, generated %d", ErrVerify, len(v.Scores.Labels), cfg.Advisors)
	}
	return nil
}
