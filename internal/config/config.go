// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading and validation errors wrap this package's sentinel errors.
package config

import (
	"fmt"
	"strings"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/okian/rematricula/internal/domain/pivot"
	"github.com/okian/rematricula/internal/domain/scorecard"
	"github.com/okian/rematricula/internal/domain/summary"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8501".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the five input files.
	DataDir string `koanf:"data_dir"`

	// Input file names, relative to DataDir unless absolute.
	ScoresFile    string `koanf:"scores_file"`
	DetailFile    string `koanf:"detail_file"`
	SentimentFile string `koanf:"sentiment_file"`
	PolarityFile  string `koanf:"polarity_file"`
	ResultsFile   string `koanf:"results_file"`

	// HeatmapZMin and HeatmapZMax fix the heatmap color range.
	HeatmapZMin float64 `koanf:"heatmap_zmin"`
	HeatmapZMax float64 `koanf:"heatmap_zmax"`

	// ConfidenceColumns lists the sentiment confidence column names to probe,
	// in order.
	ConfidenceColumns []string `koanf:"confidence_columns"`

	// Requirements is the scorecard checklist.
	Requirements scorecard.Requirements `koanf:"requirements"`
}

// New creates a Config with defaults.
func New() *Config {
	f := dataset.DefaultFiles()
	return &Config{
		LogLevel:          "info",
		LogFormat:         LogFormatText,
		Addr:              ":8501",
		DataDir:           dataset.DefaultDir,
		ScoresFile:        f.Scores,
		DetailFile:        f.Detail,
		SentimentFile:     f.Sentiment,
		PolarityFile:      f.Polarity,
		ResultsFile:       f.Results,
		HeatmapZMin:       pivot.DefaultZMin,
		HeatmapZMax:       pivot.DefaultZMax,
		ConfidenceColumns: append([]string(nil), summary.DefaultConfidenceColumns...),
		Requirements:      scorecard.DefaultRequirements(),
	}
}

// Files returns the configured input file names.
func (c *Config) Files() dataset.Files {
	return dataset.Files{
		Scores:    c.ScoresFile,
		Detail:    c.DetailFile,
		Sentiment: c.SentimentFile,
		Polarity:  c.PolarityFile,
		Results:   c.ResultsFile,
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	files := c.Files()
	for key, name := range map[string]string{
		"scores_file":    files.Scores,
		"detail_file":    files.Detail,
		"sentiment_file": files.Sentiment,
		"polarity_file":  files.Polarity,
		"results_file":   files.Results,
	} {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, key)
		}
	}
	if c.HeatmapZMax <= c.HeatmapZMin {
		return fmt.Errorf("%w: heatmap_zmax must exceed heatmap_zmin", ErrInvalidConfig)
	}
	if len(c.ConfidenceColumns) == 0 {
		return fmt.Errorf("%w: confidence_columns must not be empty", ErrInvalidConfig)
	}
	if err := c.Requirements.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
