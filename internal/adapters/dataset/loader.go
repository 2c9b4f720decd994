// Package dataset loads the five dashboard input tables from disk.
package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/pkg/logger"
	"github.com/okian/rematricula/pkg/metrics"
)

// Default location and names of the input files.
const (
	DefaultDir           = "data"
	DefaultScoresFile    = "puntaje_promedio_por_asesor_rematricula.csv"
	DefaultDetailFile    = "promedio_conteo_por_categoria_rematricula.csv"
	DefaultSentimentFile = "sentimiento_general_rematricula.csv"
	DefaultPolarityFile  = "polaridad_por_asesor_rematricula.csv"
	DefaultResultsFile   = "resultados_por_asesor_rematricula.csv"
)

// Table names used in logs and metrics.
const (
	TableScores    = "scores"
	TableDetail    = "detail"
	TableSentiment = "sentiment"
	TablePolarity  = "polarity"
	TableResults   = "results"
)

// Files names the five input files.
type Files struct {
	Scores    string
	Detail    string
	Sentiment string
	Polarity  string
	Results   string
}

// DefaultFiles returns the conventional file names.
func DefaultFiles() Files {
	return Files{
		Scores:    DefaultScoresFile,
		Detail:    DefaultDetailFile,
		Sentiment: DefaultSentimentFile,
		Polarity:  DefaultPolarityFile,
		Results:   DefaultResultsFile,
	}
}

// Dataset is one render's worth of input tables.
type Dataset struct {
	Scores    *model.Table
	Detail    *model.Table
	Sentiment *model.Table
	Polarity  *model.Table
	Results   *model.Table
}

// Loader reads a Dataset from disk. It holds no data between calls.
type Loader struct {
	dir    string
	files  Files
	logger logger.Logger
}

// NewLoader creates a Loader reading DefaultFiles from DefaultDir.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{dir: DefaultDir, files: DefaultFiles()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path resolves a file name against the loader directory.
func (l *Loader) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(l.dir, file)
}

// Load reads all five files. Any failure aborts the load and is wrapped
// with ErrLoadDataset.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	start := time.Now()
	ds := &Dataset{}
	targets := []struct {
		name string
		file string
		dst  **model.Table
	}{
		{TableScores, l.files.Scores, &ds.Scores},
		{TableDetail, l.files.Detail, &ds.Detail},
		{TableSentiment, l.files.Sentiment, &ds.Sentiment},
		{TablePolarity, l.files.Polarity, &ds.Polarity},
		{TableResults, l.files.Results, &ds.Results},
	}
	for _, tg := range targets {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
		}
		path := l.Path(tg.file)
		t, err := ReadFile(tg.name, path)
		if err != nil {
			metrics.RecordDatasetLoadError(tg.name)
			if l.logger != nil {
				l.logger.Error(ctx, "dataset read failed", logger.String("table", tg.name), logger.String("path", path), logger.Error(err))
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadDataset, tg.name, err)
		}
		metrics.UpdateDatasetRows(tg.name, t.Len())
		*tg.dst = t
	}
	if l.logger != nil {
		l.logger.Debug(ctx, "dataset loaded",
			logger.String("dir", l.dir),
			logger.Int("results", ds.Results.Len()),
			logger.Duration("elapsed", time.Since(start)),
		)
	}
	return ds, nil
}
