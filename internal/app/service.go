// Package service renders the dashboard view from the input tables. It
// implements the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/internal/domain/pivot"
	"github.com/okian/rematricula/internal/domain/scorecard"
	"github.com/okian/rematricula/internal/domain/summary"
	"github.com/okian/rematricula/pkg/logger"
	"github.com/okian/rematricula/pkg/metrics"
)

const heatmapTitle = "🔍 Promedio de Conteo por Categoría y Asesor"

// Loader reads one render's worth of input tables.
type Loader interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
}

// Service builds a fresh View on every render. The only state kept between
// renders is monitoring counters.
type Service struct {
	loader            Loader
	builder           *scorecard.Builder
	confidenceColumns []string
	zmin, zmax        float64
	logger            logger.Logger
	now               func() time.Time

	mu         sync.RWMutex
	renders    int
	failures   int
	lastRender time.Time
	lastTook   time.Duration
	lastErr    string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets the dataset loader.
func WithLoader(l Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequirements sets the scorecard checklist.
func WithRequirements(reqs scorecard.Requirements) Option {
	return func(s *Service) {
		if len(reqs) > 0 {
			s.builder = scorecard.NewBuilder(reqs)
		}
	}
}

// WithConfidenceColumns sets the ordered confidence column fallback list.
func WithConfidenceColumns(cols []string) Option {
	return func(s *Service) {
		if len(cols) > 0 {
			s.confidenceColumns = cols
		}
	}
}

// WithHeatmapRange sets the heatmap color range.
func WithHeatmapRange(zmin, zmax float64) Option {
	return func(s *Service) {
		if zmax > zmin {
			s.zmin, s.zmax = zmin, zmax
		}
	}
}

// WithClock overrides the time source used for View.GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		loader:            dataset.NewLoader(),
		builder:           scorecard.NewBuilder(nil),
		confidenceColumns: summary.DefaultConfidenceColumns,
		zmin:              pivot.DefaultZMin,
		zmax:              pivot.DefaultZMax,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Render loads the input tables and shapes them into a View. A dataset
// failure aborts the render; an invalid heatmap input only replaces the
// heatmap with a warning.
func (s *Service) Render(ctx context.Context) (*View, error) {
	start := time.Now()
	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.record(start, err)
		metrics.RecordRenderError()
		return nil, fmt.Errorf("render: %w", err)
	}

	sum := summary.Aggregate(ds.Scores, ds.Sentiment, s.confidenceColumns)
	v := &View{
		Title:        Title,
		GeneratedAt:  s.now(),
		Summary:      sum,
		Cards:        sum.Cards(),
		Scores:       scoreChart(model.AdvisorScores(ds.Scores)),
		Heatmap:      s.heatmap(ctx, ds.Detail),
		Gauges:       sentimentGauges(sum),
		Polarity:     polarityChart(model.AdvisorPolarities(ds.Polarity)),
		Scorecards:   s.builder.BuildTable(ds.Results),
		Requirements: s.builder.Requirements(),
	}

	metrics.UpdateScorecards(len(v.Scorecards.Groups), v.Scorecards.Calls())
	took := s.record(start, nil)
	metrics.RecordRender(float64(took.Microseconds()) / 1000)
	s.logger.Debug(ctx, "dashboard rendered",
		logger.Int("advisors", len(v.Scorecards.Groups)),
		logger.Int("calls", v.Scorecards.Calls()),
		logger.Bool("heatmap", v.Heatmap.Valid()),
		logger.Duration("took", took),
	)
	return v, nil
}

func (s *Service) heatmap(ctx context.Context, t *model.Table) HeatmapView {
	hv := HeatmapView{Title: heatmapTitle}
	m, err := pivot.Build(t)
	switch {
	case err == nil:
		hv.Heatmap = pivot.NewHeatmap(m, s.zmin, s.zmax)
		return hv
	case errors.Is(err, pivot.ErrMissingColumns):
		hv.Warning = pivot.MissingColumnsWarning
		metrics.RecordPivotWarning("missing_columns")
	case errors.Is(err, pivot.ErrDuplicateKey):
		hv.Warning = "❗ " + err.Error()
		metrics.RecordPivotWarning("duplicate_key")
	default:
		hv.Warning = "❗ " + err.Error()
		metrics.RecordPivotWarning("other")
	}
	s.logger.Warn(ctx, "heatmap skipped", logger.Error(err))
	return hv
}

func (s *Service) record(start time.Time, err error) time.Duration {
	took := time.Since(start)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renders++
	s.lastRender = s.now()
	s.lastTook = took
	s.lastErr = ""
	if err != nil {
		s.failures++
		s.lastErr = err.Error()
	}
	return took
}

// GetStats returns render statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"renders":      s.renders,
		"failures":     s.failures,
		"lastDuration": s.lastTook.String(),
		"requirements": len(s.builder.Requirements()),
	}
	if !s.lastRender.IsZero() {
		stats["lastRender"] = s.lastRender.Format(time.RFC3339)
	}
	if s.lastErr != "" {
		stats["lastError"] = s.lastErr
	}
	return stats
}
