// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	app "github.com/okian/rematricula/internal/app"
	"github.com/okian/rematricula/pkg/logger"
)

// Renderer produces a fresh dashboard view. Every call re-reads the inputs.
type Renderer interface {
	Render(ctx context.Context) (*app.View, error)
}

// View mirrors the read shape returned by renders.
type View = app.View

// Server wires HTTP routes for the dashboard and its JSON API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *dashboardHandler
	viewHandler      *ViewHandler
	chartsHandler    *ChartsHandler
	logger           logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(renderer Renderer, statsProvider StatsProvider, lg logger.Logger) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: newDashboardHandler(renderer, lg),
		viewHandler:      NewViewHandler(renderer, lg),
		chartsHandler:    NewChartsHandler(renderer, lg),
		logger:           lg,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	wrap := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(h, endpoint), s.logger)
	}

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/dashboard", wrap(s.viewHandler.HandleView, "api_dashboard"))
	mux.HandleFunc("/api/summary", wrap(s.viewHandler.HandleSummary, "api_summary"))
	mux.HandleFunc("/api/heatmap", wrap(s.viewHandler.HandleHeatmap, "api_heatmap"))
	mux.HandleFunc("/api/scorecards", wrap(s.viewHandler.HandleScorecards, "api_scorecards"))
	mux.HandleFunc("/api/charts", wrap(s.chartsHandler.HandleCharts, "api_charts"))
	mux.HandleFunc("/", wrap(s.dashboardHandler.HandleDashboard, "dashboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// render runs one render for a GET request and writes the error response
// itself. It returns nil when the caller must stop.
func render(w http.ResponseWriter, r *http.Request, renderer Renderer, lg logger.Logger) *View {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return nil
	}
	v, err := renderer.Render(r.Context())
	if err != nil {
		if lg != nil {
			lg.Error(r.Context(), "render failed", logger.Error(err))
		}
		writeError(w, http.StatusInternalServerError, "render_failed", err)
		return nil
	}
	return v
}
