package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/okian/rematricula/pkg/logger"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

// dashboardHandler renders the single-page dashboard.
type dashboardHandler struct {
	renderer Renderer
	logger   logger.Logger
}

func newDashboardHandler(renderer Renderer, lg logger.Logger) *dashboardHandler {
	return &dashboardHandler{renderer: renderer, logger: lg}
}

type dashboardPage struct {
	*View
	// Data is the view as JSON for the charting script.
	Data template.JS
}

// HandleDashboard handles GET / requests. Any other path is 404.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	v, err := h.renderer.Render(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error(r.Context(), "render failed", logger.Error(err))
		}
		http.Error(w, "no se pudieron cargar los datos del dashboard", http.StatusInternalServerError)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, dashboardPage{View: v, Data: template.JS(data)}); err != nil { //nolint:gosec // JSON produced by encoding/json
		if h.logger != nil {
			h.logger.Error(r.Context(), "template failed", logger.Error(err))
		}
		http.Error(w, fmt.Errorf("%w: %w", ErrTemplate, err).Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
