package api

import (
	"net/http"

	"github.com/okian/rematricula/internal/adapters/chart"
	app "github.com/okian/rematricula/internal/app"
	"github.com/okian/rematricula/pkg/logger"
)

// ChartsHandler returns static image links for the bar charts.
type ChartsHandler struct {
	renderer Renderer
	logger   logger.Logger
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(renderer Renderer, lg logger.Logger) *ChartsHandler {
	return &ChartsHandler{renderer: renderer, logger: lg}
}

type chartLinks struct {
	Scores   string `json:"scores"`
	Polarity string `json:"polarity"`
}

func toBar(c app.BarChart) chart.Bar {
	return chart.Bar{
		Title:      c.ValueAxis,
		Labels:     c.Labels,
		Values:     c.Values,
		Horizontal: c.Orientation == app.Horizontal,
		Colors:     c.Colors,
	}
}

// HandleCharts handles GET /api/charts.
func (h *ChartsHandler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	v := render(w, r, h.renderer, h.logger)
	if v == nil {
		return
	}
	var links chartLinks
	var err error
	if links.Scores, err = chart.URL(toBar(v.Scores)); err != nil {
		writeError(w, http.StatusInternalServerError, "chart_failed", err)
		return
	}
	if links.Polarity, err = chart.URL(toBar(v.Polarity)); err != nil {
		writeError(w, http.StatusInternalServerError, "chart_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}
