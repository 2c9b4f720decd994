package api

import (
	"fmt"
	"net/http"

	"github.com/okian/rematricula/pkg/logger"
)

// ViewHandler serves the dashboard view and its sections as JSON.
type ViewHandler struct {
	renderer Renderer
	logger   logger.Logger
}

// NewViewHandler creates a new view handler.
func NewViewHandler(renderer Renderer, lg logger.Logger) *ViewHandler {
	return &ViewHandler{renderer: renderer, logger: lg}
}

// HandleView handles GET /api/dashboard.
func (h *ViewHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	if v := render(w, r, h.renderer, h.logger); v != nil {
		writeJSON(w, http.StatusOK, v)
	}
}

// HandleSummary handles GET /api/summary.
func (h *ViewHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	v := render(w, r, h.renderer, h.logger)
	if v == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": v.Summary,
		"cards":   v.Cards,
		"gauges":  v.Gauges,
	})
}

// HandleHeatmap handles GET /api/heatmap. An invalid pivot input is
// reported as 422 with the warning text.
func (h *ViewHandler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	v := render(w, r, h.renderer, h.logger)
	if v == nil {
		return
	}
	if !v.Heatmap.Valid() {
		writeError(w, http.StatusUnprocessableEntity, "heatmap_unavailable",
			fmt.Errorf("%w: %s", ErrHeatmapUnavailable, v.Heatmap.Warning))
		return
	}
	writeJSON(w, http.StatusOK, v.Heatmap)
}

// HandleScorecards handles GET /api/scorecards. The optional asesor query
// parameter narrows the result to one advisor.
func (h *ViewHandler) HandleScorecards(w http.ResponseWriter, r *http.Request) {
	v := render(w, r, h.renderer, h.logger)
	if v == nil {
		return
	}
	res := v.Scorecards
	if advisor := r.URL.Query().Get("asesor"); advisor != "" && !res.NoData {
		filtered := res.Groups[:0:0]
		for _, g := range res.Groups {
			if g.Advisor == advisor {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) == 0 {
			writeError(w, http.StatusNotFound, "advisor_not_found", fmt.Errorf("advisor %q not found", advisor))
			return
		}
		res.Groups = filtered
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"requirements": v.Requirements,
		"scorecards":   res,
	})
}
