package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrHeatmapUnavailable = errors.New("heatmap unavailable")
	ErrTemplate           = errors.New("dashboard template failed")
)
