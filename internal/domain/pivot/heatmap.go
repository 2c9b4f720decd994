package pivot

import "math"

// ColorStop is one stop of a continuous color scale.
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// GreenScale is the heatmap color scale.
var GreenScale = []ColorStop{
	{0.0, "#c7e9c0"},
	{0.2, "#a1d99b"},
	{0.4, "#74c476"},
	{0.6, "#41ab5d"},
	{0.8, "#238b45"},
	{1.0, "#006d2c"},
}

// Heatmap is the display shape of a Matrix.
type Heatmap struct {
	Matrix     *Matrix     `json:"matrix"`
	ZMin       float64     `json:"zmin"`
	ZMax       float64     `json:"zmax"`
	ColorScale []ColorStop `json:"colorscale"`
	// Separators are the x positions of the lines drawn between categories.
	Separators []float64 `json:"separators"`
}

// NewHeatmap wraps m with the display range [zmin, zmax]. An empty or
// inverted range falls back to the defaults.
func NewHeatmap(m *Matrix, zmin, zmax float64) *Heatmap {
	if !(zmax > zmin) {
		zmin, zmax = DefaultZMin, DefaultZMax
	}
	h := &Heatmap{Matrix: m, ZMin: zmin, ZMax: zmax, ColorScale: GreenScale}
	for i := 1; i < len(m.Categories); i++ {
		h.Separators = append(h.Separators, float64(i)-0.5)
	}
	return h
}

// Clamp clips v into the display range. The matrix itself is never clipped.
func (h *Heatmap) Clamp(v float64) float64 {
	return math.Max(h.ZMin, math.Min(h.ZMax, v))
}

// Intensity maps v onto [0,1] within the display range.
func (h *Heatmap) Intensity(v float64) float64 {
	return (h.Clamp(v) - h.ZMin) / (h.ZMax - h.ZMin)
}
