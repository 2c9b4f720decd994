package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/internal/domain/pivot"
	"github.com/okian/rematricula/internal/domain/scorecard"
	"github.com/okian/rematricula/internal/domain/summary"
)

// Dashboard title.
const Title = "📞 Dashboard de Llamadas de Rematricula"

// Bar orientations.
const (
	Vertical   = "v"
	Horizontal = "h"
)

// ScoreColors is the color scale of the advisor score chart.
var ScoreColors = []string{"#c7e9c0", "#a1d99b", "#41ab5d", "#74c476", "#004b23"}

// BarChart is a single-series bar chart, already sorted for display.
type BarChart struct {
	Title       string    `json:"title"`
	Orientation string    `json:"orientation"`
	LabelAxis   string    `json:"label_axis"`
	ValueAxis   string    `json:"value_axis"`
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	Texts       []string  `json:"texts"`
	// ValueFormat is a d3 format string for the value axis.
	ValueFormat string   `json:"value_format,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	ColorScale  string   `json:"colorscale,omitempty"`
}

// GaugeStep is a colored band of a gauge axis.
type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

// Gauge is a dial indicator with a delta against Reference.
type Gauge struct {
	Title     string      `json:"title"`
	Value     float64     `json:"value"`
	Reference float64     `json:"reference"`
	AxisMin   float64     `json:"axis_min"`
	AxisMax   float64     `json:"axis_max"`
	Steps     []GaugeStep `json:"steps"`
}

// HeatmapView is the heatmap or the warning shown in its place.
type HeatmapView struct {
	Title   string         `json:"title"`
	Heatmap *pivot.Heatmap `json:"heatmap,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

// Valid reports whether a heatmap can be drawn.
func (h HeatmapView) Valid() bool { return h.Heatmap != nil }

// View is everything one dashboard render shows.
type View struct {
	Title        string                 `json:"title"`
	GeneratedAt  time.Time              `json:"generated_at"`
	Summary      summary.Summary        `json:"summary"`
	Cards        []summary.Card         `json:"cards"`
	Scores       BarChart               `json:"scores"`
	Heatmap      HeatmapView            `json:"heatmap"`
	Gauges       []Gauge                `json:"gauges"`
	Polarity     BarChart               `json:"polarity"`
	Scorecards   scorecard.Result       `json:"scorecards"`
	Requirements scorecard.Requirements `json:"requirements"`
}

func scoreChart(rows []model.AdvisorScore) BarChart {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AverageScore > rows[j].AverageScore })
	c := BarChart{
		Title:       "🎯 Puntaje Promedio Total por Asesor",
		Orientation: Vertical,
		LabelAxis:   "Asesor",
		ValueAxis:   "Puntaje Promedio",
		ValueFormat: ".0%",
		Colors:      ScoreColors,
	}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Advisor)
		c.Values = append(c.Values, r.AverageScore)
		c.Texts = append(c.Texts, summary.Percent(r.AverageScore))
	}
	return c
}

func polarityChart(rows []model.AdvisorPolarity) BarChart {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Polarity > rows[j].Polarity })
	c := BarChart{
		Title:       "📊 Polaridad por Asesor",
		Orientation: Horizontal,
		LabelAxis:   "Asesor",
		ValueAxis:   "Polaridad",
		ColorScale:  "Greens",
	}
	for _, r := range rows {
		c.Labels = append(c.Labels, r.Advisor)
		c.Values = append(c.Values, r.Polarity)
		c.Texts = append(c.Texts, fmt.Sprintf("%.2f", r.Polarity))
	}
	return c
}

func sentimentGauges(s summary.Summary) []Gauge {
	return []Gauge{
		{
			Title: summary.LabelPolarity, Value: s.AveragePolarity, Reference: 0,
			AxisMin: -1, AxisMax: 1,
			Steps: []GaugeStep{
				{From: -1, To: -0.3, Color: "#c7e9c0"},
				{From: -0.3, To: 0.3, Color: "#a1d99b"},
				{From: 0.3, To: 1, Color: "#31a354"},
			},
		},
		{
			Title: summary.LabelSubjectivity, Value: s.AverageSubjectivity, Reference: 0.5,
			AxisMin: 0, AxisMax: 1,
			Steps: []GaugeStep{
				{From: 0, To: 0.3, Color: "#e5f5e0"},
				{From: 0.3, To: 0.7, Color: "#a1d99b"},
				{From: 0.7, To: 1, Color: "#31a354"},
			},
		},
	}
}
