// Package chart builds shareable static image links for dashboard charts.
// Links point at a QuickChart server; nothing is fetched here.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"

	quickchartgo "github.com/henomis/quickchart-go"
)

// ErrChartURL is returned when a link cannot be built.
var ErrChartURL = errors.New("chart url failed")

// Config is the Chart.js configuration QuickChart renders.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options,omitempty"`
}

// Data holds the labels and datasets of a chart.
type Data struct {
	Labels   []string  `json:"labels"`
	DataSets []Dataset `json:"datasets"`
}

// Dataset is one series.
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor,omitempty"`
}

// Options carries the few Chart.js options used here.
type Options struct {
	IndexAxis string `json:"indexAxis,omitempty"`
}

// Bar describes a bar chart to export.
type Bar struct {
	Title      string
	Labels     []string
	Values     []float64
	Horizontal bool
	Colors     []string
}

// Config converts b into a Chart.js configuration. Colors cycle over the
// bars.
func (b Bar) Config() Config {
	ds := Dataset{Label: b.Title, Data: b.Values}
	if len(b.Colors) > 0 {
		ds.BackgroundColor = make([]string, len(b.Values))
		for i := range b.Values {
			ds.BackgroundColor[i] = b.Colors[i%len(b.Colors)]
		}
	}
	cfg := Config{Type: "bar", Data: Data{Labels: b.Labels, DataSets: []Dataset{ds}}}
	if b.Horizontal {
		cfg.Options.IndexAxis = "y"
	}
	return cfg
}

// URL returns the QuickChart image link for b.
func URL(b Bar) (string, error) {
	raw, err := json.Marshal(b.Config())
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %w", ErrChartURL, err)
	}
	qc := quickchartgo.New()
	qc.Config = string(raw)
	u, err := qc.GetUrl()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChartURL, err)
	}
	return u, nil
}
