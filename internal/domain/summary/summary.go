// Package summary computes the scalar means shown on the dashboard cards.
// Every function tolerates empty tables and absent columns and returns 0
// in those cases.
package summary

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/rematricula/internal/domain/model"
)

// DefaultConfidenceColumns is the ordered fallback list for the confidence
// column of the sentiment table.
var DefaultConfidenceColumns = []string{model.ColConfidence, model.ColConfianza}

// Summary holds the four headline means.
type Summary struct {
	AverageScore        float64 `json:"average_score"`
	AverageConfidence   float64 `json:"average_confidence"`
	AveragePolarity     float64 `json:"average_polarity"`
	AverageSubjectivity float64 `json:"average_subjectivity"`

	// ConfidenceColumn is the column the confidence mean was read from,
	// empty when no candidate matched.
	ConfidenceColumn string `json:"confidence_column,omitempty"`
}

// ResolveColumn returns the first candidate present in t's header.
func ResolveColumn(t *model.Table, candidates ...string) (string, bool) {
	for _, c := range candidates {
		if t.Has(c) {
			return c, true
		}
	}
	return "", false
}

// Mean averages the numeric cells of column. Non-numeric cells are skipped.
func Mean(t *model.Table, column string) float64 {
	if t.Empty() || !t.Has(column) {
		return 0
	}
	var vals []float64
	for _, s := range t.Column(column) {
		if v, ok := model.ParseFloat(s); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// Aggregate computes the card values from the advisor score table and the
// general sentiment table. A nil confidenceColumns uses
// DefaultConfidenceColumns.
func Aggregate(scores, sentiment *model.Table, confidenceColumns []string) Summary {
	if confidenceColumns == nil {
		confidenceColumns = DefaultConfidenceColumns
	}
	s := Summary{
		AverageScore:        Mean(scores, model.ColAverageScore),
		AveragePolarity:     Mean(sentiment, model.ColPolarity),
		AverageSubjectivity: Mean(sentiment, model.ColSubjectivity),
	}
	if col, ok := ResolveColumn(sentiment, confidenceColumns...); ok {
		s.ConfidenceColumn = col
		s.AverageConfidence = Mean(sentiment, col)
	}
	return s
}

// Percent formats a fraction as a percentage with two decimals.
func Percent(v float64) string { return fmt.Sprintf("%.2f%%", v*100) }

// Fixed formats v with two decimals.
func Fixed(v float64) string { return fmt.Sprintf("%.2f", v) }

// Card is one formatted headline metric.
type Card struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Card and gauge labels.
const (
	LabelScore        = "Puntaje Promedio"
	LabelConfidence   = "Confianza Promedio"
	LabelPolarity     = "Polaridad Promedio"
	LabelSubjectivity = "Subjectividad Promedio"
)

// Cards returns the four formatted cards in display order.
func (s Summary) Cards() []Card {
	return []Card{
		{Label: LabelScore, Value: s.AverageScore, Text: Percent(s.AverageScore)},
		{Label: LabelConfidence, Value: s.AverageConfidence, Text: Percent(s.AverageConfidence)},
		{Label: LabelPolarity, Value: s.AveragePolarity, Text: Fixed(s.AveragePolarity)},
		{Label: LabelSubjectivity, Value: s.AverageSubjectivity, Text: Fixed(s.AverageSubjectivity)},
	}
}
