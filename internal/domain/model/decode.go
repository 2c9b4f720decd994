package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat parses a numeric cell. Empty, NaN and non-numeric cells
// report ok=false.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseBool parses a flag cell as written by pandas or by hand.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "1.0", "yes", "y", "si", "sí", "verdadero":
		return true, true
	case "false", "0", "0.0", "no", "n", "falso":
		return false, true
	}
	return false, false
}

func (t *Table) float(row int, column string) float64 {
	s, _ := t.Cell(row, column)
	v, _ := ParseFloat(s)
	return v
}

func (t *Table) flag(row int, column string) bool {
	s, _ := t.Cell(row, column)
	v, _ := ParseBool(s)
	return v
}

func (t *Table) text(row int, column string) string {
	s, _ := t.Cell(row, column)
	return s
}

// AdvisorScores decodes the per-advisor score table.
func AdvisorScores(t *Table) []AdvisorScore {
	out := make([]AdvisorScore, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		out = append(out, AdvisorScore{
			Advisor:      t.text(r, ColAdvisor),
			AverageScore: t.float(r, ColAverageScore),
		})
	}
	return out
}

// CategoryCounts decodes the long category count table.
func CategoryCounts(t *Table) []CategoryCount {
	out := make([]CategoryCount, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		cc := CategoryCount{
			Advisor:  t.text(r, ColAdvisor),
			Category: t.text(r, ColCategory),
		}
		if s, ok := t.Cell(r, ColAverageCount); ok {
			if v, ok := ParseFloat(s); ok {
				cc.AverageCount = &v
			}
		}
		out = append(out, cc)
	}
	return out
}

// AdvisorPolarities decodes the per-advisor polarity table.
func AdvisorPolarities(t *Table) []AdvisorPolarity {
	out := make([]AdvisorPolarity, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		out = append(out, AdvisorPolarity{
			Advisor:  t.text(r, ColAdvisor),
			Polarity: t.float(r, ColPolarity),
		})
	}
	return out
}

// CallResults decodes the per-call result table for the given categories.
func CallResults(t *Table, categories []string) []CallResult {
	out := make([]CallResult, 0, t.Len())
	for r := 0; r < t.Len(); r++ {
		cr := CallResult{
			Advisor:  t.text(r, ColAdvisor),
			Archivo:  t.text(r, ColArchivo),
			Counts:   make(map[string]float64, len(categories)),
			Pass:     make(map[string]bool, len(categories)),
			Efectiva: t.flag(r, ColEfectiva),
			Puntaje:  t.float(r, ColPuntaje),
		}
		for _, c := range categories {
			cr.Counts[c] = t.float(r, c)
			cr.Pass[c] = t.flag(r, PassColumn(c))
		}
		out = append(out, cr)
	}
	return out
}
