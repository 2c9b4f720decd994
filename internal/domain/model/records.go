package model

// Column names of the input tables.
const (
	ColAdvisor       = "asesor"
	ColAverageScore  = "puntaje_promedio"
	ColCategory      = "categoria"
	ColAverageCount  = "promedio_conteo"
	ColConfidence    = "confidence"
	ColConfianza     = "confianza"
	ColPolarity      = "polarity"
	ColSubjectivity  = "subjectivity"
	ColArchivo       = "archivo"
	ColEfectiva      = "efectiva"
	ColPuntaje       = "puntaje"
	PassColumnSuffix = "_ok"
)

// AdvisorScore is one row of the per-advisor average score table.
type AdvisorScore struct {
	Advisor      string  `json:"asesor"`
	AverageScore float64 `json:"puntaje_promedio"` // fraction in [0,1]
}

// CategoryCount is one row of the long (advisor, category) count table.
type CategoryCount struct {
	Advisor      string   `json:"asesor"`
	Category     string   `json:"categoria"`
	AverageCount *float64 `json:"promedio_conteo"` // nil when the cell is not a number
}

// AdvisorPolarity is one row of the per-advisor polarity table.
type AdvisorPolarity struct {
	Advisor  string  `json:"asesor"`
	Polarity float64 `json:"polarity"`
}

// CallResult is one analyzed call. Missing cells take the zero default:
// count 0, pass false, efectiva false, puntaje 0.
type CallResult struct {
	Advisor  string             `json:"asesor"`
	Archivo  string             `json:"archivo"`
	Counts   map[string]float64 `json:"counts"`
	Pass     map[string]bool    `json:"pass"`
	Efectiva bool               `json:"efectiva"`
	Puntaje  float64            `json:"puntaje"` // [0,100]
}

// PassColumn returns the name of the pass-flag column for category.
func PassColumn(category string) string { return category + PassColumnSuffix }
