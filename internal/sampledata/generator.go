package sampledata

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/okian/rematricula/internal/domain/model"
	"github.com/okian/rematricula/internal/domain/scorecard"
)

// EffectiveThreshold is the puntaje at or above which a call is effective.
const EffectiveThreshold = 80.0

// Constants for the performer profiles.
const (
	skillMin        = 0.35
	skillRange      = 0.65
	countSpread     = 0.8
	countFloor      = 0.6
	countBoost      = 1.5
	polarityNoise   = 0.2
	confidenceMin   = 0.6
	confidenceRange = 0.4
)

var advisorNames = []string{
	"Ana", "Luis", "Marta", "Carlos", "Sofía",
	"Jorge", "Valentina", "Andrés", "Camila", "Diego",
}

// Sample is one generated dataset.
type Sample struct {
	Seed    uint64
	Dataset dataset.Dataset
	Calls   []model.CallResult
}

// RandomSeed returns a seed from crypto/rand.
func RandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 1
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Generate builds the five input tables for cfg. The same seed yields the
// same tables.
func Generate(cfg *Config) (*Sample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = RandomSeed()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	g := &generator{rng: rng, reqs: cfg.Requirements}

	advisors := advisorList(cfg.Advisors)
	skills := make(map[string]float64, len(advisors))
	for _, a := range advisors {
		skills[a] = skillMin + rng.Float64()*skillRange
	}

	var calls []model.CallResult
	for _, a := range advisors {
		for i := 0; i < cfg.CallsPerAdvisor; i++ {
			calls = append(calls, g.call(a, skills[a]))
		}
	}

	return &Sample{
		Seed:  seed,
		Calls: calls,
		Dataset: dataset.Dataset{
			Scores:    scoresTable(advisors, calls),
			Detail:    g.detailTable(advisors, calls),
			Sentiment: g.sentimentTable(calls, skills),
			Polarity:  g.polarityTable(advisors, skills),
			Results:   g.resultsTable(calls),
		},
	}, nil
}

type generator struct {
	rng  *rand.Rand
	reqs scorecard.Requirements
}

func (g *generator) call(advisor string, skill float64) model.CallResult {
	cr := model.CallResult{
		Advisor: advisor,
		Archivo: fmt.Sprintf("llamada_%08x.wav", g.rng.Uint32()),
		Counts:  make(map[string]float64, len(g.reqs)),
		Pass:    make(map[string]bool, len(g.reqs)),
	}
	var earned float64
	for _, r := range g.reqs {
		n := math.Round(float64(r.Min) * skill * countBoost * (countFloor + countSpread*g.rng.Float64()))
		cr.Counts[r.Name] = n
		cr.Pass[r.Name] = n >= float64(r.Min)
		if cr.Pass[r.Name] {
			earned += r.Weight
		}
	}
	if total := g.reqs.TotalWeight(); total > 0 {
		cr.Puntaje = math.Round(earned/total*1000) / 10
	}
	cr.Efectiva = cr.Puntaje >= EffectiveThreshold
	return cr
}

func advisorList(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := advisorNames[i%len(advisorNames)]
		if round := i / len(advisorNames); round > 0 {
			name += " " + strconv.Itoa(round+1)
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// mean is 0 for an empty slice.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

func scoresTable(advisors []string, calls []model.CallResult) *model.Table {
	scores := make(map[string][]float64)
	for _, c := range calls {
		scores[c.Advisor] = append(scores[c.Advisor], c.Puntaje)
	}
	rows := make([][]string, 0, len(advisors))
	for _, a := range advisors {
		rows = append(rows, []string{a, formatFloat(mean(scores[a])/100, 4)})
	}
	return model.NewTable(dataset.TableScores, []string{model.ColAdvisor, model.ColAverageScore}, rows)
}

func (g *generator) detailTable(advisors []string, calls []model.CallResult) *model.Table {
	byAdvisor := make(map[string][]model.CallResult)
	for _, c := range calls {
		byAdvisor[c.Advisor] = append(byAdvisor[c.Advisor], c)
	}
	var rows [][]string
	for _, a := range advisors {
		own := byAdvisor[a]
		if len(own) == 0 {
			continue
		}
		counts := make([]float64, len(own))
		for _, cat := range g.reqs.Names() {
			for i, c := range own {
				counts[i] = c.Counts[cat]
			}
			rows = append(rows, []string{a, cat, formatFloat(mean(counts), 2)})
		}
	}
	return model.NewTable(dataset.TableDetail,
		[]string{model.ColAdvisor, model.ColCategory, model.ColAverageCount}, rows)
}

func (g *generator) sentimentTable(calls []model.CallResult, skills map[string]float64) *model.Table {
	rows := make([][]string, 0, len(calls))
	for _, c := range calls {
		rows = append(rows, []string{
			c.Archivo,
			formatFloat(confidenceMin+g.rng.Float64()*confidenceRange, 3),
			formatFloat(g.polarity(skills[c.Advisor]), 3),
			formatFloat(g.rng.Float64(), 3),
		})
	}
	return model.NewTable(dataset.TableSentiment,
		[]string{model.ColArchivo, model.ColConfidence, model.ColPolarity, model.ColSubjectivity}, rows)
}

func (g *generator) polarityTable(advisors []string, skills map[string]float64) *model.Table {
	rows := make([][]string, 0, len(advisors))
	for _, a := range advisors {
		rows = append(rows, []string{a, formatFloat(g.polarity(skills[a]), 3)})
	}
	return model.NewTable(dataset.TablePolarity, []string{model.ColAdvisor, model.ColPolarity}, rows)
}

// polarity maps skill onto [-1,1] with some noise.
func (g *generator) polarity(skill float64) float64 {
	p := 2*skill - 1 + (g.rng.Float64()*2-1)*polarityNoise
	return math.Max(-1, math.Min(1, p))
}

func (g *generator) resultsTable(calls []model.CallResult) *model.Table {
	header := []string{model.ColAdvisor, model.ColArchivo}
	for _, cat := range g.reqs.Names() {
		header = append(header, cat, model.PassColumn(cat))
	}
	header = append(header, model.ColEfectiva, model.ColPuntaje)

	rows := make([][]string, 0, len(calls))
	for _, c := range calls {
		row := []string{c.Advisor, c.Archivo}
		for _, cat := range g.reqs.Names() {
			row = append(row, formatFloat(c.Counts[cat], 0), formatBool(c.Pass[cat]))
		}
		row = append(row, formatBool(c.Efectiva), formatFloat(c.Puntaje, 1))
		rows = append(rows, row)
	}
	return model.NewTable(dataset.TableResults, header, rows)
}

func formatFloat(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
