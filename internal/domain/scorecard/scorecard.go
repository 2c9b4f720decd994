// Package scorecard groups analyzed calls by advisor and shapes each call
// into a per-category pass/fail breakdown.
package scorecard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okian/rematricula/internal/domain/model"
)

// Display marks.
const (
	MarkPass = "✅"
	MarkFail = "❌"
)

// NoDataMessage replaces the scorecards when there is no call to show.
const NoDataMessage = "No hay datos de rematrícula para mostrar."

// CategoryLine is one checklist line of a call.
type CategoryLine struct {
	Category string  `json:"category"`
	Min      int     `json:"min"`
	Weight   float64 `json:"weight"`
	Count    float64 `json:"count"`
	Pass     bool    `json:"pass"`
}

// String renders the line, e.g. "Saludo: 1 ✅".
func (l CategoryLine) String() string {
	return fmt.Sprintf("%s: %s %s", capitalize(l.Category), formatCount(l.Count), mark(l.Pass))
}

// CallCard is the breakdown of one call.
type CallCard struct {
	Archivo  string         `json:"archivo"`
	Lines    []CategoryLine `json:"lines"`
	Efectiva bool           `json:"efectiva"`
	Puntaje  float64        `json:"puntaje"`
}

// Outcome renders the overall result line, e.g. "Resultado: ❌ — Puntaje: 82.5%".
func (c CallCard) Outcome() string {
	return fmt.Sprintf("Resultado: %s — Puntaje: %.1f%%", mark(c.Efectiva), c.Puntaje)
}

// Group holds every call of one advisor in input order.
type Group struct {
	Advisor string     `json:"asesor"`
	Calls   []CallCard `json:"calls"`
}

// Title renders the group header, e.g. "👤 Ana — 3 llamadas".
func (g Group) Title() string {
	return fmt.Sprintf("👤 %s — %d llamadas", g.Advisor, len(g.Calls))
}

// Result is the scorecard output. NoData is set when the input is empty.
type Result struct {
	NoData  bool    `json:"no_data"`
	Message string  `json:"message,omitempty"`
	Groups  []Group `json:"groups"`
}

// Calls returns the total number of calls across groups.
func (r Result) Calls() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Calls)
	}
	return n
}

// Builder shapes call rows using a fixed checklist.
type Builder struct {
	reqs Requirements
}

// NewBuilder returns a Builder for reqs. Empty reqs use DefaultRequirements.
func NewBuilder(reqs Requirements) *Builder {
	if len(reqs) == 0 {
		reqs = DefaultRequirements()
	}
	return &Builder{reqs: reqs}
}

// Requirements returns the checklist in use.
func (b *Builder) Requirements() Requirements { return b.reqs }

// Card shapes one call. Pass flags are taken from the row verbatim.
func (b *Builder) Card(cr model.CallResult) CallCard {
	card := CallCard{
		Archivo:  cr.Archivo,
		Lines:    make([]CategoryLine, 0, len(b.reqs)),
		Efectiva: cr.Efectiva,
		Puntaje:  cr.Puntaje,
	}
	for _, r := range b.reqs {
		card.Lines = append(card.Lines, CategoryLine{
			Category: r.Name,
			Min:      r.Min,
			Weight:   r.Weight,
			Count:    cr.Counts[r.Name],
			Pass:     cr.Pass[r.Name],
		})
	}
	return card
}

// Build groups rows by advisor. Advisors are sorted; calls keep input order.
// Rows with a blank advisor belong to no group.
func (b *Builder) Build(rows []model.CallResult) Result {
	byAdvisor := make(map[string][]CallCard)
	for _, cr := range rows {
		if strings.TrimSpace(cr.Advisor) == "" {
			continue
		}
		byAdvisor[cr.Advisor] = append(byAdvisor[cr.Advisor], b.Card(cr))
	}
	if len(byAdvisor) == 0 {
		return Result{NoData: true, Message: NoDataMessage}
	}
	advisors := make([]string, 0, len(byAdvisor))
	for a := range byAdvisor {
		advisors = append(advisors, a)
	}
	sort.Strings(advisors)

	res := Result{Groups: make([]Group, 0, len(advisors))}
	for _, a := range advisors {
		res.Groups = append(res.Groups, Group{Advisor: a, Calls: byAdvisor[a]})
	}
	return res
}

// BuildTable decodes t and builds the scorecards.
func (b *Builder) BuildTable(t *model.Table) Result {
	return b.Build(model.CallResults(t, b.reqs.Names()))
}

func mark(ok bool) string {
	if ok {
		return MarkPass
	}
	return MarkFail
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
