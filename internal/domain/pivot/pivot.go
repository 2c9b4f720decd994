// Package pivot reshapes the long (advisor, category, count) table into an
// advisor by category matrix for heatmap rendering.
package pivot

import (
	"fmt"
	"sort"

	"github.com/okian/rematricula/internal/domain/model"
)

// Default heatmap color range. Values outside are clipped for color only.
const (
	DefaultZMin = 0.0
	DefaultZMax = 2.0
)

// RequiredColumns are the columns Build needs.
var RequiredColumns = []string{model.ColAdvisor, model.ColCategory, model.ColAverageCount}

// Matrix is the pivoted table. Cells[i][j] is the count for Advisors[i] and
// Categories[j]; a nil cell marks a combination absent from the input.
type Matrix struct {
	Advisors   []string     `json:"advisors"`
	Categories []string     `json:"categories"`
	Cells      [][]*float64 `json:"cells"`
}

// Build pivots t. It fails with ErrMissingColumns when a required column is
// absent and with ErrDuplicateKey when a pair appears twice.
func Build(t *model.Table) (*Matrix, error) {
	var missing []string
	for _, c := range RequiredColumns {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingColumns, missing)
	}

	rows := model.CategoryCounts(t)
	type key struct{ advisor, category string }
	values := make(map[key]*float64, len(rows))
	advisorSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	for _, r := range rows {
		k := key{r.Advisor, r.Category}
		if _, dup := values[k]; dup {
			return nil, fmt.Errorf("%w: (%q, %q)", ErrDuplicateKey, r.Advisor, r.Category)
		}
		values[k] = r.AverageCount
		advisorSet[r.Advisor] = struct{}{}
		categorySet[r.Category] = struct{}{}
	}

	m := &Matrix{
		Advisors:   sortedKeys(advisorSet),
		Categories: sortedKeys(categorySet),
	}
	m.Cells = make([][]*float64, len(m.Advisors))
	for i, a := range m.Advisors {
		m.Cells[i] = make([]*float64, len(m.Categories))
		for j, c := range m.Categories {
			m.Cells[i][j] = values[key{a, c}]
		}
	}
	return m, nil
}

// Value returns the cell for (advisor, category) and whether it is present.
func (m *Matrix) Value(advisor, category string) (float64, bool) {
	i := sort.SearchStrings(m.Advisors, advisor)
	j := sort.SearchStrings(m.Categories, category)
	if i >= len(m.Advisors) || m.Advisors[i] != advisor || j >= len(m.Categories) || m.Categories[j] != category {
		return 0, false
	}
	if c := m.Cells[i][j]; c != nil {
		return *c, true
	}
	return 0, false
}

// Dims returns the number of advisors and categories.
func (m *Matrix) Dims() (rows, cols int) { return len(m.Advisors), len(m.Categories) }

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
