package scorecard

import (
	"fmt"
	"strings"
)

// Requirement is one checklist category. Min and Weight are display-only;
// pass flags come from the input row.
type Requirement struct {
	Name   string  `koanf:"name" json:"name"`
	Min    int     `koanf:"min" json:"min"`
	Weight float64 `koanf:"weight" json:"weight"`
}

// Requirements is the ordered checklist.
type Requirements []Requirement

// DefaultRequirements returns the rematricula checklist.
func DefaultRequirements() Requirements {
	return Requirements{
		{Name: "saludo", Min: 1, Weight: 0.05},
		{Name: "indagacion", Min: 4, Weight: 0.20},
		{Name: "programas", Min: 3, Weight: 0.15},
		{Name: "argumentacion", Min: 20, Weight: 0.30},
		{Name: "objecion", Min: 4, Weight: 0.20},
		{Name: "cierre", Min: 3, Weight: 0.20},
	}
}

// Names returns the category names in order.
func (rs Requirements) Names() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

// TotalWeight sums the category weights. The stock checklist sums to 1.1;
// weights are informational and nothing normalizes them.
func (rs Requirements) TotalWeight() float64 {
	var total float64
	for _, r := range rs {
		total += r.Weight
	}
	return total
}

// Validate checks names are unique and non-empty and that minimums and
// weights are not negative.
func (rs Requirements) Validate() error {
	if len(rs) == 0 {
		return fmt.Errorf("%w: empty checklist", ErrInvalidRequirements)
	}
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return fmt.Errorf("%w: empty category name", ErrInvalidRequirements)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidRequirements, name)
		}
		seen[name] = struct{}{}
		if r.Min < 0 || r.Weight < 0 {
			return fmt.Errorf("%w: negative min or weight for %q", ErrInvalidRequirements, name)
		}
	}
	return nil
}
