// Package sampledata generates synthetic dashboard input files for local runs
// and demos, then checks that the dashboard can render them.
package sampledata

import (
	"fmt"

	"github.com/okian/rematricula/internal/domain/scorecard"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds configuration for one generation run.
type Config struct {
	Dir             string                 // Output directory
	Advisors        int                    // Number of advisors
	CallsPerAdvisor int                    // Calls generated for each advisor
	Format          string                 // csv or xlsx
	Seed            uint64                 // 0 picks a random seed
	Requirements    scorecard.Requirements // Checklist driving the call columns
	Verify          bool                   // Render the written files afterwards
}

// Validate rejects configurations that cannot produce a dataset.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}
	if c.Advisors <= 0 {
		return fmt.Errorf("%w: advisors must be positive", ErrInvalidConfig)
	}
	if c.CallsPerAdvisor < 0 {
		return fmt.Errorf("%w: calls per advisor must not be negative", ErrInvalidConfig)
	}
	if c.Format != FormatCSV && c.Format != FormatXLSX {
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if err := c.Requirements.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Stats holds run statistics.
type Stats struct {
	Seed      uint64
	Advisors  int
	Calls     int
	Effective int
	Files     []string
	Rendered  bool
}
