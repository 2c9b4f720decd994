package sampledata

import "os"

// ShowHelp prints usage information for the sample data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Rematricula Sample Data Tool
============================

Writes the five dashboard input files with synthetic advisors and calls.

Usage:
  go run ./cmd/sample-data [options]

Options:
  -dir string
        Output directory (default "data")
  -advisors int
        Number of advisors (default 6)
  -calls int
        Calls per advisor (default 5)
  -format string
        csv or xlsx (default "csv")
  -seed uint
        Random seed, 0 for a random one (default 0)
  -verify
        Render the written files through the dashboard service (default true)
  -log string
        Also write logs to this file
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  # Fill ./data for a local dashboard
  go run ./cmd/sample-data

  # Reproducible workbook inputs
  go run ./cmd/sample-data -format xlsx -seed 42 -dir /tmp/rematricula
`)
}
