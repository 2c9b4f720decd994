package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/rematricula/internal/adapters/dataset"
	"github.com/okian/rematricula/internal/domain/scorecard"
	"github.com/okian/rematricula/internal/sampledata"
)

// Default configuration constants.
const (
	defaultAdvisors = 6
	defaultCalls    = 5
	defaultTimeout  = time.Minute
)

func main() {
	var (
		dir      = flag.String("dir", dataset.DefaultDir, "Output directory")
		advisors = flag.Int("advisors", defaultAdvisors, "Number of advisors")
		calls    = flag.Int("calls", defaultCalls, "Calls per advisor")
		format   = flag.String("format", sampledata.FormatCSV, "Output format: csv or xlsx")
		seed     = flag.Uint64("seed", 0, "Random seed, 0 for a random one")
		verify   = flag.Bool("verify", true, "Render the written files through the dashboard service")
		logFile  = flag.String("log", "", "Also write logs to this file")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := sampledata.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cfg := &sampledata.Config{
		Dir:             *dir,
		Advisors:        *advisors,
		CallsPerAdvisor: *calls,
		Format:          *format,
		Seed:            *seed,
		Requirements:    scorecard.DefaultRequirements(),
		Verify:          *verify,
	}

	if _, err := sampledata.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Sample data failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
