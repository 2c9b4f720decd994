package dataset

import "github.com/okian/rematricula/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithDir sets the directory relative file names are resolved against.
func WithDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithFiles overrides the input file names. Empty names keep the default.
func WithFiles(f Files) Option {
	return func(l *Loader) {
		if f.Scores != "" {
			l.files.Scores = f.Scores
		}
		if f.Detail != "" {
			l.files.Detail = f.Detail
		}
		if f.Sentiment != "" {
			l.files.Sentiment = f.Sentiment
		}
		if f.Polarity != "" {
			l.files.Polarity = f.Polarity
		}
		if f.Results != "" {
			l.files.Results = f.Results
		}
	}
}

// WithLogger sets the loader logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}
