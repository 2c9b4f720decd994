package dataset

import "errors"

// Sentinel error kinds for this package.
var (
	ErrLoadDataset     = errors.New("load dataset failed")
	ErrEmptyFile       = errors.New("file has no header")
	ErrUnsupportedFile = errors.New("unsupported file format")
)
