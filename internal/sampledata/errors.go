package sampledata

import "errors"

// Sentinel errors.
var (
	ErrInvalidConfig = errors.New("invalid sample data config")
	ErrWrite         = errors.New("write sample data failed")
	ErrVerify        = errors.New("sample data verification failed")
)
