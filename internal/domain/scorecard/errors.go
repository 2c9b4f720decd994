package scorecard

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidRequirements = errors.New("invalid requirements")
)
