package source

import "errors"

// Sentinel kinds for adapter errors. The aggregator treats any of these
// as a non-fatal warning on the affected indicator.
var (
	ErrFetch         = errors.New("upstream fetch failed")
	ErrStatus        = errors.New("upstream returned non-2xx status")
	ErrDecode        = errors.New("upstream response decode failed")
	ErrMissingColumn = errors.New("expected column missing from response")
)
