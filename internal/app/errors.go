package service

import "errors"

// Sentinel error kinds for this package.
var (
	ErrEmptySelection = errors.New("select at least one KPI")
	ErrNoCountry      = errors.New("select at least one country")
	ErrUnknownSource  = errors.New("no adapter registered for source")
)
