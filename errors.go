package marinedash

import "errors"

// Sentinel errors for widget operations.
var (
	ErrNoFetcher     = errors.New("no fetcher configured")
	ErrBodyRender    = errors.New("discussion body rendering failed")
	ErrInvalidOffice = errors.New("invalid office code")
)
