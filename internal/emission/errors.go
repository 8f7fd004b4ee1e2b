package emission

import "errors"

// Sentinel errors returned by the engine. Handlers map these to HTTP
// responses; anything else is an infrastructure failure.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidDate  = errors.New("invalid date")
	ErrNoFactor     = errors.New("no emission factor for this activity")
)
