package frp

import "errors"

// Domain errors for driver loops.
var (
	// ErrNegativeDt indicates an input source produced a step with dt < 0.
	ErrNegativeDt = errors.New("frp: negative dt in step")

	// ErrNilOutput indicates ReactWith was called without an output callback.
	ErrNilOutput = errors.New("frp: output callback is required")
)
