package ocean

import "errors"

// Domain errors for simulation setup and ticking. Per-cell kernels never
// return errors; singular inputs there degrade to safe values instead.
var (
	// ErrResolution indicates a grid side that is not a power of two.
	ErrResolution = errors.New("ocean: resolution must be a power of two >= 2")

	// ErrPatchSize indicates a non-positive physical patch size.
	ErrPatchSize = errors.New("ocean: patch size must be positive")

	// ErrNegativeDt indicates a backwards time step.
	ErrNegativeDt = errors.New("ocean: time step must not be negative")
)
