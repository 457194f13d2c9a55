package dynamo

import "errors"

// Domain errors for simulation operations. Numerical blowup is not an
// error: NaN and Inf propagate through steps and are reported as
// ordinary values.
var (
	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
