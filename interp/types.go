// Package interp options and sentinel errors.
package interp

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/multimesh/spatial"
)

// Sentinel errors for interpolation.
var (
	// ErrNonFinite indicates a NaN or Inf produced during an RBF solve.
	ErrNonFinite = errors.New("interp: non-finite interpolation result")

	// ErrZeroFractionSum indicates all fractions of a point clamped to zero.
	ErrZeroFractionSum = errors.New("interp: fraction sum is zero after clamping")

	// ErrFieldSize indicates a field slice not covering all points.
	ErrFieldSize = errors.New("interp: field length does not match point count")

	// ErrNilCollaborator indicates a missing hierarchy or population store.
	ErrNilCollaborator = errors.New("interp: nil hierarchy or populations")
)

// Option configures an Interpolator via functional arguments.
type Option func(*Options)

// Options holds interpolation tunables.
type Options struct {
	// Symmetry fixes the nearest-neighbor count (see spatial.Symmetry).
	Symmetry spatial.Symmetry

	// Parallelism bounds the number of concurrently processed diff points.
	Parallelism int
}

// DefaultOptions returns full-3D symmetry and GOMAXPROCS parallelism.
func DefaultOptions() Options {
	return Options{
		Symmetry:    spatial.Full3D,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithSymmetry selects the symmetry mode (and thus the neighbor count).
func WithSymmetry(s spatial.Symmetry) Option {
	return func(o *Options) { o.Symmetry = s }
}

// WithParallelism bounds concurrent diff-point workers; values < 1 are
// ignored.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Parallelism = n
		}
	}
}
