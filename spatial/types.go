// Package spatial types, symmetry modes and sentinel errors.
package spatial

import "errors"

// ErrNoNeighbors indicates a neighbor search that produced no usable
// coarse-grid point and had no DeletedPointMap fallback.
var ErrNoNeighbors = errors.New("spatial: no coarse neighbors found")

// Symmetry describes the dimensionality of the point configuration and
// fixes the nearest-neighbor count interpolation queries use.
type Symmetry int

const (
	// Full3D is a general three-dimensional point cloud.
	Full3D Symmetry = iota

	// Spherical1D is a spherically symmetric configuration: points sample a
	// radial profile, so far fewer neighbors constrain the interpolant.
	Spherical1D
)

// Nearest-neighbor counts per symmetry mode.
const (
	// NearestFull3D is the neighbor count for general 3D clouds.
	NearestFull3D = 12

	// NearestSpherical is the reduced neighbor count for radial profiles.
	NearestSpherical = 4
)

// NeighborCount returns the nearest-neighbor count for the symmetry mode.
func (s Symmetry) NeighborCount() int {
	if s == Spherical1D {
		return NearestSpherical
	}
	return NearestFull3D
}
