// Package mesh core types: Vec3, collaborator interfaces, sentinel errors.
package mesh

import (
	"errors"
	"math"
)

// Sentinel errors for mesh operations.
var (
	// ErrIndexOutOfRange indicates a point or neighbor index outside [0, N).
	ErrIndexOutOfRange = errors.New("mesh: point index out of range")

	// ErrSelfLoop indicates an attempt to link a point to itself.
	ErrSelfLoop = errors.New("mesh: self-loop not allowed")

	// ErrInactivePoint indicates a mutation on a point inactive at the target level.
	ErrInactivePoint = errors.New("mesh: point inactive at level")

	// ErrLevelOutOfRange indicates a level index outside the built hierarchy.
	ErrLevelOutOfRange = errors.New("mesh: level out of range")

	// ErrLevelFinalized indicates a mutation on a level that is already finalized.
	ErrLevelFinalized = errors.New("mesh: level is finalized")
)

// Vec3 is a 3D position.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dist returns the Euclidean distance between v and w.
func (v Vec3) Dist(w Vec3) float64 { return v.Sub(w).Norm() }

// Geometry is the external geometry collaborator: point positions and
// boundary membership. The hierarchy never creates or destroys points,
// it only (de)activates them per level.
type Geometry interface {
	// Len reports the total number of points N. Point indices are 0..N-1.
	Len() int

	// Position returns the immutable position of point p.
	Position(p int) Vec3

	// OnBoundary reports whether point p lies on the mesh boundary.
	// Boundary points are never deactivated by coarsening.
	OnBoundary(p int) bool
}

// Abundances supplies the representative per-point value used by the
// coarsening similarity criterion.
type Abundances interface {
	// Abundance returns the representative abundance value of point p.
	Abundance(p int) float64
}

// LinePopulations is the chemistry/line-data collaborator: the per-species,
// per-point, per-energy-level population store read and written by
// fractional interpolation.
type LinePopulations interface {
	// Species reports the number of chemical species carrying line data.
	Species() int

	// Levels reports the number of energy levels of species s
	// (sizes the interpolation loop per species).
	Levels(s int) int

	// Population returns the population of energy level l of species s at point p.
	Population(s, p, l int) float64

	// SetPopulation stores the population of energy level l of species s at point p.
	SetPopulation(s, p, l int, v float64)

	// AbundanceFactor returns the species abundance at point p, the factor
	// dividing raw populations into fractional ones before interpolation.
	AbundanceFactor(s, p int) float64
}
