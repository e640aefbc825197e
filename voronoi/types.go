// Package voronoi types, constants and sentinel errors.
package voronoi

import (
	"errors"

	"github.com/katalvlaran/multimesh/mesh"
)

// Sentinel errors for tessellation.
var (
	// ErrEmptyBox indicates a container with non-positive extent on some axis.
	ErrEmptyBox = errors.New("voronoi: container box has non-positive extent")

	// ErrDegenerateSeeds indicates two coinciding seeds.
	ErrDegenerateSeeds = errors.New("voronoi: coinciding seeds")
)

// Default padding applied by PadBox.
const (
	// DefaultRelativePad is the fraction of each box extent added per side.
	DefaultRelativePad = 1e-3

	// DefaultAbsolutePad is the fixed unit margin added per side, so a flat
	// or collinear point set still yields a full-dimensional container.
	DefaultAbsolutePad = 1.0
)

// geomEps is the tolerance used when classifying polygon vertices against
// clipping planes, scaled by the box diagonal.
const geomEps = 1e-12

// sliverFrac (times diagonal²) is the minimum area for a clipped polygon
// to count as a real cell face; suppresses edge- and vertex-contact slivers.
const sliverFrac = 1e-9

// Box is an axis-aligned container.
type Box struct {
	Min, Max mesh.Vec3
}

// Extent returns the box edge lengths.
func (b Box) Extent() mesh.Vec3 { return b.Max.Sub(b.Min) }

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float64 { return b.Extent().Norm() }

// valid reports whether the box has positive extent on every axis.
func (b Box) valid() bool {
	e := b.Extent()
	return e.X > 0 && e.Y > 0 && e.Z > 0
}

// PadBox returns the axis-aligned bounding box of points, each side pushed
// out by relative·extent + absolute. Relative and absolute default to
// DefaultRelativePad and DefaultAbsolutePad when negative.
func PadBox(points []mesh.Vec3, relative, absolute float64) Box {
	if relative < 0 {
		relative = DefaultRelativePad
	}
	if absolute < 0 {
		absolute = DefaultAbsolutePad
	}
	if len(points) == 0 {
		return Box{Min: mesh.Vec3{X: -absolute, Y: -absolute, Z: -absolute},
			Max: mesh.Vec3{X: absolute, Y: absolute, Z: absolute}}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.Z < lo.Z {
			lo.Z = p.Z
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
		if p.Z > hi.Z {
			hi.Z = p.Z
		}
	}
	pad := mesh.Vec3{
		X: relative*(hi.X-lo.X) + absolute,
		Y: relative*(hi.Y-lo.Y) + absolute,
		Z: relative*(hi.Z-lo.Z) + absolute,
	}
	return Box{Min: lo.Sub(pad), Max: hi.Add(pad)}
}
