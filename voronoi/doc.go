// Package voronoi computes restricted 3D Voronoi face neighbors inside an
// axis-aligned container box, in the style of a bounded Voronoi cell
// library: each seed's cell is the region of the box closer to it than to
// any other seed, and two seeds are face neighbors when their cells share
// a face of positive area.
//
// What:
//
//   - Box is the axis-aligned container; PadBox builds one over a point
//     set, padded by a relative fraction of each extent plus a fixed
//     absolute margin (guards degenerate and low-dimensional inputs).
//   - Tessellate returns, per seed, the IDs of its face neighbors. Faces
//     contributed by the container walls are reported as negative IDs
//     (-1..-6, one per wall); callers interested only in point-point
//     adjacency skip those.
//
// How:
//
//	A seed pair (p, q) shares a cell face iff some part of their bisector
//	plane lies inside the box and is closer to p (and q) than to every
//	other seed. Tessellate tests exactly that: it clips a bisector-plane
//	polygon against the box and against every other seed's bisector
//	half-space, and keeps the pair when the polygon survives. Wall faces
//	are found the same way, clipping each box face rectangle instead.
//
// Complexity: O(m³) polygon clippings for m seeds; the caller restricts
// the seed set to a local neighborhood, so m stays small.
//
// Errors:
//
//   - ErrEmptyBox: container has non-positive extent on some axis.
//   - ErrDegenerateSeeds: two seeds coincide (bisector undefined).
package voronoi
