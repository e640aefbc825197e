package voronoi

import (
	"sort"

	"github.com/katalvlaran/multimesh/mesh"
)

// Tessellate computes the bounded Voronoi tessellation of seeds inside box
// and returns, per seed, the sorted IDs of the seeds sharing a cell face
// with it. Container-wall faces are reported as negative IDs: wall w
// (w = 0..5 in x-min, x-max, y-min, y-max, z-min, z-max order) appears as
// -(w+1). Returns ErrEmptyBox or ErrDegenerateSeeds on invalid input.
//
// Complexity: O(m³) for m seeds; callers keep the seed set local.
func Tessellate(seeds []mesh.Vec3, box Box) ([][]int, error) {
	if !box.valid() {
		return nil, ErrEmptyBox
	}
	m := len(seeds)
	diag := box.Diagonal()
	eps := geomEps * diag
	minArea := sliverFrac * diag * diag

	// Coinciding seeds have no bisector; reject up front.
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if seeds[i].Dist(seeds[j]) <= eps {
				return nil, ErrDegenerateSeeds
			}
		}
	}

	walls := boxHalfSpaces(box)
	neighbors := make([][]int, m)

	// shared reports whether some part of poly lies in seed i's cell,
	// i.e. survives every other seed's bisector half-space.
	shared := func(i, skip int, poly []mesh.Vec3) bool {
		for k := 0; k < m && len(poly) > 0; k++ {
			if k == i || k == skip {
				continue
			}
			poly = clip(poly, bisectorHalfSpace(seeds[i], seeds[k]), eps)
		}
		return area(poly) > minArea
	}

	// Seed-pair faces: a face of i against j lies on their bisector plane.
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			mid := seeds[i].Add(seeds[j]).Scale(0.5)
			u := seeds[j].Sub(seeds[i])
			u = u.Scale(1 / u.Norm())
			poly := planePolygon(mid, u, 2*diag)
			for _, h := range walls {
				poly = clip(poly, h, eps)
			}
			if shared(i, j, poly) {
				neighbors[i] = append(neighbors[i], j)
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}

	// Wall faces: the part of wall w inside seed i's cell.
	for i := 0; i < m; i++ {
		for w := 0; w < 6; w++ {
			if shared(i, -1, wallPolygon(box, w)) {
				neighbors[i] = append(neighbors[i], -(w + 1))
			}
		}
		sort.Ints(neighbors[i])
	}
	return neighbors, nil
}
