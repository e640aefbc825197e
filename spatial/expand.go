package spatial

import (
	"sort"

	"github.com/katalvlaran/multimesh/mesh"
)

// ExpandNeighbors gathers interpolation candidates for point p by walking
// the finer level's neighbor graph outward ring by ring, collecting points
// still active at coarser, until at least minCount are found or the walk
// exhausts p's component. When a ring overshoots maxCount, the candidates
// nearest to p win. If the walk finds nothing at all, the hierarchy's
// DeletedPointMap owner of p is returned as the single candidate;
// ErrNoNeighbors if no owner was recorded either.
//
// Deprecated: use Index.NearestTo, which selects neighbors by geometry
// rather than graph topology. ExpandNeighbors remains for callers that
// require exact graph-topology-based selection.
func ExpandNeighbors(h *mesh.Hierarchy, coarser, finer, p, minCount, maxCount int) ([]int, error) {
	if err := h.CheckLevel(coarser); err != nil {
		return nil, err
	}
	if err := h.CheckLevel(finer); err != nil {
		return nil, err
	}
	if p < 0 || p >= h.Len() {
		return nil, mesh.ErrIndexOutOfRange
	}
	if minCount < 1 {
		minCount = 1
	}
	if maxCount < minCount {
		maxCount = minCount
	}

	graph := h.Graph(finer)
	coarse := h.Mask(coarser)
	visited := map[int]struct{}{p: {}}
	frontier := []int{p}
	var found []int

	// Ring growth: each pass expands one graph distance.
	for len(frontier) > 0 && len(found) < minCount {
		var next []int
		for _, u := range frontier {
			for _, v := range graph.Neighbors(u) {
				if _, seen := visited[v]; seen {
					continue
				}
				visited[v] = struct{}{}
				next = append(next, v)
				if coarse.Active(v) {
					found = append(found, v)
				}
			}
		}
		frontier = next
	}

	if len(found) == 0 {
		owner, ok := h.Owner(p)
		if !ok {
			return nil, ErrNoNeighbors
		}
		return []int{owner}, nil
	}

	if len(found) > maxCount {
		geom := h.Geometry()
		at := geom.Position(p)
		sort.Slice(found, func(i, j int) bool {
			di, dj := at.Dist(geom.Position(found[i])), at.Dist(geom.Position(found[j]))
			if di != dj {
				return di < dj
			}
			return found[i] < found[j]
		})
		found = found[:maxCount]
	}
	sort.Ints(found)
	return found, nil
}
