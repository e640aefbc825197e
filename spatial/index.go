package spatial

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/multimesh/mesh"
)

// indexedPoint is a kd-tree node carrying its original point index.
type indexedPoint struct {
	pos mesh.Vec3
	id  int
}

// coord returns the d-th coordinate of the point.
func (p indexedPoint) coord(d kdtree.Dim) float64 {
	switch d {
	case 0:
		return p.pos.X
	case 1:
		return p.pos.Y
	default:
		return p.pos.Z
	}
}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	return p.coord(d) - q.coord(d)
}

// Dims reports the number of spatial dimensions.
func (p indexedPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance to c.
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	d := p.pos.Sub(q.pos)
	return d.Dot(d)
}

// indexedPoints implements kdtree.Interface over a point slice.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }

func (p indexedPoints) Len() int { return len(p) }

func (p indexedPoints) Pivot(d kdtree.Dim) int { return plane{points: p, dim: d}.Pivot() }

func (p indexedPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is the kdtree.SortSlicer over one splitting dimension.
type plane struct {
	points indexedPoints
	dim    kdtree.Dim
}

var _ kdtree.SortSlicer = plane{}

func (p plane) Len() int { return len(p.points) }

func (p plane) Less(i, j int) bool { return p.points[i].coord(p.dim) < p.points[j].coord(p.dim) }

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }

// Index is a read-only nearest-neighbor index over the points active at
// one hierarchy level. Safe for concurrent queries after construction.
type Index struct {
	tree *kdtree.Tree
	size int
}

// NewIndex builds an Index from the positions of the points active in mask.
func NewIndex(geom mesh.Geometry, mask *mesh.LevelMask) *Index {
	active := mask.ActivePoints()
	pts := make(indexedPoints, 0, len(active))
	for _, p := range active {
		pts = append(pts, indexedPoint{pos: geom.Position(p), id: p})
	}
	return &Index{tree: kdtree.New(pts, false), size: len(pts)}
}

// Len reports the number of indexed points.
func (ix *Index) Len() int { return ix.size }

// NearestTo returns the indices of the k active points closest to q, in
// ascending distance order. Fewer than k points are returned when the
// level holds fewer active points.
func (ix *Index) NearestTo(q mesh.Vec3, k int) []int {
	if k <= 0 || ix.size == 0 {
		return nil
	}
	if k > ix.size {
		k = ix.size
	}
	keep := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keep, indexedPoint{pos: q})
	type hit struct {
		id   int
		dist float64
	}
	hits := make([]hit, 0, k)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue
		}
		hits = append(hits, hit{id: cd.Comparable.(indexedPoint).id, dist: cd.Dist})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].id < hits[j].id
	})
	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}
