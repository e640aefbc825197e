package spatial_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multimesh/mesh"
	"github.com/katalvlaran/multimesh/spatial"
)

// bruteNearest is the reference k-NN over the active points.
func bruteNearest(geom mesh.Geometry, mask *mesh.LevelMask, q mesh.Vec3, k int) []int {
	ids := mask.ActivePoints()
	sort.Slice(ids, func(i, j int) bool {
		di, dj := q.Dist(geom.Position(ids[i])), q.Dist(geom.Position(ids[j]))
		if di != dj {
			return di < dj
		}
		return ids[i] < ids[j]
	})
	if k > len(ids) {
		k = len(ids)
	}
	return ids[:k]
}

// TestIndex_AgreesWithBruteForce cross-checks the kd-tree against a linear
// scan on a pseudo-random cloud with some points masked out.
func TestIndex_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 200
	positions := make([]mesh.Vec3, n)
	for i := range positions {
		positions[i] = mesh.Vec3{X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10}
	}
	geom := mesh.NewPointCloud(positions, nil)
	mask := mesh.NewLevelMask(n)
	for p := 0; p < n; p += 3 {
		require.NoError(t, mask.Deactivate(p))
	}

	ix := spatial.NewIndex(geom, mask)
	require.Equal(t, mask.ActiveCount(), ix.Len())

	for trial := 0; trial < 25; trial++ {
		q := mesh.Vec3{X: rng.Float64() * 10, Y: rng.Float64() * 10, Z: rng.Float64() * 10}
		got := ix.NearestTo(q, 7)
		want := bruteNearest(geom, mask, q, 7)
		require.Equal(t, want, got, "query %+v", q)
	}
}

// TestIndex_Degenerate covers short clouds and non-positive k.
func TestIndex_Degenerate(t *testing.T) {
	geom := mesh.NewPointCloud([]mesh.Vec3{{X: 1}, {X: 2}}, nil)
	ix := spatial.NewIndex(geom, mesh.NewLevelMask(2))
	require.Nil(t, ix.NearestTo(mesh.Vec3{}, 0))
	require.Equal(t, []int{0, 1}, ix.NearestTo(mesh.Vec3{}, 5))
}

// TestSymmetry_NeighborCount pins the per-mode k.
func TestSymmetry_NeighborCount(t *testing.T) {
	require.Equal(t, spatial.NearestFull3D, spatial.Full3D.NeighborCount())
	require.Equal(t, spatial.NearestSpherical, spatial.Spherical1D.NeighborCount())
}

//----------------------------------------------------------------------------//
// Legacy graph-walk expansion
//----------------------------------------------------------------------------//

// chainHierarchy builds a 1D chain hierarchy with odd points removed at
// level 1 and owners recorded.
func chainHierarchy(t *testing.T, n int) *mesh.Hierarchy {
	t.Helper()
	positions := make([]mesh.Vec3, n)
	for i := range positions {
		positions[i] = mesh.Vec3{X: float64(i)}
	}
	g := mesh.NewNeighborGraph(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	h, err := mesh.NewHierarchy(mesh.NewPointCloud(positions, nil), g)
	require.NoError(t, err)
	require.Equal(t, 1, h.PushLevel())
	for p := 1; p < n; p += 2 {
		require.NoError(t, h.Deactivate(1, p))
		require.NoError(t, h.SetOwner(p, p-1))
	}
	return h
}

// TestExpandNeighbors_RingGrowth walks a chain and prunes by distance.
func TestExpandNeighbors_RingGrowth(t *testing.T) {
	h := chainHierarchy(t, 9)
	// Point 3 is inactive at level 1; its coarse-active ring neighbors
	// along the chain are 2 and 4, then 0 and 6 further out.
	got, err := spatial.ExpandNeighbors(h, 1, 0, 3, 2, 4)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, got)

	// Demanding more candidates grows the ring.
	got, err = spatial.ExpandNeighbors(h, 1, 0, 3, 4, 8)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 6}, got)
}

// TestExpandNeighbors_OwnerFallback covers the DeletedPointMap path: a
// point whose graph component holds no coarse-active point resolves to
// exactly the owner recorded at deletion time.
func TestExpandNeighbors_OwnerFallback(t *testing.T) {
	positions := []mesh.Vec3{{X: 0}, {X: 1}, {X: 5}}
	g := mesh.NewNeighborGraph(3)
	require.NoError(t, g.AddEdge(0, 1)) // point 2 is isolated from 0-1
	h, err := mesh.NewHierarchy(mesh.NewPointCloud(positions, nil), g)
	require.NoError(t, err)
	require.Equal(t, 1, h.PushLevel())
	require.NoError(t, h.Deactivate(1, 0))
	require.NoError(t, h.Deactivate(1, 1))
	require.NoError(t, h.SetOwner(1, 2))

	got, err := spatial.ExpandNeighbors(h, 1, 0, 1, 3, 6)
	require.NoError(t, err)
	require.Equal(t, []int{2}, got)

	// Point 0 has no owner recorded: the walk must fail loudly.
	_, err = spatial.ExpandNeighbors(h, 1, 0, 0, 3, 6)
	require.True(t, errors.Is(err, spatial.ErrNoNeighbors), "got %v", err)
}
