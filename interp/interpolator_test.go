package interp_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multimesh/interp"
	"github.com/katalvlaran/multimesh/mesh"
	"github.com/katalvlaran/multimesh/spatial"
)

// testPops is a slice-backed LinePopulations with one species.
type testPops struct {
	levels int
	abund  []float64
	pop    [][]float64 // pop[p][l]
}

func newTestPops(n, levels int) *testPops {
	tp := &testPops{levels: levels, abund: make([]float64, n), pop: make([][]float64, n)}
	for p := range tp.pop {
		tp.abund[p] = 1
		tp.pop[p] = make([]float64, levels)
	}
	return tp
}

func (tp *testPops) Species() int { return 1 }

func (tp *testPops) Levels(int) int { return tp.levels }

func (tp *testPops) Population(_, p, l int) float64 { return tp.pop[p][l] }

func (tp *testPops) SetPopulation(_, p, l int, v float64) { tp.pop[p][l] = v }

func (tp *testPops) AbundanceFactor(_, p int) float64 { return tp.abund[p] }

// gridHierarchy builds a planar 4×4 grid with the given points deactivated
// on level 1.
func gridHierarchy(t *testing.T, removed ...int) *mesh.Hierarchy {
	t.Helper()
	const n = 4
	positions := make([]mesh.Vec3, 0, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			positions = append(positions, mesh.Vec3{X: float64(x), Y: float64(y)})
		}
	}
	g := mesh.NewNeighborGraph(n * n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if x+1 < n {
				require.NoError(t, g.AddEdge(x*n+y, (x+1)*n+y))
			}
			if y+1 < n {
				require.NoError(t, g.AddEdge(x*n+y, x*n+y+1))
			}
		}
	}
	h, err := mesh.NewHierarchy(mesh.NewPointCloud(positions, nil), g)
	require.NoError(t, err)
	require.Equal(t, 1, h.PushLevel())
	for _, p := range removed {
		require.NoError(t, h.Deactivate(1, p))
	}
	return h
}

// TestNew_Validation rejects a nil hierarchy.
func TestNew_Validation(t *testing.T) {
	_, err := interp.New(nil)
	require.True(t, errors.Is(err, interp.ErrNilCollaborator), "got %v", err)
}

// TestInterpolateField_NoOp leaves fields untouched when there is nothing
// to do: identical masks, or coarser == 0.
func TestInterpolateField_NoOp(t *testing.T) {
	h := gridHierarchy(t) // level 1 == level 0, no diff points
	it, err := interp.New(h)
	require.NoError(t, err)

	field := make([]float64, h.Len())
	for i := range field {
		field[i] = float64(i) * 1.5
	}
	want := append([]float64(nil), field...)

	require.NoError(t, it.InterpolateField(context.Background(), 1, 0, field))
	require.Equal(t, want, field, "identical masks must be a no-op")

	require.NoError(t, it.InterpolateField(context.Background(), 0, 0, field))
	require.Equal(t, want, field, "coarser == 0 must be a no-op")

	require.True(t, errors.Is(it.InterpolateField(context.Background(), 1, 0, field[:3]), interp.ErrFieldSize))
}

// TestInterpolateField_ExactAtNode exploits RBF exactness: a query placed
// exactly on a data site reproduces that site's value.
func TestInterpolateField_ExactAtNode(t *testing.T) {
	// Point 5 duplicates point 6's position, then is removed at level 1.
	const n = 4
	positions := make([]mesh.Vec3, 0, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			positions = append(positions, mesh.Vec3{X: float64(x), Y: float64(y)})
		}
	}
	positions[5] = positions[6]
	g := mesh.NewNeighborGraph(n * n)
	for p := 1; p < n*n; p++ {
		require.NoError(t, g.AddEdge(p-1, p))
	}
	h, err := mesh.NewHierarchy(mesh.NewPointCloud(positions, nil), g)
	require.NoError(t, err)
	require.Equal(t, 1, h.PushLevel())
	require.NoError(t, h.Deactivate(1, 5))

	field := make([]float64, h.Len())
	for p := range field {
		pos := positions[p]
		field[p] = 3*pos.X - 2*pos.Y + 7
	}
	field[5] = math.NaN() // must be overwritten, and only this entry

	it, err := interp.New(h, interp.WithSymmetry(spatial.Spherical1D))
	require.NoError(t, err)
	require.NoError(t, it.InterpolateField(context.Background(), 1, 0, field))

	wantAt6 := 3*positions[6].X - 2*positions[6].Y + 7
	require.InDelta(t, wantAt6, field[5], 1e-9, "coincident query must reproduce the node value")
}

// TestInterpolateLevels_Renormalization checks the fractional semantics:
// written populations divide by the point's abundance into fractions
// summing to exactly 1.
func TestInterpolateLevels_Renormalization(t *testing.T) {
	h := gridHierarchy(t, 5, 9)
	pops := newTestPops(h.Len(), 3)
	for p := 0; p < h.Len(); p++ {
		pops.abund[p] = 2 + float64(p%3)
		// Smooth positive fractions scaled by the abundance factor.
		x := h.Geometry().Position(p).X
		f := []float64{0.5 + 0.02*x, 0.3 - 0.01*x, 0.2 - 0.01*x}
		for l, v := range f {
			pops.pop[p][l] = v * pops.abund[p]
		}
	}

	it, err := interp.New(h, interp.WithParallelism(4))
	require.NoError(t, err)
	require.NoError(t, it.InterpolateLevels(context.Background(), 1, 0, pops))

	for _, p := range []int{5, 9} {
		var sum float64
		for l := 0; l < 3; l++ {
			frac := pops.pop[p][l] / pops.abund[p]
			require.GreaterOrEqual(t, frac, 0.0)
			sum += frac
		}
		require.InDelta(t, 1.0, sum, 1e-9, "fractions at diff point %d", p)
	}
}

// TestInterpolateLevels_ZeroSumFatal drives every fraction negative so the
// clamped sum vanishes: the pass must fail with ErrZeroFractionSum.
func TestInterpolateLevels_ZeroSumFatal(t *testing.T) {
	h := gridHierarchy(t, 5)
	pops := newTestPops(h.Len(), 2)
	for p := 0; p < h.Len(); p++ {
		pops.pop[p][0] = -1
		pops.pop[p][1] = -2
	}
	it, err := interp.New(h)
	require.NoError(t, err)
	err = it.InterpolateLevels(context.Background(), 1, 0, pops)
	require.True(t, errors.Is(err, interp.ErrZeroFractionSum), "got %v", err)
}

// TestInterpolateLevels_NonFinite propagates NaN poisoning as a fatal error.
func TestInterpolateLevels_NonFinite(t *testing.T) {
	h := gridHierarchy(t, 5)
	pops := newTestPops(h.Len(), 1)
	for p := 0; p < h.Len(); p++ {
		pops.pop[p][0] = 1
	}
	pops.abund[6] = 0 // neighbor of the diff point: division yields Inf
	it, err := interp.New(h)
	require.NoError(t, err)
	err = it.InterpolateLevels(context.Background(), 1, 0, pops)
	require.True(t, errors.Is(err, interp.ErrNonFinite), "got %v", err)
}
