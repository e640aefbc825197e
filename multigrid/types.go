// Package multigrid types, strategy selectors and sentinel errors.
package multigrid

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for multigrid configuration.
var (
	// ErrUnknownStrategy indicates an unrecognized strategy selector.
	ErrUnknownStrategy = errors.New("multigrid: unknown strategy")

	// ErrBadConfig indicates an out-of-range configuration value.
	ErrBadConfig = errors.New("multigrid: invalid configuration")
)

// Strategy selects the multigrid cycle shape. The numeric values are the
// wire-stable selector IDs accepted by Setup.
type Strategy int

const (
	// Naive solves the coarsest level and walks straight up to the finest.
	Naive Strategy = 1

	// VCycle descends finest→coarsest, then ascends back, per cycle.
	VCycle Strategy = 2

	// WCycle visits the coarser hierarchy twice per level, per cycle.
	WCycle Strategy = 3
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case VCycle:
		return "v-cycle"
	case WCycle:
		return "w-cycle"
	default:
		return "unknown"
	}
}

// Action is the kind of a cycle step.
type Action int

const (
	// ActionSolve runs the external solver at Step.Level.
	ActionSolve Action = iota

	// ActionInterpolate reconstructs fields on the diff points between
	// Step.Coarser and Step.Finer.
	ActionInterpolate
)

// Step is one unit of work issued by a Cycle.
type Step struct {
	// Action selects what to do.
	Action Action

	// Level is the solve level (ActionSolve only).
	Level int

	// Coarser and Finer are the interpolation level pair
	// (ActionInterpolate only).
	Coarser, Finer int
}

// Cycle issues the (level, action) sequence of one multigrid strategy.
// Implementations are not safe for concurrent use.
type Cycle interface {
	// Next returns the next step, or ok == false when the cycle is done.
	Next() (step Step, ok bool)

	// Reset rewinds the cycle to its first step.
	Reset()
}

// Solver is the opaque external transport solver. Solve must complete
// before any dependent level transition; the core imposes no ordering on
// its internals.
type Solver interface {
	Solve(ctx context.Context, level, maxIterations int) error
}

// Config parametrizes Setup.
type Config struct {
	// MaxCoarsenLevel is the coarsest level to build (≥ 0).
	MaxCoarsenLevel int

	// Tolerance is the base similarity tolerance in (0, 1); level L
	// coarsens with EffectiveTolerance(Tolerance, L).
	Tolerance float64

	// Strategy is the cycle selector (Naive, VCycle, WCycle).
	Strategy Strategy

	// MaxIterations bounds each external solve.
	MaxIterations int

	// FinestLevel is the finest level the cycle must reach (usually 0).
	FinestLevel int

	// Cycles is the V/W repeat count; ignored by Naive. Zero means 1.
	Cycles int
}

// EffectiveTolerance scales the base tolerance for a level:
// 1 − (1−tol)^level. Compounding geometrically keeps shallow levels
// conservative while letting deeper levels coarsen harder; it is strictly
// increasing in level for tol ∈ (0, 1).
func EffectiveTolerance(tol float64, level int) float64 {
	return 1 - math.Pow(1-tol, float64(level))
}
