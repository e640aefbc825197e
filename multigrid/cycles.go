package multigrid

import "fmt"

// stepper is the shared playback state of a precomputed step sequence.
type stepper struct {
	steps []Step
	pos   int
}

// Next returns the next step in sequence.
func (s *stepper) Next() (Step, bool) {
	if s.pos >= len(s.steps) {
		return Step{}, false
	}
	st := s.steps[s.pos]
	s.pos++
	return st, true
}

// Reset rewinds to the first step.
func (s *stepper) Reset() { s.pos = 0 }

// naiveCycle solves the coarsest level once and interpolates straight up.
type naiveCycle struct{ stepper }

// vCycle descends finest→coarsest and ascends back, Cycles times.
type vCycle struct{ stepper }

// wCycle recurses into the coarser hierarchy twice per level, Cycles times.
type wCycle struct{ stepper }

// solveAt and interpUp are step constructors.
func solveAt(level int) Step { return Step{Action: ActionSolve, Level: level} }

func interpUp(coarser int) Step {
	return Step{Action: ActionInterpolate, Coarser: coarser, Finer: coarser - 1}
}

// NewCycle constructs the cycle for a strategy over levels 0..levels-1,
// driving convergence down to finest. cycles is the V/W repeat count
// (zero means one). Returns ErrUnknownStrategy for any other selector,
// ErrBadConfig for impossible level ranges.
func NewCycle(strategy Strategy, levels, finest, cycles int) (Cycle, error) {
	if levels < 1 || finest < 0 || finest >= levels {
		return nil, fmt.Errorf("%w: levels=%d finest=%d", ErrBadConfig, levels, finest)
	}
	if cycles < 1 {
		cycles = 1
	}
	coarsest := levels - 1

	switch strategy {
	case Naive:
		steps := []Step{solveAt(coarsest)}
		for l := coarsest; l > finest; l-- {
			steps = append(steps, interpUp(l), solveAt(l-1))
		}
		return &naiveCycle{stepper{steps: steps}}, nil

	case VCycle:
		var steps []Step
		for c := 0; c < cycles; c++ {
			for l := finest; l <= coarsest; l++ {
				steps = append(steps, solveAt(l))
			}
			for l := coarsest; l > finest; l-- {
				steps = append(steps, interpUp(l), solveAt(l-1))
			}
		}
		return &vCycle{stepper{steps: steps}}, nil

	case WCycle:
		var steps []Step
		var descend func(level int)
		descend = func(level int) {
			steps = append(steps, solveAt(level))
			if level == coarsest {
				return
			}
			// γ=2: visit the coarser hierarchy twice before returning.
			for visit := 0; visit < 2; visit++ {
				descend(level + 1)
				steps = append(steps, interpUp(level+1), solveAt(level))
			}
		}
		for c := 0; c < cycles; c++ {
			descend(finest)
		}
		return &wCycle{stepper{steps: steps}}, nil

	default:
		return nil, fmt.Errorf("%w: selector %d", ErrUnknownStrategy, int(strategy))
	}
}
