package cycler

import (
	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/machine"
)

// Find searches for an exact cycle starting from m's current
// configuration. m is not mutated; Find works on an internal clone.
func Find(m *machine.Machine, budget decide.Budget) Result {
	cur := m.Clone()
	var totalSteps int64
	bound := budget.InitialBound()

	for totalSteps < budget.MaxSteps || budget.MaxSteps <= 0 {
		prev := cur.Clone()
		prevHead := prev.Tape().Head()
		prevState := prev.Tape().State()
		minHead, maxHead := prevHead, prevHead

		for i := int64(1); i <= bound; i++ {
			res := cur.Step()
			if !res.Success {
				return Result{}
			}
			totalSteps++

			h := cur.Tape().Head()
			if h < minHead {
				minHead = h
			}
			if h > maxHead {
				maxHead = h
			}

			if h == prevHead && cur.Tape().State() == prevState {
				segCur := cur.Tape().Segment(minHead, maxHead)
				segPrev := prev.Tape().Segment(minHead, maxHead)
				if segCur.Equal(segPrev) {
					upper := prev.Steps()
					pre := findExactPreperiod(m, i, upper)

					return Result{
						Found:               true,
						Period:              i,
						Preperiod:           pre,
						PreperiodUpperBound: upper,
					}
				}
			}

			if budget.MaxSteps > 0 && totalSteps >= budget.MaxSteps {
				return Result{}
			}
		}

		bound = budget.NextBound(bound)
	}

	return Result{}
}

// findExactPreperiod binary-searches [0, upperBound] for the smallest
// step count s such that stepping period more from s reproduces the
// same windowed configuration.
//
// When upperBound is already 0 (the period was found within the very
// first comparison window), the search widens to [0, period] rather
// than collapsing trivially to 0: a period can legitimately begin after
// a short preperiod even when the outer loop's first snapshot was at
// step 0.
func findExactPreperiod(m *machine.Machine, period, upperBound int64) int64 {
	lo, hi := int64(0), upperBound
	if hi <= lo {
		hi = period
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		if sameConfigAfter(m, mid, period) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return hi
}

// sameConfigAfter reports whether the configuration at step s and the
// configuration at step s+period are identical: same state, same head,
// and identical contents over the union of their touched regions.
func sameConfigAfter(m *machine.Machine, s, period int64) bool {
	a := m.Clone()
	a.Seek(s)
	if a.Halted() {
		return false
	}

	b := a.Clone()
	b.Seek(s + period)
	if b.Halted() {
		return false
	}

	if a.Tape().Head() != b.Tape().Head() || a.Tape().State() != b.Tape().State() {
		return false
	}

	lo := min(a.Tape().LeftEdge(), b.Tape().LeftEdge())
	hi := max(a.Tape().RightEdge(), b.Tape().RightEdge())

	return a.Tape().Segment(lo, hi).Equal(b.Tape().Segment(lo, hi))
}
