package bouncer

import (
	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/machine"
)

// Find runs the finite-difference bouncer/bell algorithm starting from
// m's current configuration. m is not mutated.
func Find(m *machine.Machine, budget decide.Budget) (Result, error) {
	if budget.MaxDegree < 0 {
		return Result{}, ErrInvalidDegree
	}

	degree := budget.Degree()
	xPeriod := budget.XPeriod()
	confidence := budget.Confidence()
	window := degree + confidence

	cur := m.Clone()
	var left, right []record
	var prevLeftEdge, prevRightEdge = cur.Tape().LeftEdge(), cur.Tape().RightEdge()

	for budget.MaxSteps <= 0 || cur.Steps() < budget.MaxSteps {
		res := cur.Step()
		if !res.Success {
			return Result{}, nil
		}
		if !res.Grew {
			continue
		}

		if cur.Tape().LeftEdge() < prevLeftEdge {
			prevLeftEdge = cur.Tape().LeftEdge()
			left = append(left, record{step: cur.Steps(), state: cur.Tape().State()})
			if r, ok := detect(left, Left, degree, xPeriod, window); ok {
				return r, nil
			}
		} else if cur.Tape().RightEdge() > prevRightEdge {
			prevRightEdge = cur.Tape().RightEdge()
			right = append(right, record{step: cur.Steps(), state: cur.Tape().State()})
			if r, ok := detect(right, Right, degree, xPeriod, window); ok {
				return r, nil
			}
		}
	}

	return Result{}, nil
}

// detect looks for a constant positive finite difference among one
// side's record list, run incrementally after each new record is
// appended.
func detect(records []record, side Side, maxDegree, maxXPeriod, window int) (Result, bool) {
	if window < 2 {
		return Result{}, false
	}

	pCap := maxXPeriod
	if bound := (len(records) - 1) / (window - 1); bound < pCap {
		pCap = bound
	}

	for p := 1; p <= pCap; p++ {
		need := (window-1)*p + 1
		if need > len(records) {
			continue
		}

		seq := make([]record, window)
		for i := 0; i < window; i++ {
			seq[i] = records[len(records)-1-(window-1-i)*p]
		}

		if !sameState(seq) {
			continue
		}

		vals := make([]int64, window)
		for i, r := range seq {
			vals[i] = r.step
		}

		if degree, ok := constantPositiveDifference(vals, maxDegree); ok {
			return Result{
				Found:   true,
				Degree:  degree,
				XPeriod: p,
				Side:    side,
				Start:   seq[0].step,
			}, true
		}
	}

	return Result{}, false
}

func sameState(seq []record) bool {
	st := seq[0].state
	for _, r := range seq[1:] {
		if r.state != st {
			return false
		}
	}

	return true
}

// constantPositiveDifference applies successive finite differences to
// vals, up to maxDegree times, and reports the degree at which the
// result is constant (length >= 2) and positive.
func constantPositiveDifference(vals []int64, maxDegree int) (int, bool) {
	cur := vals
	for d := 1; d <= maxDegree; d++ {
		cur = diff(cur)
		if len(cur) < 2 {
			return 0, false
		}
		if allEqual(cur) && cur[0] > 0 {
			return d, true
		}
	}

	return 0, false
}

func diff(a []int64) []int64 {
	out := make([]int64, len(a)-1)
	for i := range out {
		out[i] = a[i+1] - a[i]
	}

	return out
}

func allEqual(a []int64) bool {
	for _, v := range a[1:] {
		if v != a[0] {
			return false
		}
	}

	return true
}
