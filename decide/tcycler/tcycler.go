package tcycler

import (
	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
)

type direction int

const (
	dirNone direction = iota
	dirLeft
	dirRight
)

// Find searches for a translated cycle starting from m's current
// configuration. m is not mutated.
func Find(m *machine.Machine, budget decide.Budget) Result {
	cur := m.Clone()

	withinBudget := func() bool {
		return budget.MaxSteps <= 0 || cur.Steps() < budget.MaxSteps
	}

	for withinBudget() {
		snap, snapDir, ok := advanceToGrowth(cur, budget.MaxSteps-cur.Steps())
		if !ok {
			return Result{}
		}

		snapHead := snap.Tape().Head()
		snapState := snap.Tape().State()

		for withinBudget() {
			leftBefore := cur.Tape().LeftEdge()
			res := cur.Step()
			if !res.Success {
				return Result{}
			}

			if !res.Grew {
				continue
			}

			growDir := dirRight
			if cur.Tape().LeftEdge() < leftBefore {
				growDir = dirLeft
			}
			if growDir != snapDir {
				// Re-anchor: this extension doesn't match the snapshot's
				// direction, so it cannot be a period boundary against
				// this snapshot; keep scanning from here as the new
				// snapshot.
				snap = cur.Clone()
				snapDir = growDir
				snapHead = cur.Tape().Head()
				snapState = cur.Tape().State()
				continue
			}

			if cur.Tape().State() != snapState {
				continue
			}

			period := cur.Steps() - snap.Steps()
			offset := int64(cur.Tape().Head() - snapHead)

			if windowsMatch(snap, cur, growDir) {
				pre := findExactPreperiod(m, period, offset, snap.Steps())

				return Result{
					Found:               true,
					Period:              period,
					Preperiod:           pre,
					PreperiodUpperBound: snap.Steps(),
					Offset:              offset,
					LastMachine:         cur.Clone(),
				}
			}

			// Not a match; re-anchor on this extension and keep looking.
			snap = cur.Clone()
			snapHead = cur.Tape().Head()
			snapState = cur.Tape().State()
		}
	}

	return Result{}
}

// advanceToGrowth steps cur until its tape grows for the first time,
// returning a snapshot taken immediately before that growth and the
// direction it grew. maxRemaining bounds how many steps are tried.
func advanceToGrowth(cur *machine.Machine, maxRemaining int64) (*machine.Machine, direction, bool) {
	for i := int64(0); maxRemaining <= 0 || i < maxRemaining; i++ {
		before := cur.Clone()
		res := cur.Step()
		if !res.Success {
			return nil, dirNone, false
		}
		if res.Grew {
			dir := dirRight
			if cur.Tape().LeftEdge() < before.Tape().LeftEdge() {
				dir = dirLeft
			}

			return before, dir, true
		}
	}

	return nil, dirNone, false
}

// windowsMatch compares the asymmetric window that matters for a
// translated cycle: from the snapshot's head to the current max_head
// when growing right,
// or from the current min_head to the snapshot's head when growing left.
func windowsMatch(snap, cur *machine.Machine, dir direction) bool {
	var snapData, curData []rule.Symbol
	if dir == dirRight {
		snapData = snap.Tape().Segment(snap.Tape().Head(), snap.Tape().RightEdge()).Data
		curData = cur.Tape().Segment(cur.Tape().Head(), cur.Tape().RightEdge()).Data
	} else {
		snapData = snap.Tape().Segment(snap.Tape().LeftEdge(), snap.Tape().Head()).Data
		curData = cur.Tape().Segment(cur.Tape().LeftEdge(), cur.Tape().Head()).Data
	}

	return sameData(snapData, curData)
}

func sameData(a, b []rule.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// findExactPreperiod binary-searches [0, upperBound] for the step count
// at which the translated cycle of the given period and offset begins,
// mirroring decide/cycler's findExactPreperiod but comparing head-shifted
// configurations instead of identical ones.
func findExactPreperiod(m *machine.Machine, period, offset, upperBound int64) int64 {
	lo, hi := int64(0), upperBound
	if hi <= lo {
		hi = period
	}

	for lo < hi {
		mid := lo + (hi-lo)/2
		if translatedMatch(m, mid, period, offset) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return hi
}

func translatedMatch(m *machine.Machine, s, period, offset int64) bool {
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

	if a.Tape().State() != b.Tape().State() {
		return false
	}
	if int64(b.Tape().Head()-a.Tape().Head()) != offset {
		return false
	}

	dir := dirRight
	if offset < 0 {
		dir = dirLeft
	}

	return windowsMatch(a, b, dir)
}
