package machine

import (
	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/katalvlaran/turingbeaver/tape"
)

// Halted reports whether the machine's current state is outside
// [0, N) — i.e. the tape carries a halting state.
func (m *Machine) Halted() bool {
	st := m.tp.State()

	return st < 0 || st >= m.r.NumStates()
}

// Peek returns the transition the machine would fire next: rule[state,
// symbol-under-head]. It panics if the machine is already halted; callers
// must check Halted first (programmer-error contract, matching rule.At).
func (m *Machine) Peek() rule.Transition {
	return m.r.At(m.tp.State(), m.tp.Peek())
}

// Step fires the transition under the head and advances one step.
// Success is false without side effect if the machine was already
// halted.
func (m *Machine) Step() StepResult {
	if m.Halted() {
		return StepResult{Success: false}
	}

	tr := m.Peek()
	grew := m.tp.Step(tr)
	m.steps++

	return StepResult{Success: true, Grew: grew}
}

// Seek advances the machine to exactly n total steps taken. If n is
// already behind the current step count, Seek resets to a blank tape at
// state 0 and replays forward — an O(n) path logged at warn level, since
// the caller asked for something outside the forward-only fast path.
// Seek stops early, without error, if the machine halts before reaching
// n.
func (m *Machine) Seek(n int64) {
	if n < m.steps {
		m.log.Warn("machine: seeking backward requires a full replay from step 0",
			"from", m.steps, "to", n)
		m.Reset(nil)
	}

	for m.steps < n {
		if res := m.Step(); !res.Success {
			return
		}
	}
}

// Reset rewinds the machine to step 0, keeping the rule. A nil onto
// resets onto a fresh blank tape at state 0; a non-nil onto is taken by
// the machine directly (not cloned), letting deciders reset onto a
// specific snapshot without an extra copy.
func (m *Machine) Reset(onto *tape.Tape) {
	if onto == nil {
		onto = tape.New(0)
	}
	m.tp = onto
	m.steps = 0
}
