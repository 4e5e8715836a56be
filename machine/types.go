package machine

import (
	"github.com/katalvlaran/turingbeaver/internal/applog"
	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/katalvlaran/turingbeaver/tape"
)

// StepResult reports the outcome of one Machine.Step call.
type StepResult struct {
	// Success is false iff the machine was already halted: stepping a
	// halted machine is a no-op, not an error.
	Success bool
	// Grew reports whether the tape's touched region grew by this step.
	Grew bool
}

// Machine couples a Rule with a Tape and a step counter. The zero value
// is not usable; construct with New.
type Machine struct {
	r     rule.Rule
	tp    *tape.Tape
	steps int64
	log   *applog.Logger
}

// New returns a Machine with a fresh blank tape, state 0, and zero steps
// taken. log may be nil, in which case Seek's backward-replay warning is
// discarded.
func New(r rule.Rule, log *applog.Logger) *Machine {
	if log == nil {
		log = applog.Discard()
	}

	return &Machine{r: r, tp: tape.New(0), log: log}
}

// Rule returns the machine's transition table.
func (m *Machine) Rule() rule.Rule { return m.r }

// Tape returns the machine's current tape. Callers must not mutate it
// directly; use Step/Seek/Reset.
func (m *Machine) Tape() *tape.Tape { return m.tp }

// Steps returns the number of steps taken since the last Reset.
func (m *Machine) Steps() int64 { return m.steps }

// Clone returns a deep copy: a new Tape, the same immutable Rule.
func (m *Machine) Clone() *Machine {
	return &Machine{r: m.r, tp: m.tp.Clone(), steps: m.steps, log: m.log}
}
