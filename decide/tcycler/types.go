package tcycler

import "github.com/katalvlaran/turingbeaver/machine"

// Result is the outcome of Find.
type Result struct {
	Found bool

	// Period is the step count between two tape-edge-anchored snapshots
	// that share state and re-extend the tape in the same direction.
	Period int64

	// Preperiod is the exact step count at which the translated cycle
	// begins, refined by binary search.
	Preperiod int64

	// PreperiodUpperBound is the coarse bound from the anchoring loop,
	// before refinement.
	PreperiodUpperBound int64

	// Offset is the signed net head displacement per period.
	Offset int64

	// LastMachine is the machine at the step the period was confirmed,
	// for callers that want to continue simulation from a
	// known-periodic point.
	LastMachine *machine.Machine
}
