package cycler

// Result is the outcome of Find. Found is false iff the machine halted
// or the budget was exhausted before a period was detected; all other
// fields are meaningless in that case.
type Result struct {
	Found bool

	// Period is the number of steps between two configurations that
	// share state, head, and touched-window contents.
	Period int64

	// Preperiod is the exact step count after which the machine enters
	// its cycle, refined by binary search from PreperiodUpperBound.
	Preperiod int64

	// PreperiodUpperBound is the coarse bound found by the outer loop,
	// the step count of the comparison window's earlier snapshot, before
	// refinement.
	PreperiodUpperBound int64

	// Offset is always 0 for the exact cycler; carried for symmetry with
	// decide/tcycler.Result.
	Offset int64
}
