// Package cycler detects exact cyclers: machines that eventually enter
// a repeating configuration (state, head position, and touched tape
// contents) with period p and zero net spatial displacement.
//
// Complexity: the outer loop doubles its step bound B by ~1.1x per
// round, so total work to find a period p is
// O(p log(p/InitialBound)). The preperiod refinement is a binary search
// over [0, preperiodUpperBound], each probe costing one Seek plus one
// window comparison, for O(log(preperiodUpperBound)) probes; each probe
// replays up to preperiodUpperBound+p steps from the start.
//
// Errors: Find never returns an error; a machine that halts, or that
// exhausts its budget without a match, is reported through Result.Found
// == false.
package cycler
