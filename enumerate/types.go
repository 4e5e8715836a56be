package enumerate

import "github.com/katalvlaran/turingbeaver/rule"

// Bucket names one stage of the classification pipeline. A candidate
// lands in the first bucket whose decider reports a find; Unclassified
// is the bucket of last resort.
type Bucket string

const (
	CheapTCycler  Bucket = "cheap_tcycler"
	Cycler        Bucket = "cycler"
	MediumTCycler Bucket = "medium_tcycler"
	Bouncer       Bucket = "bouncer"
	Counter       Bucket = "counter"
	HeavyTCycler  Bucket = "heavy_tcycler"
	Unclassified  Bucket = "unclassified"
)

// buckets lists every stage in pipeline order, used to size Summary.Counts
// and to iterate output files in a deterministic order.
var buckets = []Bucket{CheapTCycler, Cycler, MediumTCycler, Bouncer, Counter, HeavyTCycler, Unclassified}

// Candidate is one terminal machine handed to the classification pipeline:
// a fully-filled rule, or a rule whose exploration hit the step budget
// with both the highest symbol and highest state already at their cap.
type Candidate struct {
	Rule rule.Rule

	// Params is the decider-specific parameter string the pipeline stage
	// that classified this candidate produced (e.g. "period=2 preperiod=3
	// offset=0"), empty for Unclassified.
	Params string
}

// Summary is the tally Run returns: counts per bucket, the number of
// branches pruned because they exceeded the step budget without using
// every state or symbol, the number of branches that halted (and so
// were never handed to the classification pipeline), and the total
// number of stack frames visited.
type Summary struct {
	Counts  map[Bucket]int64
	Pruned  int64
	Halted  int64
	Visited int64
}

// newSummary returns a Summary with every bucket present (zero-valued),
// so callers can range over Counts without a presence check.
func newSummary() Summary {
	s := Summary{Counts: make(map[Bucket]int64, len(buckets))}
	for _, b := range buckets {
		s.Counts[b] = 0
	}

	return s
}

// frame is one level of the explicit traversal stack: a partial rule plus
// the canonical-extension bookkeeping needed to compute its children's
// admissible transitions.
type frame struct {
	r             rule.Rule
	highestSymbol rule.Symbol
	highestState  int
}
