package config

import "fmt"

// Bucket holds the enumerator's tunables for one (N, S) class of machine:
// a step budget and the print-filter thresholds that decide which
// classified candidates are worth writing out. enumerate.Run reads only
// the thresholds; MaxSteps is loaded and returned by For but Run does not
// use it (Run's step budget comes from enumerate.WithMaxSteps).
type Bucket struct {
	MaxSteps int64 `mapstructure:"maxSteps" yaml:"maxSteps"`

	// MinPeriod/MinPreperiod/MinDegree suppress candidates whose decided
	// result is too small to be interesting (e.g. every trivial period-1
	// cycler found by the cheap tcycler stage).
	MinPeriod    int64 `mapstructure:"minPeriod" yaml:"minPeriod"`
	MinPreperiod int64 `mapstructure:"minPreperiod" yaml:"minPreperiod"`
	MinDegree    int   `mapstructure:"minDegree" yaml:"minDegree"`
}

// key identifies a Bucket by state/symbol count. Unexported: callers reach
// buckets through PrintFilterTable.For, never by constructing a key.
type key struct {
	N, S int
}

func (k key) String() string { return fmt.Sprintf("%dx%d", k.N, k.S) }

// PrintFilterTable maps (N, S) pairs to their Bucket. A table with no entry
// for a given pair falls back to DefaultBucket.
type PrintFilterTable struct {
	buckets map[key]Bucket
}

// DefaultBucket is returned by For when no (N, S)-specific entry exists.
var DefaultBucket = Bucket{
	MaxSteps:     10_000_000,
	MinPeriod:    0,
	MinPreperiod: 0,
	MinDegree:    0,
}

// For returns the Bucket configured for (n, s), or DefaultBucket if none
// was loaded.
func (t *PrintFilterTable) For(n, s int) Bucket {
	if t == nil || t.buckets == nil {
		return DefaultBucket
	}
	if b, ok := t.buckets[key{N: n, S: s}]; ok {
		return b
	}

	return DefaultBucket
}

// rawFile is the YAML shape Load expects:
//
//	buckets:
//	  - n: 2
//	    s: 2
//	    maxSteps: 1000
//	    minPeriod: 1
type rawFile struct {
	Buckets []rawBucket `mapstructure:"buckets" yaml:"buckets"`
}

type rawBucket struct {
	N            int   `mapstructure:"n" yaml:"n"`
	S            int   `mapstructure:"s" yaml:"s"`
	MaxSteps     int64 `mapstructure:"maxSteps" yaml:"maxSteps"`
	MinPeriod    int64 `mapstructure:"minPeriod" yaml:"minPeriod"`
	MinPreperiod int64 `mapstructure:"minPreperiod" yaml:"minPreperiod"`
	MinDegree    int   `mapstructure:"minDegree" yaml:"minDegree"`
}
