package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnown_AllParseAndHaveAtLeastOneHalt(t *testing.T) {
	for name, code := range Known {
		r, err := Parse(code)
		require.NoErrorf(t, err, "known machine %q failed to parse", name)

		halts := 0
		for st := 0; st < r.NumStates(); st++ {
			for sym := 0; sym < r.NumSymbols(); sym++ {
				if r.At(st, Symbol(sym)).IsHalt() {
					halts++
				}
			}
		}
		assert.Greaterf(t, halts, 0, "known machine %q has no halt transition", name)
	}
}

func TestKnown_BB2ThroughBB5HaveExpectedShape(t *testing.T) {
	sizes := map[string][2]int{
		"bb2": {2, 2},
		"bb3": {3, 2},
		"bb4": {4, 2},
		"bb5": {5, 2},
	}

	for name, want := range sizes {
		r, err := Parse(Known[name])
		require.NoError(t, err)
		assert.Equal(t, want[0], r.NumStates(), name)
		assert.Equal(t, want[1], r.NumSymbols(), name)
	}
}
