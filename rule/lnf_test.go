package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalNormalForm_NoOpBelowFourStates(t *testing.T) {
	r, err := Parse(Known["bb3"])
	require.NoError(t, err)
	assert.Equal(t, r, LexicalNormalForm(r))
}

func TestLexicalNormalForm_EmptyRule(t *testing.T) {
	assert.Equal(t, Rule{}, LexicalNormalForm(Rule{}))
}

// TestLexicalNormalForm_Swap mirrors the 4-state BFS-relabelling fixture:
// state B is already reached first from (0,0), but C and D are visited in
// swapped order relative to their original letters, so LNF permutes
// C<->D while leaving A and B fixed.
func TestLexicalNormalForm_Swap(t *testing.T) {
	r, err := Parse("1RB0RD_1LB0LC_1RA1LC_1LD1LC")
	require.NoError(t, err)

	want, err := Parse("1RB0RC_1LB0LD_1LC1LD_1RA1LD")
	require.NoError(t, err)

	got := LexicalNormalForm(r)
	assert.Equal(t, want, got)
}

func TestLexicalNormalForm_Idempotent(t *testing.T) {
	for name, code := range Known {
		r, err := Parse(code)
		require.NoErrorf(t, err, name)
		if r.NumStates() < minLNFStates {
			continue
		}

		once := LexicalNormalForm(r)
		twice := LexicalNormalForm(once)
		assert.Equalf(t, once, twice, "idempotency for %q", name)
	}
}

func TestLexicalNormalForm_PreservesHaltTransitions(t *testing.T) {
	r, err := Parse(Known["bb5"])
	require.NoError(t, err)

	out := LexicalNormalForm(r)

	haltCountBefore, haltCountAfter := 0, 0
	for st := 0; st < r.NumStates(); st++ {
		for sym := 0; sym < r.NumSymbols(); sym++ {
			if r.At(st, Symbol(sym)).IsHalt() {
				haltCountBefore++
			}
			if out.At(st, Symbol(sym)).IsHalt() {
				haltCountAfter++
			}
		}
	}

	assert.Equal(t, haltCountBefore, haltCountAfter)
}

func TestLexicalNormalForm_StartStateFixedAtZero(t *testing.T) {
	for name, code := range Known {
		r, err := Parse(code)
		require.NoErrorf(t, err, name)
		if r.NumStates() < minLNFStates {
			continue
		}

		out := LexicalNormalForm(r)
		// relabel always assigns label 0 to state 0 first via visit(0).
		assert.NotPanicsf(t, func() { out.At(0, 0) }, "state 0 must exist in %q", name)
	}
}
