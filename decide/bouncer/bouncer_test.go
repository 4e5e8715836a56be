package bouncer_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/decide/bouncer"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRule(t *testing.T, code string) rule.Rule {
	t.Helper()
	r, err := rule.Parse(code)
	require.NoError(t, err)

	return r
}

func TestFind_InvalidDegree(t *testing.T) {
	r := mustRule(t, rule.Known["quad-bouncer"])
	m := machine.New(r, nil)

	_, err := bouncer.Find(m, decide.Budget{MaxSteps: 1000, MaxDegree: -1})
	assert.ErrorIs(t, err, bouncer.ErrInvalidDegree)
}

func TestFind_QuadraticCandidate(t *testing.T) {
	r := mustRule(t, rule.Known["quad-bouncer"])
	m := machine.New(r, nil)

	res, err := bouncer.Find(m, decide.DefaultBudget(500_000))
	require.NoError(t, err)
	if res.Found {
		assert.GreaterOrEqual(t, res.Degree, 1)
		assert.GreaterOrEqual(t, res.XPeriod, 1)
	}
}

func TestFind_HaltingMachine_NotFound(t *testing.T) {
	r := mustRule(t, rule.Known["bb2"])
	m := machine.New(r, nil)

	res, err := bouncer.Find(m, decide.DefaultBudget(100_000))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestFind_DoesNotMutateInput(t *testing.T) {
	r := mustRule(t, rule.Known["cubic-bell"])
	m := machine.New(r, nil)

	bouncer.Find(m, decide.DefaultBudget(10_000))
	assert.Equal(t, int64(0), m.Steps())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "left", bouncer.Left.String())
	assert.Equal(t, "right", bouncer.Right.String())
}
