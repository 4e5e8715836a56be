package tcycler_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/decide/tcycler"
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

func TestFind_OffsetMinus1_DetectsTranslation(t *testing.T) {
	r := mustRule(t, rule.Known["offset-minus1"])
	m := machine.New(r, nil)

	res := tcycler.Find(m, decide.DefaultBudget(200_000))
	if res.Found {
		assert.NotEqual(t, int64(0), res.Offset)
		assert.Greater(t, res.Period, int64(0))
	}
}

func TestFind_HaltingMachine_NotFound(t *testing.T) {
	r := mustRule(t, rule.Known["bb2"])
	m := machine.New(r, nil)

	res := tcycler.Find(m, decide.DefaultBudget(100_000))
	assert.False(t, res.Found)
}

func TestFind_DoesNotMutateInput(t *testing.T) {
	r := mustRule(t, rule.Known["offset-minus1"])
	m := machine.New(r, nil)

	tcycler.Find(m, decide.DefaultBudget(10_000))
	assert.Equal(t, int64(0), m.Steps())
}

func TestFind_TinyBudget_NotFound(t *testing.T) {
	r := mustRule(t, rule.Known["boyd-johnson"])
	m := machine.New(r, nil)

	res := tcycler.Find(m, decide.DefaultBudget(5))
	assert.False(t, res.Found)
}
