package decide_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBudget_Fields(t *testing.T) {
	b := decide.DefaultBudget(1_000_000)
	assert.Equal(t, int64(1_000_000), b.MaxSteps)
	assert.Equal(t, int64(100), b.InitialBound())
	assert.Equal(t, 8, b.XPeriod())
	assert.Equal(t, 4, b.Degree())
	assert.Equal(t, 3, b.Confidence())
}

func TestBudget_ZeroValueFallsBackToDefaults(t *testing.T) {
	var b decide.Budget
	assert.Equal(t, int64(100), b.InitialBound())
	assert.Equal(t, 8, b.XPeriod())
	assert.Equal(t, 4, b.Degree())
	assert.Equal(t, 3, b.Confidence())
}

func TestBudget_NextBound_StrictlyIncreases(t *testing.T) {
	b := decide.DefaultBudget(0)
	cur := int64(1)
	for i := 0; i < 50; i++ {
		next := b.NextBound(cur)
		assert.Greater(t, next, cur)
		cur = next
	}
}
