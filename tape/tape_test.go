package tape_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/katalvlaran/turingbeaver/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SingleBlankCell(t *testing.T) {
	tp := tape.New(0)
	assert.Equal(t, 0, tp.Head())
	assert.Equal(t, 0, tp.LeftEdge())
	assert.Equal(t, 0, tp.RightEdge())
	assert.True(t, tp.Blank())
	assert.Equal(t, rule.Symbol(0), tp.Peek())
}

func TestStep_GrowsRightOnce(t *testing.T) {
	tp := tape.New(0)
	grew := tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})
	assert.True(t, grew)
	assert.Equal(t, 1, tp.Head())
	assert.Equal(t, 1, tp.RightEdge())
	assert.Equal(t, rule.Symbol(0), tp.Peek())
}

func TestStep_GrowsLeftOnce(t *testing.T) {
	tp := tape.New(0)
	grew := tp.Step(rule.Transition{Symbol: 1, Dir: rule.Left, TargetState: 0})
	assert.True(t, grew)
	assert.Equal(t, -1, tp.Head())
	assert.Equal(t, -1, tp.LeftEdge())
	assert.Equal(t, rule.Symbol(0), tp.Peek())
}

func TestStep_NoGrowWithinTouchedRegion(t *testing.T) {
	tp := tape.New(0)
	require.True(t, tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0}))
	grew := tp.Step(rule.Transition{Symbol: 1, Dir: rule.Left, TargetState: 0})
	assert.False(t, grew)
	assert.Equal(t, 0, tp.Head())
}

func TestStep_WritesSymbolAndState(t *testing.T) {
	tp := tape.New(0)
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 2})
	assert.Equal(t, 2, tp.State())

	// Move left to read back the cell just written at coordinate 0.
	tp.Step(rule.Transition{Symbol: 0, Dir: rule.Left, TargetState: 0})
	seg := tp.Segment(0, 0)
	assert.Equal(t, []rule.Symbol{1}, seg.Data)
}

func TestStep_RepeatedLeftGrowth_KeepsHeadStable(t *testing.T) {
	tp := tape.New(0)
	for i := 0; i < 20; i++ {
		tp.Step(rule.Transition{Symbol: 1, Dir: rule.Left, TargetState: 0})
	}
	assert.Equal(t, -20, tp.Head())
	assert.Equal(t, -20, tp.LeftEdge())
	assert.Equal(t, rule.Symbol(0), tp.Peek())

	seg := tp.Segment(-20, -20)
	assert.Equal(t, []rule.Symbol{0}, seg.Data)
}

func TestStep_RepeatedLeftGrowth_PreservesWrittenValues(t *testing.T) {
	tp := tape.New(0)
	for i := 0; i < 10; i++ {
		tp.Step(rule.Transition{Symbol: 1, Dir: rule.Left, TargetState: 0})
	}
	seg := tp.Segment(tp.LeftEdge(), tp.RightEdge())
	for i, v := range seg.Data {
		if i == 0 {
			continue // index 0 is the current head cell, still unwritten (0)
		}
		assert.Equalf(t, rule.Symbol(1), v, "cell %d", i)
	}
}

func TestBlank_FalseAfterWrite(t *testing.T) {
	tp := tape.New(0)
	assert.True(t, tp.Blank())
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})
	assert.False(t, tp.Blank())
}

func TestClone_DoesNotAlias(t *testing.T) {
	tp := tape.New(0)
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})

	clone := tp.Clone()
	clone.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})

	assert.NotEqual(t, tp.Head(), clone.Head())
}

func TestLen_GrowsWithTouchedCells(t *testing.T) {
	tp := tape.New(0)
	before := tp.Len()
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})
	assert.Greater(t, tp.Len(), before)
}
