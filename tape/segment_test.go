package tape_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/katalvlaran/turingbeaver/tape"
	"github.com/stretchr/testify/assert"
)

func TestSegment_OutOfRangeReadsAsZero(t *testing.T) {
	tp := tape.New(0)
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})

	seg := tp.Segment(-5, 5)
	assert.Equal(t, 11, len(seg.Data))
	for i, coord := 0, -5; coord <= 5; i, coord = i+1, coord+1 {
		if coord == 0 || coord == 1 {
			continue // touched region: coord 0 is written to 1, coord 1 is the fresh head cell (0)
		}
		assert.Equalf(t, rule.Symbol(0), seg.Data[i], "coord %d", coord)
	}
}

func TestSegment_RelativeHead(t *testing.T) {
	tp := tape.New(0)
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 0})

	seg := tp.Segment(0, 2)
	assert.Equal(t, 2, seg.RelativeHead) // head=2, start=0
}

func TestSegment_CarriesState(t *testing.T) {
	tp := tape.New(0)
	tp.Step(rule.Transition{Symbol: 1, Dir: rule.Right, TargetState: 3})

	seg := tp.Segment(0, 1)
	assert.Equal(t, 3, seg.State)
}

func TestSegment_InvertedRangeIsEmpty(t *testing.T) {
	tp := tape.New(0)
	seg := tp.Segment(5, 2)
	assert.Empty(t, seg.Data)
}

func TestTapeSegment_Equal(t *testing.T) {
	a := tape.TapeSegment{State: 1, Data: []rule.Symbol{0, 1, 0}, RelativeHead: 1}
	b := tape.TapeSegment{State: 1, Data: []rule.Symbol{0, 1, 0}, RelativeHead: 1}
	c := tape.TapeSegment{State: 2, Data: []rule.Symbol{0, 1, 0}, RelativeHead: 1}
	d := tape.TapeSegment{State: 1, Data: []rule.Symbol{0, 1, 1}, RelativeHead: 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestTapeSegment_Key_DistinguishesDifferentSegments(t *testing.T) {
	a := tape.TapeSegment{State: 1, Data: []rule.Symbol{0, 1, 0}, RelativeHead: 1}
	b := tape.TapeSegment{State: 1, Data: []rule.Symbol{0, 1, 0}, RelativeHead: 2}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestTapeSegment_Key_StableForEqualSegments(t *testing.T) {
	a := tape.TapeSegment{State: -1, Data: []rule.Symbol{1, 0}, RelativeHead: -3}
	b := tape.TapeSegment{State: -1, Data: []rule.Symbol{1, 0}, RelativeHead: -3}
	assert.Equal(t, a.Key(), b.Key())
}

func TestMacroTransition_EqualIgnoresSteps(t *testing.T) {
	seg := tape.TapeSegment{State: 0, Data: []rule.Symbol{1}, RelativeHead: 0}
	a := tape.MacroTransition{From: seg, To: seg, Steps: 10}
	b := tape.MacroTransition{From: seg, To: seg, Steps: 999}
	assert.True(t, a.Equal(b))
}
