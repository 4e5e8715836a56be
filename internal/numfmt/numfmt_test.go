package numfmt_test

import (
	"testing"

	"github.com/katalvlaran/turingbeaver/internal/numfmt"
	"github.com/stretchr/testify/assert"
)

func TestParseUint_PlainDecimal(t *testing.T) {
	n, err := numfmt.ParseUint("47176870")
	assert.NoError(t, err)
	assert.Equal(t, int64(47_176_870), n)
}

func TestParseUint_ScientificNotation(t *testing.T) {
	n, err := numfmt.ParseUint("1e8")
	assert.NoError(t, err)
	assert.Equal(t, int64(100_000_000), n)
}

func TestParseUint_RejectsFraction(t *testing.T) {
	_, err := numfmt.ParseUint("1.5e1")
	assert.Error(t, err)
}

func TestParseUint_RejectsNegative(t *testing.T) {
	_, err := numfmt.ParseUint("-5")
	assert.Error(t, err)

	_, err = numfmt.ParseUint("-1e3")
	assert.Error(t, err)
}

func TestParseUint_RejectsEmpty(t *testing.T) {
	_, err := numfmt.ParseUint("")
	assert.Error(t, err)
}

func TestParseUint_RejectsGarbage(t *testing.T) {
	_, err := numfmt.ParseUint("not-a-number")
	assert.Error(t, err)
}
