package applog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/turingbeaver/internal/applog"
	"github.com/stretchr/testify/assert"
)

func TestNew_InfoLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := applog.New(false, &buf)
	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_VerboseEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := applog.New(true, &buf)
	l.Debug("now visible")

	assert.Contains(t, buf.String(), "now visible")
}

func TestLogger_IncludesKeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	l := applog.New(true, &buf)
	l.Warn("slow path", "from", 10, "to", 2)

	out := buf.String()
	assert.True(t, strings.Contains(out, "from") && strings.Contains(out, "to"))
}

func TestDiscard_WritesNothingObservable(t *testing.T) {
	l := applog.Discard()
	assert.NotPanics(t, func() {
		l.Info("noop")
		l.Warn("noop")
		l.Error("noop")
		l.Debug("noop")
	})
}
