package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerVerboseLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutput(&buf)

	logger.Info("hidden info")
	logger.Warn("visible warning")
	assert.NotContains(t, buf.String(), "hidden info")
	assert.Contains(t, buf.String(), "visible warning")

	buf.Reset()
	logger.SetVerboseLevel(VerboseDebug)
	logger.Infof("info %d", 1)
	logger.Debugf("debug %d", 2)
	logger.Tracef("trace %d", 3)
	assert.Contains(t, buf.String(), "info 1")
	assert.Contains(t, buf.String(), "debug 2")
	assert.NotContains(t, buf.String(), "trace 3")
	assert.Equal(t, VerboseDebug, logger.VerboseLevel())
}

func TestCurrentLogger(t *testing.T) {
	ResetLogger()
	defer ResetLogger()

	l1 := CurrentLogger().SetVerboseLevel(VerboseTrace)
	assert.Same(t, l1, CurrentLogger())

	ResetLogger()
	assert.Equal(t, VerboseOff, CurrentLogger().VerboseLevel())
}
