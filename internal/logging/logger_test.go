package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/logging/types"
)

// captureAdapter records entries in memory for assertions.
type captureAdapter struct {
	entries []*types.LogEntry
}

func (a *captureAdapter) Write(entry *types.LogEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

func (a *captureAdapter) Close() error  { return nil }
func (a *captureAdapter) Health() error { return nil }
func (a *captureAdapter) Name() string  { return "capture" }

func newTestLogger(t *testing.T) (*MultiLogger, *captureAdapter) {
	t.Helper()

	logger := NewMultiLogger()
	capture := &captureAdapter{}
	require.NoError(t, logger.AddAdapter(capture))
	return logger, capture
}

func TestMultiLogger_WithError(t *testing.T) {
	logger, capture := newTestLogger(t)

	logger.WithError(errors.New("browser pool exhausted")).Error("Render failed")

	require.Len(t, capture.entries, 1)
	assert.Equal(t, "Render failed", capture.entries[0].Message)
	assert.Equal(t, "browser pool exhausted", capture.entries[0].Fields["error"])
}

func TestMultiLogger_WithErrorNil(t *testing.T) {
	logger, capture := newTestLogger(t)

	logger.WithError(nil).Warn("provider degraded")

	require.Len(t, capture.entries, 1)
	_, ok := capture.entries[0].Fields["error"]
	assert.False(t, ok)
}

func TestMultiLogger_WithErrorDoesNotMutateParent(t *testing.T) {
	logger, capture := newTestLogger(t)

	logger.WithError(errors.New("timeout"))
	logger.Info("healthy again")

	require.Len(t, capture.entries, 1)
	_, ok := capture.entries[0].Fields["error"]
	assert.False(t, ok)
}

func TestMultiLogger_LevelFiltering(t *testing.T) {
	logger, capture := newTestLogger(t)
	logger.SetLevel(WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	require.Len(t, capture.entries, 1)
	assert.Equal(t, "kept", capture.entries[0].Message)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLogLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLogLevel("warning"))
	assert.Equal(t, FatalLevel, ParseLogLevel("FATAL"))
	assert.Equal(t, InfoLevel, ParseLogLevel("unknown"))
}
