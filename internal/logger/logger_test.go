package logger

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reset(t *testing.T) {
	t.Cleanup(func() {
		Logger = zap.NewNop().Sugar()
		JSONOutput = false
	})
}

func TestDefaultIsNop(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("discarded", "key", "value")
		Cleanup()
	})
}

func TestInitializeConsole(t *testing.T) {
	reset(t)
	require.NoError(t, Initialize(false, "debug"))
	assert.False(t, JSONOutput)
	assert.True(t, Desugar().Core().Enabled(zap.DebugLevel))
}

func TestInitializeJSON(t *testing.T) {
	reset(t)
	require.NoError(t, Initialize(true, "warn"))
	assert.True(t, JSONOutput)
	assert.False(t, Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, Desugar().Core().Enabled(zap.WarnLevel))
}

func TestInitializeDefaultLevel(t *testing.T) {
	reset(t)
	require.NoError(t, Initialize(false, ""))
	assert.True(t, Desugar().Core().Enabled(zap.InfoLevel))
	assert.False(t, Desugar().Core().Enabled(zap.DebugLevel))
}

func TestInitializeBadLevel(t *testing.T) {
	reset(t)
	err := Initialize(false, "loud")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "debug")
}
