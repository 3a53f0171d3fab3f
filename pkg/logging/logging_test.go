package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetupProductionLevel(t *testing.T) {
	require.NoError(t, Setup(false, "", "codebundle", "test"))

	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, Logger, zap.L())

	require.NoError(t, Setup(false, "info", "codebundle", "test"))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestSetupDebug(t *testing.T) {
	require.NoError(t, Setup(true, "error", "codebundle", "test"))

	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSetupInvalidLevel(t *testing.T) {
	err := Setup(false, "chatty", "codebundle", "test")

	assert.Error(t, err)
}
