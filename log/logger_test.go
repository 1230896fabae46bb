package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := SetLogger(zap.New(core))
	defer restore()

	LogDebug("parsed payload", zap.Int("points", 4))
	LogInfo("chart saved", zap.String("path", "supply_over_time_5yrs.png"))
	LogWarn("no .env file")
	LogError("render failed", zap.Error(assert.AnError))

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, int64(4), entries[0].ContextMap()["points"])
		assert.Equal(t, "supply_over_time_5yrs.png", entries[1].ContextMap()["path"])
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	}
}

func TestSetLoggerRestore(t *testing.T) {
	before := Logger
	restore := SetLogger(zap.NewExample())
	assert.NotSame(t, before, Logger)
	restore()
	assert.Same(t, before, Logger)
}

func TestInitLevels(t *testing.T) {
	defer SetLogger(Logger)()

	assert.NoError(t, Init(false))
	assert.False(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.WarnLevel))

	assert.NoError(t, Init(true))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}
