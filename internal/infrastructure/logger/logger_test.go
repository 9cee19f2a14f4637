package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"CityNotes-App/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("JSON形式", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("コンソール形式", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("不正なレベル", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "verbose", Format: "json"})
		assert.Error(t, err)
	})

	t.Run("不正な形式", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "info", Format: "xml"})
		assert.Error(t, err)
	})
}
