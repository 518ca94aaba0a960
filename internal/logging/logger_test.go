package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/BuzzLyutic/task-list/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("interactive without file is silent", func(t *testing.T) {
		l, err := New(config.Config{LogLevel: "debug"}, true)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("level is applied", func(t *testing.T) {
		l, err := New(config.Config{LogLevel: "warn", LogFormat: "json"}, false)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(config.Config{LogLevel: "loud"}, false)
		assert.Error(t, err)
	})

	t.Run("interactive with file writes there", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "task-list.log")
		l, err := New(config.Config{LogLevel: "info", LogFormat: "console", LogFile: path}, true)
		require.NoError(t, err)

		l.Info("hello from the tui")
		_ = l.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from the tui")
	})
}
