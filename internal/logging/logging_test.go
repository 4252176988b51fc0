package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ASKEW_TRAINER_LOG_LEVEL", "")
	t.Setenv("ASKEW_TRAINER_LOG_FILE", "")

	cfg := LoadConfig()

	assert.Equal(t, "warn", cfg.Level)
	assert.Empty(t, cfg.File)
}

func TestNew_WritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trainer.log")

	logger, closeFn := New(Config{Level: "error", File: path})
	logger.Debug("saved dataset")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"saved dataset"`)
	assert.Contains(t, string(data), `"logger":"askew-trainer"`)
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	logger, closeFn := New(Config{Level: "chatty"})
	defer closeFn()

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
