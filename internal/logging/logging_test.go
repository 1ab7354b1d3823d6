package logging_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DobbiKov/translate-dir-lib/internal/logging"
)

func TestNew_ConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, atom, err := logging.New(logging.Config{Level: "warn", Format: "console"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("lang", "French"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "French")

	atom.SetLevel(zapcore.DebugLevel)
	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Config{Level: "bogus", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("dropped at info")
	logger.Info("synced", zap.Int("copied", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "synced", entry["msg"])
	assert.Equal(t, float64(3), entry["copied"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, _, err := logging.New(logging.Config{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transdir.log")
	logger, _, err := logging.New(logging.Config{Level: "info", Format: "json", OutputPath: path}, nil)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, logger.Sync())
	assert.FileExists(t, path)
}

func TestNop(t *testing.T) {
	assert.NotNil(t, logging.Nop(nil))
	l := zap.NewExample()
	assert.Same(t, l, logging.Nop(l))
}
