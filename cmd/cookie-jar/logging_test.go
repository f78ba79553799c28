package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cookie-jar/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	log, f, err := setupLogging(false, config.Default().Logging)
	require.NoError(t, err)
	assert.Nil(t, f)
	require.NotNil(t, log)
	log.Info("discarded")

	_, err = os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	log, f, err := setupLogging(true, config.Default().Logging)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Debug("test log message")
	require.NoError(t, log.Sync())

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSetupLogging_ConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().Logging
	cfg.File = filepath.Join(dir, "nested", "game.log")

	log, f, err := setupLogging(false, cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	log.Info("game started")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game started")
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, f, err := setupLogging(true, config.Default().Logging)
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "expected rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_BadLevel(t *testing.T) {
	cfg := config.Default().Logging
	cfg.File = filepath.Join(t.TempDir(), "game.log")
	cfg.Level = "loud"

	_, f, err := setupLogging(false, cfg)
	assert.Error(t, err)
	assert.Nil(t, f)
}
