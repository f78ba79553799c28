package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/cookie-jar/config"
)

const (
	logDir      = "logs"
	logFileName = "cookie-jar.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens the game log file when debug is set or the config names one
// The terminal owns stdout, so without a file the logger discards everything
func setupLogging(debug bool, cfg config.LoggingConfig) (*zap.Logger, *os.File, error) {
	path := cfg.File
	if path == "" {
		if !debug {
			return zap.NewNop(), nil, nil
		}
		path = filepath.Join(logDir, logFileName)
	}
	if debug {
		cfg.Level = "debug"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	// Rotate at startup if the previous log grew too large
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log, err := cfg.NewLogger(zapcore.AddSync(f))
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, f, nil
}
