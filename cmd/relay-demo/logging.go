package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "relay-demo.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the log file when debug is set and returns a logger writing to it
// With debug off the logger is disabled and the file is nil. The terminal owns stdout/stderr,
// so nothing is ever written there
func setupLogging(debug bool, level zerolog.Level) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate oversized log
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("relay-demo-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Str("app", "relay-demo").Logger()
	return logger, f
}
