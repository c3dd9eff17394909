package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "gameloop.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate when the log grows past 10MB
)

// setupLogging routes the standard logger to a file when debug is set, otherwise discards
// The terminal belongs to the screen, so logs never go to stdout or stderr
// Returns the open log file for the caller to close, nil when logging is disabled or failed
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("gameloop-%s.log", time.Now().Format("20060102-150405")))
		// Rotation failure just keeps appending to the large file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== gameloop-demo started (pid %d) ===", os.Getpid())
	return f
}
