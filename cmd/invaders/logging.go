package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const logDir = "logs"

// setupLogging routes the stdlib logger to a timestamped file under logDir
// when debug is on, and discards output otherwise. Returns the open file,
// nil when logging is disabled or the file could not be created.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	name := filepath.Join(logDir, fmt.Sprintf("invaders-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.Create(name)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	return f
}
