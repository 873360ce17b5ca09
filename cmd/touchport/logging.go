package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/touchport/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = parameter.MaxLogSize
)

// Package loggers are cloned from golog.Default at init and keep their own level
var childLoggers = []string{"[translator]", "[bridge]", "[host]", "[config]", "[main]"}

// setupLogging routes golog and the standard logger to logs/touchport.log when debug is set
// and discards everything otherwise so the terminal UI stays clean
// Returns the open log file, or nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool, level string) *os.File {
	if !debug {
		golog.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		golog.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("touchport-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		golog.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}

	golog.SetOutput(logFile)
	golog.SetLevel(level)
	for _, name := range childLoggers {
		golog.Child(name).SetLevel(level)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
