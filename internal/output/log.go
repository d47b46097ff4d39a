// Package output provides terminal output utilities for create-noiriko.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger. Replace it only through SetupLogging.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// stdout receives Print and Println output.
var stdout io.Writer = os.Stdout

// logWriter receives log output; lastConfig is the most recent SetupLogging
// argument, reapplied when the writer changes.
var (
	logWriter  io.Writer = os.Stderr
	lastConfig LogConfig
)

// LogConfig controls logger behavior.
type LogConfig struct {
	// Verbose enables debug level, caller reporting, and forces timestamps.
	Verbose bool

	// Timestamps toggles timestamps. Nil means the default (on).
	Timestamps *bool
}

// SetupLogging configures the package logger.
func SetupLogging(cfg LogConfig) {
	lastConfig = cfg

	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(logWriter, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// StageLogger returns a child logger that prefixes lines with a stage name.
func StageLogger(stage string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("[" + stage + "]"))
}

// SetOutput redirects Print and Println, returning a function that restores
// the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	prev := stdout
	stdout = w
	return func() { stdout = prev }
}

// SetLogOutput redirects log output, keeping the current logging
// configuration, and returns a function that restores the previous writer.
func SetLogOutput(w io.Writer) (restore func()) {
	prev := logWriter
	logWriter = w
	SetupLogging(lastConfig)
	return func() {
		logWriter = prev
		SetupLogging(lastConfig)
	}
}

// Stdout returns the writer used by Print and Println.
func Stdout() io.Writer {
	return stdout
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	_, _ = io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	_, _ = io.WriteString(stdout, msg+"\n")
}
