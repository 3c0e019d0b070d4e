package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log     = logrus.New()
	logFile *os.File
	mu      sync.Mutex
)

const maxLogSize = 5 * 1024 * 1024 // 5MB

func init() {
	// Silent until Init wires up the log file; tests stay quiet by default.
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// Init opens ~/.config/ferry/ferry.log and directs all logging there,
// rotating the previous file once it exceeds the size cap.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".config", "ferry")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, "ferry.log")

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	logFile = file
	log.SetOutput(file)
	return nil
}

// Close detaches and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		log.SetOutput(io.Discard)
		logFile.Close()
		logFile = nil
	}
}

// SetDebug lowers the level so Debug lines reach the log file.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

func Debug(format string, args ...any) {
	log.Debugf(format, args...)
}

func Info(format string, args ...any) {
	log.Infof(format, args...)
}

func Warn(format string, args ...any) {
	log.Warnf(format, args...)
}

func Error(format string, args ...any) {
	log.Errorf(format, args...)
}
