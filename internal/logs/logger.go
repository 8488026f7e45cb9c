package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	logFileName = "debug.log"
	logPrefix   = "[chordquiz] "
)

var (
	Logger  *log.Logger
	logFile *os.File
	logPath string
	mu      sync.Mutex
)

// Runs on import so every package can log before the config is loaded.
// Falls back to discarding output if the working directory is read-only.
func init() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger = log.New(io.Discard, logPrefix, log.LstdFlags|log.Lshortfile)
		return
	}
	logFile = f
	logPath = logFileName
	Logger = log.New(f, logPrefix, log.LstdFlags|log.Lshortfile)
}

// Initialize moves the log file into logDir.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		Logger.Printf("Failed to create log directory %s: %v", logDir, err)
		return err
	}

	newPath := filepath.Join(logDir, logFileName)

	Logger.Printf("Reinitializing logger to: %s", newPath)

	f, err := os.OpenFile(newPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		Logger.Printf("Failed to open new log file at %s: %v", newPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	logPath = newPath
	Logger = log.New(f, logPrefix, log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger successfully reinitialized to: %s", newPath)

	return nil
}

// Path returns the file the logger currently writes to, or "" if discarding.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
