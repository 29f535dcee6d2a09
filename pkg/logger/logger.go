// Package logger provides the shared diagnostics logger for workflow-report.
package logger

import (
	"io"
	"log"
	"sync"
)

var (
	globalLogger *log.Logger
	mu           sync.Mutex
)

// Init routes log output to the given writer. Until Init is called all
// messages are discarded, so quiet runs cost nothing.
func Init(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	globalLogger = log.New(w, "", log.Ltime|log.Lmicroseconds)
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf("[INFO] "+format, v...)
	}
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf("[DEBUG] "+format, v...)
	}
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf("[ERROR] "+format, v...)
	}
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf("[WARN] "+format, v...)
	}
}
