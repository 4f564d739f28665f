package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile    = "dashboard-palette.log"
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	maxSizeMB    = defaultMaxSizeMB
	sink         io.Writer
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	w := writerLocked()
	logger := log.New(w, "", log.LstdFlags)
	logger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	enc := json.NewEncoder(writerLocked())
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination and rotation size. Empty paths fall back
// to the default file; directories are created automatically when missing.
func Configure(path string, maxSize int) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxSizeMB = maxSize
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects all entries to w until the next Configure call. Tests
// use it to capture trace output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	sink = w
}

// Close flushes and releases the rotating log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func writerLocked() io.Writer {
	if sink == nil {
		sink = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSizeMB,
			MaxBackups: defaultMaxBackups,
		}
	}
	return sink
}

func closeLocked() {
	if closer, ok := sink.(*lumberjack.Logger); ok {
		_ = closer.Close()
	}
	sink = nil
}
