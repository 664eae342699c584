// Package log provides skiff's debug logging. Messages are buffered in
// memory until a sink is chosen so that nothing is lost before flag and
// config parsing decide where logs should go.
package log

import (
	"log"
	"os"
	"sync"
)

type debugLogger struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	global    = &debugLogger{}
	stdLogger = log.New(global, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer. Output goes to the file when one is set,
// otherwise into the buffer.
func (l *debugLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}
	if l.file != nil {
		n, err := l.file.Write(p)
		_ = l.file.Sync()
		return n, err
	}

	l.buffer = append(l.buffer, p...)
	return len(p), nil
}

// SetFile directs debug output to path, flushing anything buffered so
// far. An empty path discards buffered and future output.
func SetFile(path string) error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.file != nil {
		_ = global.file.Close()
		global.file = nil
	}

	if path == "" {
		global.discard = true
		global.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		global.discard = true
		global.buffer = nil
		return err
	}

	global.file = f
	global.discard = false
	if len(global.buffer) > 0 {
		_, _ = f.Write(global.buffer)
		_ = f.Sync()
		global.buffer = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.file == nil {
		return nil
	}
	err := global.file.Close()
	global.file = nil
	return err
}
