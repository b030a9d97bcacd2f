// Package debug provides conditional debug logging for breathe.
//
// Debug logging is enabled by setting the BREATHE_DEBUG environment variable
// or passing --debug:
//
//	BREATHE_DEBUG=1 breathe start 1
//
// The TUI owns the terminal, so messages go to a log file opened with
// ToFile rather than stderr. When disabled (default), all debug functions
// are no-ops.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "[BREATHE_DEBUG] "

var (
	enabled atomic.Bool
	// logger writes with a [BREATHE_DEBUG] prefix; stderr until ToFile is called.
	logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
)

func init() {
	if os.Getenv("BREATHE_DEBUG") != "" {
		enabled.Store(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	enabled.Store(e)
}

// SetOutput redirects debug output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// ToFile sends debug output to path, appending. The caller closes the
// returned file on exit.
func ToFile(path string) (io.Closer, error) {
	f, err := tea.LogToFileWith(path, prefix, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	logger.Printf(format, args...)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !enabled.Load() || !cond {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	logger.Printf("%s took %v", name, d)
}
