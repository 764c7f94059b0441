package overlay

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxConsoleLines bounds the in-game console scrollback.
const maxConsoleLines = 50

// Console is a bounded scrollback of timestamped lines. Writers and the
// frame renderer touch it from different threads, so every method locks.
// It implements io.Writer so the standard logger can be pointed at it.
type Console struct {
	mu    sync.Mutex
	lines []string
	now   func() time.Time
}

func NewConsole() *Console {
	return &Console{now: time.Now}
}

// Logf appends one formatted line with an HH:MM:SS prefix, dropping the
// oldest line once the scrollback is full.
func (c *Console) Logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.push(c.now().Format("15:04:05") + " " + line)
}

// Write appends logger output, one console line per newline-terminated
// line. The timestamp comes from the console, so callers feeding a
// standard logger through here should disable its own date/time flags.
func (c *Console) Write(p []byte) (int, error) {
	stamp := ""
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if stamp == "" {
			stamp = c.now().Format("15:04:05")
		}
		c.push(stamp + " " + line)
	}
	return len(p), nil
}

func (c *Console) push(line string) {
	if len(c.lines) == maxConsoleLines {
		copy(c.lines, c.lines[1:])
		c.lines = c.lines[:maxConsoleLines-1]
	}
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the scrollback, oldest first.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the scrollback.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = c.lines[:0]
}
