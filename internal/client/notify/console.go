package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ConsoleSink prints notifications as prefixed lines. Duration is ignored:
// terminal lines do not expire.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (c *ConsoleSink) Notify(message string, severity Severity, _ time.Duration) {
	prefix := "•"
	switch severity {
	case SeveritySuccess:
		prefix = "✔"
	case SeverityError:
		prefix = "✘"
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s\n", prefix, message)
}
