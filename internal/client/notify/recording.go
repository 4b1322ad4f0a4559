package notify

import (
	"sync"
	"time"
)

// Notification is one recorded Notify call.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

// RecordingSink captures notifications for assertions in tests.
type RecordingSink struct {
	mu   sync.Mutex
	sent []Notification
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (r *RecordingSink) Notify(message string, severity Severity, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Notification{Message: message, Severity: severity, Duration: duration})
}

// All returns a copy of everything recorded so far.
func (r *RecordingSink) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent notification, or a zero value when none.
func (r *RecordingSink) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Notification{}
	}
	return r.sent[len(r.sent)-1]
}
