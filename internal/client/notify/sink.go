// Package notify delivers transient user-facing feedback (the CLI's stand-in
// for toast banners). Sinks are fire-and-forget: callers never consume a
// result.
package notify

import "time"

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultDuration is used when a caller has no opinion on display time.
const DefaultDuration = 1500 * time.Millisecond

// Sink accepts user-facing notifications.
type Sink interface {
	Notify(message string, severity Severity, duration time.Duration)
}
