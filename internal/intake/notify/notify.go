// Package notify is the presentation side of the intake form: every
// validation error and submission outcome is handed to a Notifier as a title
// and a severity.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Notifier renders one notification. Implementations must not block on user
// input.
type Notifier interface {
	Notify(title string, severity Severity)
}

// WriterNotifier prints notifications as lines on a terminal or file.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(title string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", severity, title)
}

// LogNotifier records notifications as structured log entries, for
// non-interactive runs.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title string, severity Severity) {
	ev := n.log.Info()
	if severity == SeverityError {
		ev = n.log.Error()
	}
	ev.Str("severity", string(severity)).Msg(title)
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(title string, severity Severity) {
	for _, n := range m {
		n.Notify(title, severity)
	}
}
