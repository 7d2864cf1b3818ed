package notify

import "github.com/rs/zerolog"

// Severity classifies a notification for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives fire-and-forget user-facing notifications. Callers never
// wait on or inspect the outcome.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// LogNotifier emits notifications as structured log events. It stands in for
// the storefront's toast presenter.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(title, description string, severity Severity) {
	n.logger.Info().
		Str("title", title).
		Str("description", description).
		Str("severity", string(severity)).
		Msg("notification")
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Notify(title, description string, severity Severity) {}
