package notification

import (
	"context"
	"log/slog"
)

// Message describes an outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Notifier delivers messages to users out-of-band.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to the
// logger. Used in development when no SMTP credentials are configured.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "to", message.To, "subject", message.Subject, "body", message.Body)
	return nil
}
