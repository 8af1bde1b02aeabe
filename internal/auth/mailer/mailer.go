// Package mailer delivers outbound service email. Sending is decoupled from
// request handling: callers enqueue onto a Dispatcher and a background worker
// pushes messages out over SMTP at a bounded rate.
package mailer

import (
	"context"
	"log/slog"
)

// Message is a plain-text email ready to be sent.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message. Implementations must be safe for use
// from the dispatcher goroutine.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// LogSender writes messages to the log instead of delivering them. Used when
// SMTP is unconfigured so local development still surfaces passcodes.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, m Message) error {
	s.Logger.Info("mail delivery skipped (no SMTP configured)",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
		slog.String("body", m.Body),
	)
	return nil
}
