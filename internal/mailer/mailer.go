// Package mailer formats and delivers outbound email. The Sender interface
// abstracts the transport so handlers can be tested with a recording fake;
// the production implementation submits over SMTP.
package mailer

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrNoRecipient is returned when a Message has no To address.
	ErrNoRecipient = errors.New("mailer: message has no recipient")

	// ErrNoSender is returned when a Message has no From address.
	ErrNoSender = errors.New("mailer: message has no from address")
)

// Message is a provider-agnostic outbound email.
type Message struct {
	From     string // envelope and header sender
	FromName string // optional display name for the From header
	To       string // single recipient
	ReplyTo  string // optional Reply-To header
	Subject  string
	Text     string // plain-text body
}

// Sender delivers a fully-prepared Message. Implementations make a single
// delivery attempt; there is no retry or queueing layer.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender logs messages instead of delivering them. Used in development
// when no SMTP host is configured.
type LogSender struct {
	Log *slog.Logger
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.Log.Info("mail not sent (no SMTP transport configured)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
