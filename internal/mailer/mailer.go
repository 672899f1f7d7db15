package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// Mailer delivers the password-reset message. Failure to send surfaces once
// to the caller; there is no retry.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{
		Addr: host + ":" + port,
		From: from,
	}
}

func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Reset your admin password\r\n\r\n"+
			"A password reset was requested for this address.\r\n\r\n"+
			"Open the link below to choose a new password. The link expires in 15 minutes.\r\n\r\n%s\r\n",
		m.From, to, resetURL,
	)
	if err := smtp.SendMail(m.Addr, nil, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

// LogMailer only logs the reset link. Used in development and tests.
type LogMailer struct {
	Logger *zap.Logger

	// LastURL keeps the most recent link so tests can follow it.
	LastURL string
	LastTo  string
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{Logger: logger}
}

func (m *LogMailer) SendPasswordReset(to, resetURL string) error {
	m.LastTo = to
	m.LastURL = resetURL
	m.Logger.Info("password reset link",
		zap.String("to", to),
		zap.String("url", resetURL),
	)
	return nil
}
