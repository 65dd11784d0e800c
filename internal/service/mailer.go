// internal/service/mailer.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"skillsphere/internal/config"
	"skillsphere/internal/middleware"
)

// Mailer は通知メールの送信口です
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer は送信せずログに出すだけの開発用実装です
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// SmtpMailer は平文SMTPで送信する実装です (ローカルのメールキャッチャー用)
type SmtpMailer struct {
	cfg *config.SMTPConfig
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP",
		"smtp_addr", addr,
		"from", m.cfg.From,
		"to", to,
	)

	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.From)
		return err
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}
	defer wc.Close()

	msg := "To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write email data", "error", err)
		return err
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// NewMailer は設定に応じた Mailer 実装を返します
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "ses":
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(cfg)
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return &SmtpMailer{cfg: &cfg.SMTP}
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}
