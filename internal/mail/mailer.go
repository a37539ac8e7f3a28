package mail

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/spec-kit/visitor-service/internal/config"
)

const sendTimeout = 10 * time.Second

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a composed gomail message.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends email through an SMTP relay.
type Mailer struct {
	sender Sender
	from   string
	logger *zap.Logger
}

// NewMailer builds a mailer using the relay credentials from cfg.
func NewMailer(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return NewMailerWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, logger)
}

// NewMailerWithSender builds a mailer around an existing sender.
func NewMailerWithSender(sender Sender, from string, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{sender: sender, from: from, logger: logger}
}

// Send delivers msg once. Errors are returned to the caller without retry.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.from == "" {
		return errors.New("mail: sender address not configured")
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.sender.DialAndSend(gm) }()

	select {
	case <-ctx.Done():
		m.logger.Warn("email send cancelled", zap.String("to", msg.To), zap.Error(ctx.Err()))
		return ctx.Err()
	case err := <-done:
		if err != nil {
			m.logger.Error("email send failed", zap.String("to", msg.To), zap.Error(err))
			return err
		}
	}
	m.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
