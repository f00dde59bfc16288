// Outbound email over SMTP. With no SMTP host configured the client runs in
// log-only mode, so local and CI environments never need a mail server.
package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/cargomatters/backend/internal/config"
)

// Client sends notification emails. All callers treat sends as best-effort.
type Client struct {
	cfg    config.SMTP
	logger *zap.Logger
}

func NewClient(cfg config.SMTP, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{cfg: cfg, logger: logger}
}

// Send delivers one HTML email. In log-only mode it records the message and
// returns nil.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("empty recipient")
	}
	if c.cfg.Host == "" {
		c.logger.Info("email (log-only mode)",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(c.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	opts := []gomail.Option{
		gomail.WithPort(c.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.cfg.Username),
		gomail.WithPassword(c.cfg.Password),
	}
	if c.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}
