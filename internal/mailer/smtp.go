package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPMailer delivers unlock codes and temporary passwords over SMTP. It
// satisfies domain.Mailer.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendUnlockCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf("Your account unlock verification code is %s.\n"+
		"It expires in a few minutes. If you did not request it, ignore this message.\n", code)

	return m.send(ctx, to, "Account unlock verification code", body)
}

func (m *SMTPMailer) SendTemporaryPassword(ctx context.Context, to, password string) error {
	body := fmt.Sprintf("Your account has been unlocked.\n"+
		"Sign in with this temporary password and change it immediately: %s\n", password)

	return m.send(ctx, to, "Your temporary password", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
	}
	if m.cfg.User == "" {
		opts = []mail.Option{mail.WithPort(m.cfg.Port), mail.WithTLSPolicy(mail.NoTLS)}
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("build smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}
