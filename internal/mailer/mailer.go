package mailer

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/provider-scheduler/internal/config"
)

type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		// sem SMTP configurado o mailer vira no-op (ambiente local)
		return &Mailer{}
	}

	port, _ := strconv.Atoi(cfg.SMTPPort)

	return &Mailer{
		from:   cfg.EmailFrom,
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
	}
}

func (m *Mailer) Send(to string, subject string, htmlBody string) error {
	if m.dialer == nil || to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
