package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type MailServiceInterface interface {
	SendPasswordResetMail(to, token string) error
}

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@lemmequit.app"
	FromName   string
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg      SMTPConfig
	resetTpl *template.Template
}

const resetMailTemplate = `<html>
  <body style="font-family: sans-serif;">
    <h2>{{.AppName}} password reset</h2>
    <p>We received a request to reset your password. Use the link below
    within 15 minutes:</p>
    <p><a href="{{.ResetURL}}">Reset my password</a></p>
    <p>If you did not ask for this, you can ignore this message.</p>
  </body>
</html>`

func NewSMTPMailService(cfg SMTPConfig) (MailServiceInterface, error) {
	return &smtpMailService{
		cfg:      cfg,
		resetTpl: template.Must(template.New("resetHTML").Parse(resetMailTemplate)),
	}, nil
}

func (s *smtpMailService) SendPasswordResetMail(to, token string) error {
	var body bytes.Buffer
	err := s.resetTpl.Execute(&body, map[string]string{
		"AppName":  s.cfg.AppName,
		"ResetURL": fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppBaseURL, token),
	})
	if err != nil {
		return fmt.Errorf("render reset mail: %w", err)
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s password reset\r\n", s.cfg.AppName)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}
