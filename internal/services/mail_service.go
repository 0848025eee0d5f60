package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"text/template"
	"time"

	"shepherd/internal/models/db_models"
)

type MailServiceInterface interface {
	SendEmail(to, subject, body string) error
	SendWelcomeEmail(member *db_models.Member) error
	SendDonationThankYou(member *db_models.Member, amount string) error
}

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

var welcomeTpl = template.Must(template.New("welcome").Parse(`Dear {{.FirstName}} {{.LastName}},

Welcome to our church community! We're thrilled to have you as part of our family.

Your membership was registered on {{.MembershipDate}}.

We look forward to seeing you at our services and events.

Blessings,
The Church Team
`))

var thankYouTpl = template.Must(template.New("thankyou").Parse(`Dear {{.Name}},

Thank you for your generous donation of {{.Amount}}. Your contribution helps us
continue our mission and serve our community.

May God bless you for your generosity.

The Church Team
`))

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendWelcomeEmail(member *db_models.Member) error {
	var body bytes.Buffer
	if err := welcomeTpl.Execute(&body, member); err != nil {
		return err
	}
	return s.SendEmail(member.Email, "Welcome to Our Church Community!", body.String())
}

func (s *smtpMailService) SendDonationThankYou(member *db_models.Member, amount string) error {
	var body bytes.Buffer
	err := thankYouTpl.Execute(&body, struct {
		Name   string
		Amount string
	}{member.FullName(), amount})
	if err != nil {
		return err
	}
	return s.SendEmail(member.Email, "Thank You for Your Generous Donation", body.String())
}

func (s *smtpMailService) SendEmail(to, subject, body string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("\r\n%s\r\n", body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

// logMailService stands in when SMTP is not configured: it records the send
// and does nothing else. Tests use it as well.
type logMailService struct{}

func NewLogMailService() MailServiceInterface {
	return &logMailService{}
}

func (l *logMailService) SendEmail(to, subject, _ string) error {
	log.Printf("mail: sending to %s, subject: %s", to, subject)
	return nil
}

func (l *logMailService) SendWelcomeEmail(member *db_models.Member) error {
	return l.SendEmail(member.Email, "Welcome to Our Church Community!", "")
}

func (l *logMailService) SendDonationThankYou(member *db_models.Member, amount string) error {
	return l.SendEmail(member.Email, "Thank You for Your Generous Donation", "")
}
