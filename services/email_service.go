package services

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// EmailService delivers the dashboard email chat messages to the support
// mailbox.
type EmailService struct {
	dialer  *gomail.Dialer
	from    string
	support string
}

func NewEmailService(cfg SMTPConfig, supportAddress string) (*EmailService, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Password == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if supportAddress == "" {
		return nil, errors.New("support address missing")
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &EmailService{
		dialer:  gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:    from,
		support: supportAddress,
	}, nil
}

type SupportMessage struct {
	CustomerName  string
	CustomerEmail string
	Subject       string
	Body          string
}

func (s *EmailService) SendSupportMessage(msg SupportMessage) error {
	m := s.buildMessage(msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildMessage(msg SupportMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.support)
	if msg.CustomerEmail != "" {
		m.SetAddressHeader("Reply-To", msg.CustomerEmail, msg.CustomerName)
	}
	m.SetHeader("Subject", "[Customer] "+strings.TrimSpace(msg.Subject))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <div style="white-space: pre-wrap; border-top: 1px solid #eee; padding-top: 12px;">%s</div>
</body>
</html>
	`, html.EscapeString(msg.CustomerName), html.EscapeString(msg.CustomerEmail), html.EscapeString(msg.Body))

	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", msg.Body)
	return m
}
