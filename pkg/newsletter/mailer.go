// Package newsletter handles subscriber signup side effects, chiefly
// the welcome email.
package newsletter

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/CryptoTanAI/TechBlog/pkg/model"
)

// Mailer sends newsletter emails over SMTP. With no credentials
// configured, sends are skipped and logged, so local setups work
// without a mail account.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	siteURL  string
	logger   *slog.Logger

	// send is swapped out in tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates a Mailer.
func NewMailer(host string, port int, from, password, siteURL string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		siteURL:  strings.TrimRight(siteURL, "/"),
		logger:   logger,
		send:     smtp.SendMail,
	}
}

// Configured reports whether SMTP credentials are present.
func (m *Mailer) Configured() bool {
	return m.from != "" && m.password != ""
}

// SendWelcome sends the welcome email to a new subscriber.
func (m *Mailer) SendWelcome(subscriber *model.Subscriber) error {
	if !m.Configured() {
		m.logger.Info("smtp not configured, skipping welcome email", "email", subscriber.Email)
		return nil
	}

	unsubscribe := fmt.Sprintf("%s/api/newsletter/unsubscribe/%s", m.siteURL, subscriber.UnsubscribeToken)
	body := fmt.Sprintf(`Welcome to the TechSouth newsletter!

You'll get our latest coverage of technology and development across the
Global South.

Read the blog: %s

To unsubscribe at any time: %s
`, m.siteURL, unsubscribe)

	msg := buildMessage(m.from, subscriber.Email, "Welcome to TechSouth", body)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	if err := m.send(addr, auth, m.from, []string{subscriber.Email}, msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	m.logger.Info("sent welcome email", "email", subscriber.Email)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", to)
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}
