// Package notify delivers best-effort email alerts for new contact messages.
// Delivery runs on its own goroutine fed by a channel; a failure is logged
// and never reaches the request that queued it.
package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// ContactMessage is the notification payload for one contact submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Sender delivers one notification.
type Sender interface {
	Send(msg ContactMessage) error
}

// Run reads messages from the channel and delivers them until the channel
// closes. On context cancellation it drains what is already queued before
// returning. Errors are logged only.
func Run(ctx context.Context, ch <-chan ContactMessage, sender Sender) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := sender.Send(msg); err != nil {
				log.Printf("contact notification failed: %v", err)
			}
		case <-ctx.Done():
			for {
				select {
				case msg, ok := <-ch:
					if !ok {
						return
					}
					if err := sender.Send(msg); err != nil {
						log.Printf("contact notification drain failed: %v", err)
					}
				default:
					return
				}
			}
		}
	}
}

// Mailer sends notifications over SMTP with plain auth.
type Mailer struct {
	host     string
	port     string
	user     string
	password string
	to       []string
}

func NewMailer(host, port, user, password string, to []string) *Mailer {
	return &Mailer{host: host, port: port, user: user, password: password, to: to}
}

// Enabled reports whether credentials and recipients are configured.
func (m *Mailer) Enabled() bool {
	return m.host != "" && m.user != "" && m.password != "" && len(m.to) > 0
}

// Send delivers one contact notification. Skipped silently when the mailer
// is not configured.
func (m *Mailer) Send(msg ContactMessage) error {
	if !m.Enabled() {
		log.Printf("smtp credentials missing, skipping contact notification")
		return nil
	}

	subject := "Portfolio Contact: " + msg.Subject
	body := fmt.Sprintf(
		"You have received a new message from your portfolio website.\r\n\r\n"+
			"From: %s (%s)\r\nSubject: %s\r\n\r\nMessage:\r\n%s\r\n",
		msg.Name, msg.Email, msg.Subject, msg.Body)

	mail := strings.Join([]string{
		"From: " + m.user,
		"To: " + strings.Join(m.to, ", "),
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.user, m.to, []byte(mail)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	log.Printf("contact notification sent to %d recipients", len(m.to))
	return nil
}
