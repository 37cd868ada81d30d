package services

import (
	"fmt"
	"net/smtp"

	"matchapp/config"
)

// MailRelay delivers transactional mail. Failures are surfaced to the
// caller and logged; nothing is queued or retried.
type MailRelay struct {
	cfg config.EmailConfig
}

func NewMailRelay(cfg config.EmailConfig) *MailRelay {
	return &MailRelay{cfg: cfg}
}

func (m *MailRelay) Send(to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.Port == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("incomplete SMTP configuration: host=%q, port=%q, username=%q",
			m.cfg.Host, m.cfg.Port, m.cfg.Username)
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	from := m.cfg.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}

// BuildResetEmail renders the password-reset mail body.
func BuildResetEmail(username, resetLink string) string {
	if username == "" {
		username = "Friend"
	}
	return `
	<div style="font-family: Arial, sans-serif; background-color: #f4f8fb; padding: 30px; text-align: center;">
	  <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 12px; padding: 25px;">
	    <h1 style="color: #ff6b6b;">Journey Of Heart to Heart</h1>
	    <p style="font-size: 16px; color: #444;">
	      Hello <b>` + username + `</b>,<br><br>
	      We received a request to reset the password for your account.
	    </p>
	    <a href="` + resetLink + `"
	       style="display: inline-block; margin: 20px 0; padding: 12px 20px; font-size: 16px; color: #fff; background: #ff6b6b; border-radius: 8px; text-decoration: none; font-weight: bold;">
	       Reset Your Password
	    </a>
	    <p style="font-size: 14px; color: #777; margin-top: 20px;">
	      If you did not request this, you can safely ignore this email.
	    </p>
	  </div>
	</div>`
}
