package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const dialTimeout = 10 * time.Second

// SMTPNotifier delivers messages over SMTP with implicit TLS (port 465 style).
type SMTPNotifier struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewSMTPNotifier builds an SMTP-backed notifier. The authenticated user is
// also the envelope sender.
func NewSMTPNotifier(host, port, user, pass string) *SMTPNotifier {
	return &SMTPNotifier{host: host, port: port, user: user, pass: pass, from: user}
}

// Send delivers the message. Delivery failures are returned to the caller and
// never retried here.
func (n *SMTPNotifier) Send(ctx context.Context, message Message) error {
	addr := net.JoinHostPort(n.host, n.port)

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: n.host})
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}

	client, err := smtp.NewClient(conn, n.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if err := client.Auth(smtp.PlainAuth("", n.user, n.pass, n.host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(n.from); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(message.To); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(encode(n.from, message)); err != nil {
		w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

func encode(from string, message Message) []byte {
	contentType := "text/plain; charset=UTF-8"
	if message.HTML {
		contentType = "text/html; charset=UTF-8"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "From: DuMovie Support <%s>\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", message.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", message.Subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n", contentType)
	b.WriteString(message.Body)
	return []byte(b.String())
}
