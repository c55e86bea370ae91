package gomailrelay

import (
	"context"
	"fmt"

	mail "gopkg.in/mail.v2"

	"github.com/mailspool/mailspool"
)

const defaultPort = 587

// Relay implements mailspool.Relay over a gomail Dialer with mandatory
// STARTTLS.
type Relay struct {
	dialer *mail.Dialer
	config Config
}

// New creates a new gomail relay provider.
func New(cfg Config) *Relay {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Sender, cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS

	return &Relay{dialer: d, config: cfg}
}

// Connect implements mailspool.Relay. Dialing includes the STARTTLS upgrade
// and authentication.
func (r *Relay) Connect(_ context.Context) (mailspool.Conn, error) {
	sc, err := r.dialer.Dial()
	if err != nil {
		return nil, fmt.Errorf("gomailrelay: dial %s:%d: %w", r.config.Host, r.config.Port, err)
	}
	return &conn{sender: sc, config: r.config}, nil
}

type conn struct {
	sender mail.SendCloser
	config Config
}

// Probe always reports the session healthy: gomail exposes no keepalive
// primitive, so a dead connection surfaces on Send and the dispatcher
// reconnects there instead.
func (c *conn) Probe(_ context.Context) error {
	return nil
}

// Send implements mailspool.Conn.
func (c *conn) Send(_ context.Context, msg *mailspool.Message) error {
	m := mail.NewMessage()

	if c.config.SenderName != "" {
		m.SetAddressHeader("From", c.config.Sender, c.config.SenderName)
	} else {
		m.SetHeader("From", c.config.Sender)
	}
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := mail.Send(c.sender, m); err != nil {
		return fmt.Errorf("gomailrelay: send: %w", err)
	}
	return nil
}

// Quit closes the SMTP session gracefully.
func (c *conn) Quit() error {
	return c.sender.Close()
}
