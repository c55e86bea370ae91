package smtprelay

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/mailspool/mailspool"
)

const defaultPort = 587

// Relay implements mailspool.Relay over a STARTTLS-upgraded SMTP connection
// authenticated with the sender credential.
type Relay struct {
	config Config
}

// New creates a new SMTP relay provider.
func New(cfg Config) *Relay {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return &Relay{config: cfg}
}

// Connect implements mailspool.Relay. It dials the relay, upgrades the
// channel with STARTTLS and authenticates; the returned Conn wraps one
// persistent SMTP session.
func (r *Relay) Connect(ctx context.Context) (mailspool.Conn, error) {
	client, err := mail.NewClient(r.config.Host,
		mail.WithPort(r.config.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(r.config.Sender),
		mail.WithPassword(r.config.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtprelay: create client: %w", err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("smtprelay: dial %s:%d: %w", r.config.Host, r.config.Port, err)
	}

	return &conn{client: client, config: r.config}, nil
}

type conn struct {
	client *mail.Client
	config Config
}

// Probe issues an RSET on the open session; a dead connection fails here,
// which makes the dispatcher reconnect.
func (c *conn) Probe(_ context.Context) error {
	if err := c.client.Reset(); err != nil {
		return fmt.Errorf("smtprelay: probe: %w", err)
	}
	return nil
}

// Send implements mailspool.Conn.
func (c *conn) Send(_ context.Context, msg *mailspool.Message) error {
	m := mail.NewMsg()

	from := c.config.Sender
	if c.config.SenderName != "" {
		from = mailspool.Recipient(c.config.SenderName, c.config.Sender)
	}
	if err := m.From(from); err != nil {
		return fmt.Errorf("smtprelay: from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("smtprelay: to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := c.client.Send(m); err != nil {
		return fmt.Errorf("smtprelay: send: %w", err)
	}
	return nil
}

// Quit closes the SMTP session gracefully.
func (c *conn) Quit() error {
	return c.client.Close()
}
