package mailspool

import "context"

// Relay is the minimal interface mail relay providers must implement.
// Connect handles dialing, the STARTTLS upgrade, and authentication, and
// returns only once the session is ready to accept messages.
type Relay interface {
	Connect(ctx context.Context) (Conn, error)
}

// Conn is one authenticated relay session. The dispatcher's worker is its
// only user: at most one Conn is live at a time and it is never accessed
// concurrently.
type Conn interface {
	// Probe checks that the session is still alive with a lightweight
	// no-op round trip. An error makes the dispatcher discard the
	// connection and open a fresh one.
	Probe(ctx context.Context) error

	// Send transmits one message over the session.
	Send(ctx context.Context, msg *Message) error

	// Quit closes the session gracefully.
	Quit() error
}
