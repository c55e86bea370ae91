// Package mailspool provides queued, asynchronous email dispatch over a
// reusable relay connection.
//
// Callers enqueue messages (recipients, subject, HTML body) and a single
// background worker drains the queue in FIFO order, keeping one authenticated
// session to the mail relay alive across sends and retrying transient
// failures a bounded number of times.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Relay/Conn: interfaces that relay providers implement
//   - Dispatcher: the queue plus its single background worker
//   - Provider adapters: smtprelay (wneessen/go-mail) and gomailrelay
//     (gopkg.in/mail.v2)
//
// # Usage
//
// Basic usage with the built-in SMTP STARTTLS provider:
//
//	import (
//		"context"
//		"log/slog"
//		"os"
//
//		"github.com/mailspool/mailspool"
//		"github.com/mailspool/mailspool/smtprelay"
//	)
//
//	func main() {
//		relay := smtprelay.New(smtprelay.Config{
//			Host:     "smtp.example.com",
//			Port:     587,
//			Sender:   "you@example.com",
//			Password: os.Getenv("SMTP_RELAY_PASSWORD"),
//		})
//
//		dispatcher := mailspool.New(relay,
//			mailspool.WithLogger(slog.Default()),
//		)
//
//		// Single recipient
//		_ = dispatcher.Enqueue(mailspool.To("target@example.com"),
//			"Subject", "<h1>Hello World</h1>")
//
//		// Ordered list of recipients, one message each
//		_ = dispatcher.Enqueue(mailspool.ToEach("a@example.com", "b@example.com"),
//			"Subject", "<h1>Hello World</h1>")
//
//		_ = dispatcher.Stop(context.Background())
//	}
//
// # Delivery semantics
//
// Enqueue is fire-and-forget: it returns once the messages are queued and
// never reports send outcomes. The worker attempts messages strictly in
// insertion order; a failed attempt re-runs the full connect-and-send
// sequence up to three more times, then the message is dropped silently.
// There is no dead-letter queue and no backoff between retries.
//
// The worker opens the relay connection lazily on the first attempt, reuses
// it while its keepalive probe succeeds, and discards it after any probe or
// transmission failure. Stop closes an open session gracefully but does not
// drain the remaining queue.
//
// # Custom providers
//
// Implement the Relay and Conn interfaces to dispatch through other
// transports:
//
//	type MyRelay struct{}
//
//	func (r *MyRelay) Connect(ctx context.Context) (mailspool.Conn, error) {
//		// Dial and authenticate, then return the live session.
//		return &myConn{}, nil
//	}
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: Enqueue called with zero addresses
//   - ErrConnectionUnavailable: dial or authentication failed
//   - ErrSendFailed: transmission failed on an established session
//   - ErrAlreadyStopped: Stop called twice
//
// Connection and send errors are handled inside the worker and never
// surfaced to Enqueue callers.
package mailspool
