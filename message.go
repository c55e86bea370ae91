package mailspool

import (
	"fmt"

	"github.com/google/uuid"
)

// Recipients is the normalized form of an enqueue target: one address or an
// ordered list of addresses. Construct it with To or ToEach.
type Recipients []string

// To targets a single recipient address.
func To(addr string) Recipients {
	return Recipients{addr}
}

// ToEach targets every address in the given order. Each address becomes its
// own queued message; duplicates are kept.
func ToEach(addrs ...string) Recipients {
	return Recipients(addrs)
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Message is a single queued send request. It always targets exactly one
// recipient address and is immutable once enqueued.
type Message struct {
	ID      string // Assigned at enqueue time, carried through log lines
	To      string // Single recipient address
	Subject string // Email subject
	HTML    string // HTML body content
}

func newMessage(to, subject, html string) Message {
	return Message{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		HTML:    html,
	}
}
