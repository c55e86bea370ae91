// Package smtprelay provides the production mailspool.Relay over a
// persistent SMTP session using wneessen/go-mail.
//
// Connect dials the configured host, upgrades the channel with STARTTLS
// (mandatory policy) and authenticates with PLAIN auth over the encrypted
// channel. The session stays open between sends; the dispatcher probes it
// with an RSET round trip before each reuse.
package smtprelay
