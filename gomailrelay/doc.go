// Package gomailrelay provides an alternative mailspool.Relay built on
// gopkg.in/mail.v2 (the maintained gomail fork).
//
// The dialer authenticates during Connect and the SendCloser is reused
// between sends. gomail has no keepalive primitive, so Probe reports the
// session healthy unconditionally; reconnection relies on the dispatcher's
// send-failure path. Prefer package smtprelay when a real probe matters.
package gomailrelay
