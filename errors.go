package mailspool

import "errors"

var (
	// ErrNoRecipient indicates an enqueue call with zero recipient addresses.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrConnectionUnavailable indicates the relay could not be dialed or
	// authentication failed.
	ErrConnectionUnavailable = errors.New("relay connection unavailable")

	// ErrSendFailed indicates transmission failed on an established session.
	ErrSendFailed = errors.New("failed to send message")

	// ErrAlreadyStopped indicates Stop was called on a stopped dispatcher.
	ErrAlreadyStopped = errors.New("dispatcher already stopped")
)
