package mailspool

import "log/slog"

const defaultMaxRetries = 3

// config holds dispatcher configuration.
type config struct {
	logger     *slog.Logger
	maxRetries int
}

func newConfig() *config {
	return &config{
		maxRetries: defaultMaxRetries,
	}
}

// Option configures the dispatcher.
type Option func(*config)

// WithLogger sets the logger for dispatch processing.
// If not set, a noop logger is used.
//
// Example:
//
//	mailspool.WithLogger(slog.Default())
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxRetries sets how many times a failed send is retried before the
// message is dropped. Defaults to 3, for 4 attempts total.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}
