package mailspool

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithLogger_NilIgnored(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	WithLogger(nil)(cfg)

	require.Nil(t, cfg.logger)
}

func TestWithLogger_SetsLogger(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	l := slog.Default()
	WithLogger(l)(cfg)

	require.Same(t, l, cfg.logger)
}

func TestWithMaxRetries_NegativeIgnored(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	WithMaxRetries(-1)(cfg)

	require.Equal(t, defaultMaxRetries, cfg.maxRetries)
}

func TestWithMaxRetries_ZeroDisablesRetries(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	WithMaxRetries(0)(cfg)

	require.Zero(t, cfg.maxRetries)
}
