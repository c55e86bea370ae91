package mailspool

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Dispatcher drains an unbounded FIFO of outgoing messages with a single
// background worker. The worker keeps one authenticated relay session alive
// across sends, probing it before reuse and reconnecting after failures.
//
// Sending is fire-and-forget: Enqueue returns as soon as the messages are
// queued, and a message whose retries are exhausted is dropped silently.
type Dispatcher struct {
	relay      Relay
	logger     *slog.Logger
	maxRetries int

	queue *fifo
	conn  Conn // worker-owned; nil when absent
	done  chan struct{}

	mu      sync.Mutex
	stopped bool

	enqueued atomic.Uint64
	sent     atomic.Uint64
	dropped  atomic.Uint64
}

// Stats is a snapshot of dispatcher counters.
type Stats struct {
	Enqueued uint64 // Messages accepted by Enqueue
	Sent     uint64 // Messages transmitted successfully
	Dropped  uint64 // Messages dropped after exhausting retries
	QueueLen int    // Messages currently waiting
}

// New creates a dispatcher and starts its background worker immediately.
// No relay connection is opened until the first send attempt.
func New(relay Relay, opts ...Option) *Dispatcher {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := &Dispatcher{
		relay:      relay,
		logger:     cfg.logger,
		maxRetries: cfg.maxRetries,
		queue:      newFIFO(),
		done:       make(chan struct{}),
	}

	go d.run()

	return d
}

// Enqueue expands the recipients into one message per address, preserving
// order, and appends them to the queue. It never blocks on queue capacity and
// never reports send outcomes; a malformed address fails later at the relay.
//
// After Stop, messages are still accepted but will never be processed.
func (d *Dispatcher) Enqueue(to Recipients, subject, bodyHTML string) error {
	if len(to) == 0 {
		return ErrNoRecipient
	}

	msgs := make([]Message, len(to))
	for i, addr := range to {
		msgs[i] = newMessage(addr, subject, bodyHTML)
	}

	d.queue.push(msgs...)
	d.enqueued.Add(uint64(len(msgs)))

	d.logger.Debug("messages enqueued",
		slog.Int("count", len(msgs)),
		slog.String("subject", subject),
	)

	return nil
}

// Stop signals the worker to exit after its current item, without draining
// the remaining queue, then waits for it bounded by ctx and closes any open
// relay session. A logout failure is swallowed. Subsequent calls return
// ErrAlreadyStopped.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrAlreadyStopped
	}
	d.stopped = true
	d.mu.Unlock()

	d.queue.close()

	select {
	case <-d.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if d.conn != nil {
		if err := d.conn.Quit(); err != nil {
			d.logger.Debug("relay logout failed", slog.Any("error", err))
		}
		d.conn = nil
	}

	d.logger.Info("dispatcher stopped")
	return nil
}

// Stats returns a snapshot of the dispatcher counters.
func (d *Dispatcher) Stats() Stats {
	return Stats{
		Enqueued: d.enqueued.Load(),
		Sent:     d.sent.Load(),
		Dropped:  d.dropped.Load(),
		QueueLen: d.queue.len(),
	}
}

// run is the single worker loop. It exits when the queue is closed; the item
// being dispatched at that moment finishes first, retries included.
func (d *Dispatcher) run() {
	defer close(d.done)

	ctx := context.Background()
	for {
		msg, ok := d.queue.pop()
		if !ok {
			return
		}
		d.dispatch(ctx, msg)
	}
}

// dispatch attempts the full acquire-then-send sequence, retrying up to
// maxRetries additional times with no backoff. Exhausted messages are
// dropped: no dead-letter, no requeue, no caller notification.
func (d *Dispatcher) dispatch(ctx context.Context, msg Message) {
	attempts := d.maxRetries + 1

	for attempt := 1; attempt <= attempts; attempt++ {
		err := d.attempt(ctx, &msg)
		if err == nil {
			d.sent.Add(1)
			d.logger.Info("mail sent",
				slog.String("message_id", msg.ID),
				slog.String("to", msg.To),
				slog.String("subject", msg.Subject),
			)
			return
		}

		if attempt < attempts {
			d.logger.Warn("send failed, retrying",
				slog.String("message_id", msg.ID),
				slog.Int("attempt", attempt),
				slog.Int("max_attempts", attempts),
				slog.Any("error", err),
			)
		}
	}

	d.dropped.Add(1)
	d.logger.Error("mail dropped after exhausting retries",
		slog.String("message_id", msg.ID),
		slog.String("to", msg.To),
		slog.Int("attempts", attempts),
	)
}

// attempt acquires a relay session and transmits one message. A transmission
// failure discards the session so the next attempt reconnects.
func (d *Dispatcher) attempt(ctx context.Context, msg *Message) error {
	conn, err := d.acquire(ctx)
	if err != nil {
		return err
	}

	if err := conn.Send(ctx, msg); err != nil {
		d.conn = nil
		d.logger.Error("transmission failed",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// acquire returns a live relay session, reusing the existing one when its
// probe succeeds and reconnecting otherwise.
func (d *Dispatcher) acquire(ctx context.Context) (Conn, error) {
	if d.conn != nil {
		if err := d.conn.Probe(ctx); err == nil {
			return d.conn, nil
		}
		d.logger.Debug("probe failed, discarding connection")
		d.conn = nil
	}

	conn, err := d.relay.Connect(ctx)
	if err != nil {
		d.logger.Error("relay connection failed", slog.Any("error", err))
		return nil, errors.Join(ErrConnectionUnavailable, err)
	}

	d.conn = conn
	d.logger.Debug("connected and authenticated to relay")
	return conn, nil
}
