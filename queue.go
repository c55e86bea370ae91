package mailspool

import "sync"

// fifo is the unbounded queue shared between enqueuing callers and the
// single worker. Push never blocks; pop blocks until an item arrives or the
// queue is closed. Items are removed only by the worker, in insertion order.
type fifo struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []Message
	closed bool
}

func newFIFO() *fifo {
	q := &fifo{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// push appends messages in the given order. A closed queue still accepts
// items; they are simply never popped.
func (q *fifo) push(msgs ...Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, msgs...)
	q.cond.Broadcast()
}

// pop returns the oldest message, blocking while the queue is empty.
// It reports false once the queue is closed; remaining items are abandoned,
// not drained.
func (q *fifo) pop() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		return Message{}, false
	}

	msg := q.items[0]
	q.items = q.items[1:]
	return msg, true
}

// close wakes a blocked pop and makes all subsequent pops report false.
func (q *fifo) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

func (q *fifo) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
