package mailspool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFIFO_PopReturnsInInsertionOrder(t *testing.T) {
	t.Parallel()

	q := newFIFO()
	q.push(newMessage("a@example.com", "s", "b"))
	q.push(newMessage("b@example.com", "s", "b"), newMessage("c@example.com", "s", "b"))

	var got []string
	for i := 0; i < 3; i++ {
		msg, ok := q.pop()
		require.True(t, ok)
		got = append(got, msg.To)
	}

	require.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, got)
	require.Zero(t, q.len())
}

func TestFIFO_PopBlocksUntilPush(t *testing.T) {
	t.Parallel()

	q := newFIFO()
	popped := make(chan Message, 1)

	go func() {
		msg, ok := q.pop()
		if ok {
			popped <- msg
		}
	}()

	select {
	case <-popped:
		t.Fatal("pop returned before push")
	case <-time.After(50 * time.Millisecond):
	}

	q.push(newMessage("a@example.com", "s", "b"))

	select {
	case msg := <-popped:
		require.Equal(t, "a@example.com", msg.To)
	case <-time.After(time.Second):
		t.Fatal("pop did not return after push")
	}
}

func TestFIFO_CloseWakesBlockedPop(t *testing.T) {
	t.Parallel()

	q := newFIFO()
	done := make(chan bool, 1)

	go func() {
		_, ok := q.pop()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	q.close()

	select {
	case ok := <-done:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("pop did not return after close")
	}
}

func TestFIFO_CloseAbandonsRemainingItems(t *testing.T) {
	t.Parallel()

	q := newFIFO()
	q.push(newMessage("a@example.com", "s", "b"))
	q.close()

	_, ok := q.pop()

	require.False(t, ok)
	require.Equal(t, 1, q.len())
}

func TestFIFO_PushAfterCloseStillAccepted(t *testing.T) {
	t.Parallel()

	q := newFIFO()
	q.close()
	q.push(newMessage("a@example.com", "s", "b"))

	require.Equal(t, 1, q.len())

	_, ok := q.pop()
	require.False(t, ok)
}
