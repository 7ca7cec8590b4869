package mailbox

import (
	"testing"
	"time"

	"github.com/go-garrison/garrison/envelope"
	"go.uber.org/goleak"
)

func TestSendThenReceiveInOrder(t *testing.T) {
	p, c := New()

	p.Send(envelope.Wrap("first"))
	p.Send(envelope.Wrap("second"))

	m1, ok := c.Receive()
	if !ok {
		t.Fatalf("expected a message")
	}
	v1, _ := envelope.Unwrap[string](m1)
	if v1 != "first" {
		t.Fatalf("expected %q, got %q", "first", v1)
	}

	m2, ok := c.Receive()
	if !ok {
		t.Fatalf("expected a message")
	}
	v2, _ := envelope.Unwrap[string](m2)
	if v2 != "second" {
		t.Fatalf("expected %q, got %q", "second", v2)
	}
}

func TestSendNeverBlocks(t *testing.T) {
	p, _ := New()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			p.Send(envelope.Wrap(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Send blocked on an unbounded mailbox")
	}
}

func TestSendOnClosedMailboxIsSilentlyDiscarded(t *testing.T) {
	p, c := New()
	c.Close()

	p.Send(envelope.Wrap("too late"))

	if _, ok := c.Receive(); ok {
		t.Fatalf("expected no message after close")
	}
}

func TestReceiveUnblocksOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, c := New()

	done := make(chan struct{})
	go func() {
		if _, ok := c.Receive(); ok {
			t.Error("expected Receive to report closed")
		}
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	c.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Receive did not unblock after Close")
	}
}

func TestLenReflectsQueuedMessages(t *testing.T) {
	p, c := New()
	p.Send(envelope.Wrap(1))
	p.Send(envelope.Wrap(2))

	if got := c.Len(); got != 2 {
		t.Fatalf("expected len 2, got %d", got)
	}
}
