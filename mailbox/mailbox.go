// Package mailbox implements the unbounded-capacity
// multi-producer/single-consumer queue of envelopes used to deliver
// messages to a single child.
package mailbox

import (
	"container/list"
	"sync"

	"github.com/go-garrison/garrison/envelope"
)

// mailbox is the shared state behind a Producer/Consumer pair.
type mailbox struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  *list.List
	closed bool
}

// Producer is the send-side endpoint of a mailbox. It is cloneable (plain
// value copy, since it only carries a pointer to the shared queue) and
// Send never blocks.
type Producer struct {
	box *mailbox
}

// Consumer is the single receive-side endpoint of a mailbox.
type Consumer struct {
	box *mailbox
}

// New creates a fresh, empty mailbox and returns its producer and consumer
// endpoints. A restarted child gets a new mailbox (see child.Record.Respawn);
// messages left in the old one are not carried over.
func New() (Producer, Consumer) {
	box := &mailbox{queue: list.New()}
	box.cond = sync.NewCond(&box.mu)
	return Producer{box: box}, Consumer{box: box}
}

// Send enqueues msg. It never blocks. Sending on a closed mailbox is
// silently discarded — the engine treats this as benign since the target
// child is assumed already gone.
func (p Producer) Send(msg envelope.Message) {
	p.box.mu.Lock()
	defer p.box.mu.Unlock()

	if p.box.closed {
		return
	}
	p.box.queue.PushBack(msg)
	p.box.cond.Signal()
}

// Receive blocks until a message is available or the mailbox is closed. The
// second return value is false only when the mailbox was closed and
// drained.
func (c Consumer) Receive() (envelope.Message, bool) {
	c.box.mu.Lock()
	defer c.box.mu.Unlock()

	for c.box.queue.Len() == 0 && !c.box.closed {
		c.box.cond.Wait()
	}

	if c.box.queue.Len() == 0 {
		return nil, false
	}

	front := c.box.queue.Front()
	c.box.queue.Remove(front)
	return front.Value.(envelope.Message), true
}

// TryReceive polls for a message without blocking.
func (c Consumer) TryReceive() (envelope.Message, bool) {
	c.box.mu.Lock()
	defer c.box.mu.Unlock()

	if c.box.queue.Len() == 0 {
		return nil, false
	}

	front := c.box.queue.Front()
	c.box.queue.Remove(front)
	return front.Value.(envelope.Message), true
}

// Close marks the mailbox closed; any blocked Receive returns (nil,
// false), and further Sends are discarded. Close is idempotent.
func (c Consumer) Close() {
	c.box.mu.Lock()
	defer c.box.mu.Unlock()

	if c.box.closed {
		return
	}
	c.box.closed = true
	c.box.cond.Broadcast()
}

// Len reports the number of messages currently queued. It is a snapshot
// and may be stale by the time the caller observes it.
func (c Consumer) Len() int {
	c.box.mu.Lock()
	defer c.box.mu.Unlock()
	return c.box.queue.Len()
}
