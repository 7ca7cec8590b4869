package child

import (
	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/mailbox"
)

// Context is handed to a child's Behavior on each run. Parent, Descendants
// and Killed are snapshots taken under the tree lock at spawn/restart time
// and released immediately after — user code must not expect them to
// reflect later tree mutations.
type Context struct {
	// Parent is absent (nil) for children spawned at the root.
	Parent      *ParentSnapshot
	Descendants []Snapshot
	Killed      []Snapshot

	Producer mailbox.Producer
	Consumer mailbox.Consumer
}

// Hook parks the current goroutine on the child's mailbox, invoking handle
// for every message received — including the ones sent after the initial
// message — until Terminate arrives, at which point Hook returns so the
// Behavior can unwind cleanly (a cooperative exit, not a failure: no
// Killed entry is produced for it, unless the engine itself sent the
// Terminate as part of a OneForAll/RestForOne cascade). It also returns if
// the mailbox is closed. handle is never called with Terminate itself.
func (c Context) Hook(handle func(envelope.Message)) {
	for {
		msg, ok := c.Consumer.Receive()
		if !ok {
			return
		}
		if envelope.IsTerminate(msg) {
			return
		}
		handle(msg)
	}
}
