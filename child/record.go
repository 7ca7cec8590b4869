// Package child implements the child record: identity, cloneable behavior,
// initial message, redundancy factor, and mailbox endpoints installed
// under a supervisor.
package child

import (
	"sync/atomic"

	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/id"
	"github.com/go-garrison/garrison/mailbox"
)

// Record is a child process's persistent identity and behavior. Producer
// and Consumer are either both present or both absent — they are installed
// together at creation and on every restart.
type Record struct {
	ID       string
	Behavior Behavior
	Initial  envelope.Message
	// Redundancy is how many concurrent instances were requested of the
	// spawn call that produced this record. Each instance gets its own
	// fresh identity and mailbox (see DESIGN.md for why this, rather than
	// sharing one identity, resolves spec.md's open question on
	// redundancy semantics); this field is informational only.
	Redundancy int

	Producer mailbox.Producer
	Consumer mailbox.Consumer

	// CascadeTerminated is set by the engine, right before sending
	// Terminate to this record as part of a OneForAll/RestForOne cascade,
	// so that the record's own completion handler can tell a
	// supervisor-induced cooperative shutdown apart from an ordinary
	// caller-driven one (only the former is recorded as killed — see
	// DESIGN.md's resolution of the §4.3/§4.4 completion-handler tension).
	CascadeTerminated atomic.Bool

	// Done is closed when this instance's task returns, letting fault
	// recovery wait for cascade-terminated siblings to actually finish
	// before computing the restart set.
	Done chan struct{}
}

// New allocates a fresh child record with a new identity and a fresh
// mailbox.
func New(behavior Behavior, initial envelope.Message, redundancy int) *Record {
	if redundancy < 1 {
		redundancy = 1
	}
	p, c := mailbox.New()
	return &Record{
		ID:         id.New(),
		Behavior:   behavior,
		Initial:    initial,
		Redundancy: redundancy,
		Producer:   p,
		Consumer:   c,
		Done:       make(chan struct{}),
	}
}

// Respawn produces a new record for a restart: same identity, cloned
// behavior and initial message, fresh mailbox endpoints. Per spec.md §3,
// identity is preserved across restarts while mailbox endpoints are
// replaced.
func (r *Record) Respawn() *Record {
	p, c := mailbox.New()
	return &Record{
		ID:         r.ID,
		Behavior:   r.Behavior.Clone(),
		Initial:    r.Initial.Clone(),
		Redundancy: r.Redundancy,
		Producer:   p,
		Consumer:   c,
		Done:       make(chan struct{}),
	}
}

// Snapshot projects this record into the read-only form handed to sibling
// children's contexts.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{ID: r.ID, Producer: r.Producer}
}
