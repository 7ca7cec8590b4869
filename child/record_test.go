package child

import (
	"testing"

	"github.com/go-garrison/garrison/envelope"
)

func noopBehavior() Behavior {
	return FuncBehavior{Func: func(ctx Context, msg envelope.Message) {}}
}

func TestNewAssignsFreshIdentityAndPairedMailbox(t *testing.T) {
	r1 := New(noopBehavior(), envelope.Wrap("hi"), 1)
	r2 := New(noopBehavior(), envelope.Wrap("hi"), 1)

	if r1.ID == "" || r1.ID == r2.ID {
		t.Fatalf("expected distinct, non-empty identities")
	}

	r1.Producer.Send(envelope.Wrap("ping"))
	if r1.Consumer.Len() != 1 || r2.Consumer.Len() != 0 {
		t.Fatalf("expected r1's producer to feed r1's own consumer only")
	}
}

func TestNewClampsRedundancyToAtLeastOne(t *testing.T) {
	r := New(noopBehavior(), envelope.Wrap("hi"), 0)

	if r.Redundancy != 1 {
		t.Fatalf("expected redundancy to clamp to 1, got %d", r.Redundancy)
	}
}

func TestRespawnPreservesIdentityWithFreshMailbox(t *testing.T) {
	r := New(noopBehavior(), envelope.Wrap("hi"), 1)
	r.Producer.Send(envelope.Wrap("queued before restart"))

	respawned := r.Respawn()

	if respawned.ID != r.ID {
		t.Fatalf("expected identity to be preserved across respawn")
	}
	if respawned.Consumer.Len() != 0 {
		t.Fatalf("expected a fresh mailbox on respawn, got %d queued", respawned.Consumer.Len())
	}
}
