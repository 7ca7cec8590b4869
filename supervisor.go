package garrison

import (
	"fmt"

	"github.com/go-garrison/garrison/child"
	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/node"
	"github.com/go-garrison/garrison/spawn"
)

// Supervisor is the facade handed back by NewSupervisor/Root: a thin
// binding between a node.Node already attached to the platform's tree and
// the platform's executor, exposing the fluent strategy setter of
// spec.md §4.2 and a Spawn method bound to this supervisor.
type Supervisor struct {
	p *Platform
	n *node.Node
}

// Strategy sets the supervision strategy. It is safe to call only before
// any child has been spawned under this supervisor — spec.md §4.2 scopes
// it to "before start". Returns the receiver for fluent chaining.
func (s *Supervisor) Strategy(strat node.Strategy) *Supervisor {
	s.n.Strategy = strat
	return s
}

// Spawn installs redundancy (at least 1) independent instances of behavior
// under this supervisor, each wrapped in the panic guard of spec.md §4.3
// and submitted to the platform's executor. An executor rejection is
// wrapped in ErrExecutorRejected and returned to the caller.
func (s *Supervisor) Spawn(behavior child.Behavior, msg envelope.Message, redundancy int) ([]*spawn.Handle, error) {
	handles, err := spawn.Spawn(s.p.tree, s.p.ex, s.n, behavior, msg, redundancy)
	if err != nil {
		return handles, fmt.Errorf("%w: %v", ErrExecutorRejected, err)
	}
	return handles, nil
}

// Spawn is the root-supervisor convenience path of spec.md §4.3: exactly
// Spawn targeting the root supervisor.
func Spawn(behavior child.Behavior, msg envelope.Message, redundancy int) ([]*spawn.Handle, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}
	return root.Spawn(behavior, msg, redundancy)
}
