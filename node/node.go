// Package node implements the supervisor node: identity, URN, strategy,
// parent back-link, and the descendants/killed bookkeeping a strategy acts
// on.
package node

import (
	"fmt"

	"github.com/go-garrison/garrison/child"
	"github.com/go-garrison/garrison/id"
)

// Node is a supervisor. Parent is a weak back-link — a lookup relation
// resolved through the owning Tree, never ownership; the Tree is the
// exclusive owner of every Node.
type Node struct {
	ID       string
	Name     string
	System   string
	URN      string
	Strategy Strategy

	Parent *Node
	// Children is the tree-structural adjacency used for supervisor
	// placement (spec.md §3's pre-order traversal) — distinct from
	// Descendants, which holds this supervisor's own child records, not
	// sub-supervisors.
	Children []*Node

	// Descendants is the ordered sequence of child records installed
	// directly under this supervisor; order governs RestForOne semantics.
	Descendants []*child.Record
	// Killed is the ordered sequence of child records whose last instance
	// terminated abnormally and are pending restart. Every element of
	// Killed has the same identity as some past member of Descendants.
	Killed []*child.Record
}

// URNFor builds the stable (name, system) identity used for tree
// placement.
func URNFor(name, system string) string {
	return fmt.Sprintf("%s/%s", system, name)
}

// New creates a supervisor node with the default OneForOne strategy. It is
// not yet attached to any tree — attachment is the Tree's job.
func New(name, system string) *Node {
	return &Node{
		ID:       id.New(),
		Name:     name,
		System:   system,
		URN:      URNFor(name, system),
		Strategy: Default,
	}
}

// Snapshot projects this node into the read-only ParentSnapshot handed to
// a child's Context.
func (n *Node) Snapshot() *child.ParentSnapshot {
	if n == nil {
		return nil
	}
	return &child.ParentSnapshot{ID: n.ID, URN: n.URN, Strategy: string(n.Strategy)}
}

// DescendantSnapshots projects Descendants into child.Snapshot values.
func (n *Node) DescendantSnapshots() []child.Snapshot {
	out := make([]child.Snapshot, 0, len(n.Descendants))
	for _, rec := range n.Descendants {
		out = append(out, rec.Snapshot())
	}
	return out
}

// KilledSnapshots projects Killed into child.Snapshot values.
func (n *Node) KilledSnapshots() []child.Snapshot {
	out := make([]child.Snapshot, 0, len(n.Killed))
	for _, rec := range n.Killed {
		out = append(out, rec.Snapshot())
	}
	return out
}

// IndexOfDescendant returns the position of rec within Descendants by
// identity, or -1 if not present.
func (n *Node) IndexOfDescendant(recID string) int {
	for i, rec := range n.Descendants {
		if rec.ID == recID {
			return i
		}
	}
	return -1
}
