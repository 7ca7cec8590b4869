// Package tree implements the single rooted supervision tree: the
// exclusive owner of every supervisor node, guarded by one lock that
// protects structural mutation and any reads that must be consistent with
// it.
package tree

import (
	"sync"

	"github.com/go-garrison/garrison/child"
	"github.com/go-garrison/garrison/node"
)

// Tree is the rooted tree of supervisor nodes. The zero value is not
// usable; construct with New.
type Tree struct {
	mu   sync.Mutex
	root *node.Node
}

// New creates a tree with an implicit root supervisor using the default
// OneForOne strategy, as spec.md §3 requires.
func New() *Tree {
	return &Tree{root: node.New("root", "root")}
}

// Root returns the tree's root supervisor node.
func (t *Tree) Root() *node.Node {
	return t.root
}

// Insert places a supervisor into the tree under the placement rule of
// spec.md §3: pre-order traversal for the first existing node whose URN
// equals n's; that node becomes n's parent. If none matches, n is attached
// under the root. Insertion is a single critical section.
func (t *Tree) Insert(n *node.Node) *node.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	parent := findByURN(t.root, n.URN)
	if parent == nil {
		parent = t.root
	}

	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

func findByURN(start *node.Node, urn string) *node.Node {
	for _, c := range start.Children {
		if c.URN == urn {
			return c
		}
		if found := findByURN(c, urn); found != nil {
			return found
		}
	}
	return nil
}

// AppendDescendant installs rec into owner.Descendants under the tree
// lock.
func (t *Tree) AppendDescendant(owner *node.Node, rec *child.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	owner.Descendants = append(owner.Descendants, rec)
}

// AppendKilled records rec as killed and pending restart, under the tree
// lock.
func (t *Tree) AppendKilled(owner *node.Node, rec *child.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	owner.Killed = append(owner.Killed, rec)
}

// ReplaceDescendant swaps the descendant with rec.ID for rec (a respawned
// record with fresh mailbox endpoints and the same identity) and clears
// any Killed entries sharing that identity, marking the restart as
// complete for that child. It is a single critical section.
func (t *Tree) ReplaceDescendant(owner *node.Node, rec *child.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, d := range owner.Descendants {
		if d.ID == rec.ID {
			owner.Descendants[i] = rec
			break
		}
	}

	filtered := owner.Killed[:0:0]
	for _, k := range owner.Killed {
		if k.ID != rec.ID {
			filtered = append(filtered, k)
		}
	}
	owner.Killed = filtered
}

// Snapshot takes a consistent, point-in-time view of owner's parent,
// descendants and killed bookkeeping under the tree lock, for handing into
// a child.Context. The lock is released before the caller sees the result
// — the engine never holds the tree lock across user code.
func (t *Tree) Snapshot(owner *node.Node) (*child.ParentSnapshot, []child.Snapshot, []child.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return owner.Parent.Snapshot(), owner.DescendantSnapshots(), owner.KilledSnapshots()
}

// Strategy reads owner's current strategy under the tree lock.
func (t *Tree) Strategy(owner *node.Node) node.Strategy {
	t.mu.Lock()
	defer t.mu.Unlock()
	return owner.Strategy
}

// TerminationTargets computes, under the tree lock, which descendants of
// owner should receive Terminate given its current Killed bookkeeping.
func (t *Tree) TerminationTargets(owner *node.Node) []*child.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return node.TerminationTargets(owner)
}

// RestartSet reads owner's current Killed bookkeeping under the tree lock
// and returns it as the restart set.
func (t *Tree) RestartSet(owner *node.Node) []*child.Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return node.RestartSet(owner)
}

// Walk visits every supervisor node in pre-order under a single critical
// section, for diagnostics that need a consistent view of the whole tree
// rather than one supervisor at a time.
func (t *Tree) Walk(visit func(*node.Node)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var walk func(*node.Node)
	walk = func(n *node.Node) {
		visit(n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t.root)
}
