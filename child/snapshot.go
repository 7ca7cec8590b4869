package child

import "github.com/go-garrison/garrison/mailbox"

// Snapshot is a point-in-time, read-only projection of a child record,
// handed into a sibling's Context. It is not updated as the tree mutates
// further; spec.md §4.5 documents this explicitly.
type Snapshot struct {
	ID       string
	Producer mailbox.Producer
}

// ParentSnapshot is a point-in-time projection of the owning supervisor,
// handed into a child's Context as Parent. It carries just enough identity
// for user code to log or correlate against; the tree itself is never
// reachable from it.
type ParentSnapshot struct {
	ID       string
	URN      string
	Strategy string
}
