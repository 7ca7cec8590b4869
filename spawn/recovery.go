package spawn

import (
	"sync"

	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/executor"
	"github.com/go-garrison/garrison/logging"
	"github.com/go-garrison/garrison/node"
	"github.com/go-garrison/garrison/tree"
)

// faultedStack is the process-wide record of supervisors currently inside
// Recover, outermost first. spec.md §4.5 models fault recovery as
// re-entrant: a restarted child panicking again before its sibling
// recoveries have finished pushes a second entry for the same (or another)
// supervisor rather than recursing through Go's call stack.
var (
	faultedMu   sync.Mutex
	faultedList []*node.Node
)

func pushFaulted(n *node.Node) {
	faultedMu.Lock()
	faultedList = append(faultedList, n)
	faultedMu.Unlock()
}

func popFaulted() {
	faultedMu.Lock()
	faultedList = faultedList[:len(faultedList)-1]
	faultedMu.Unlock()
}

// FaultedDepth reports how many Recover calls are currently in flight,
// across every supervisor. It exists so tests can assert the stack always
// drains back to zero once recovery completes.
func FaultedDepth() int {
	faultedMu.Lock()
	defer faultedMu.Unlock()
	return len(faultedList)
}

// step tags the two states of the restart trampoline (spec.md §4.5):
// traverse walks the current restart set one record at a time, complete
// ends the entry. Modeling this as explicit tagged states, rather than a
// plain for-loop, keeps the control flow re-entrant: a panic inside
// submit's own completion handler pushes a fresh Recover entry instead of
// unwinding this one.
type step int

const (
	stepTraverse step = iota
	stepComplete
)

// Recover is the fault-recovery trampoline: it is called once per panicked
// child instance, after that instance's completion handler has already
// recorded it as killed. It terminates owner's other affected children per
// its strategy, waits for them to actually finish, then restarts everything
// in owner's killed set. The engine never force-kills a termination target:
// Recover waits for each one to return, so a target that ignores Terminate
// blocks this call indefinitely.
func Recover(tr *tree.Tree, ex executor.Executor, owner *node.Node) {
	pushFaulted(owner)
	defer popFaulted()

	targets := tr.TerminationTargets(owner)
	for _, rec := range targets {
		rec.CascadeTerminated.Store(true)
		rec.Producer.Send(envelope.Terminate)
	}
	for _, rec := range targets {
		<-rec.Done
	}

	set := tr.RestartSet(owner)

	st := stepTraverse
	for st == stepTraverse {
		if len(set) == 0 {
			st = stepComplete
			continue
		}

		rec := set[len(set)-1]
		set = set[:len(set)-1]

		respawned := rec.Respawn()
		tr.ReplaceDescendant(owner, respawned)
		// An executor rejection here means the platform itself is shutting
		// down; there is no caller left to report it to, so it is only
		// logged and the record stays un-restarted in owner.Descendants.
		if err := submit(tr, ex, owner, respawned); err != nil {
			logging.Error("executor rejected restart", logging.Fields{
				"child.id":       respawned.ID,
				"supervisor.urn": owner.URN,
				"error":          err.Error(),
			})
		}
	}
}
