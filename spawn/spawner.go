// Package spawn implements the spawner (§4.3) and the fault-recovery
// trampoline (§4.5): installing children under a panic guard, and
// re-entrantly restarting them when they fail.
package spawn

import (
	"fmt"

	"github.com/go-garrison/garrison/child"
	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/executor"
	"github.com/go-garrison/garrison/logging"
	"github.com/go-garrison/garrison/node"
	"github.com/go-garrison/garrison/tree"
)

// Spawn installs redundancy (at least 1) independent instances of behavior
// under owner, each wrapped in a panic guard and submitted to ex. It
// returns one Handle per instance. An executor rejection is fatal and
// returned to the caller, per spec.md §7 kind 5 — already-submitted
// instances are not rolled back.
func Spawn(tr *tree.Tree, ex executor.Executor, owner *node.Node, behavior child.Behavior, msg envelope.Message, redundancy int) ([]*Handle, error) {
	if redundancy < 1 {
		redundancy = 1
	}

	handles := make([]*Handle, 0, redundancy)
	for i := 0; i < redundancy; i++ {
		rec := child.New(behavior, msg, redundancy)
		tr.AppendDescendant(owner, rec)

		if err := submit(tr, ex, owner, rec); err != nil {
			logging.Error("executor rejected child", logging.Fields{
				"child.id":       rec.ID,
				"supervisor.urn": owner.URN,
				"error":          err.Error(),
			})
			return handles, fmt.Errorf("spawn: executor rejected child %s: %w", rec.ID, err)
		}
		handles = append(handles, &Handle{ID: rec.ID, Producer: rec.Producer})
	}
	return handles, nil
}

// submit builds the execution closure for rec's current instance, runs it
// under a panic guard on ex, and installs the completion handler described
// in spec.md §4.3 step 5.
func submit(tr *tree.Tree, ex executor.Executor, owner *node.Node, rec *child.Record) error {
	task := func() {
		defer close(rec.Done)

		panicked := runGuarded(tr, owner, rec)
		abnormal := panicked || rec.CascadeTerminated.Load()
		if abnormal {
			tr.AppendKilled(owner, rec)
		}
		if panicked {
			logging.Error("child panicked", logging.Fields{
				"child.id":         rec.ID,
				"supervisor.urn":   owner.URN,
				"supervisor.id":    owner.ID,
				"supervisor.strat": string(owner.Strategy),
			})
			Recover(tr, ex, owner)
		}
	}
	return ex.Submit(task)
}

// runGuarded runs rec's behavior to completion, recovering any panic. It
// never lets a panic escape into the executor's worker goroutine.
func runGuarded(tr *tree.Tree, owner *node.Node, rec *child.Record) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()

	parent, descendants, killed := tr.Snapshot(owner)
	ctx := child.Context{
		Parent:      parent,
		Descendants: descendants,
		Killed:      killed,
		Producer:    rec.Producer,
		Consumer:    rec.Consumer,
	}
	rec.Behavior.Run(ctx, rec.Initial.Clone())
	return false
}
