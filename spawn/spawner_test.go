package spawn

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/go-garrison/garrison/child"
	"github.com/go-garrison/garrison/envelope"
	"github.com/go-garrison/garrison/executor"
	"github.com/go-garrison/garrison/tree"
)

// echoBehavior replies on out, prefixed with tag, for every non-Terminate
// message it receives, until Terminate arrives.
func echoBehavior(out chan<- string, tag string) child.Func {
	return func(ctx child.Context, msg envelope.Message) {
		ctx.Hook(func(m envelope.Message) {
			if s, ok := envelope.Unwrap[string](m); ok {
				out <- tag + ":" + s
			}
		})
	}
}

// flakyBehavior panics on its first run and signals restarted on every
// later one, then blocks until Terminate.
func flakyBehavior(runs *int32, restarted chan<- struct{}) child.Func {
	return func(ctx child.Context, msg envelope.Message) {
		if atomic.AddInt32(runs, 1) == 1 {
			panic("boom")
		}
		restarted <- struct{}{}
		ctx.Hook(func(envelope.Message) {})
	}
}

// currentProducer looks up the live mailbox producer for recID, as it
// stands after any restarts — a Handle captured before a restart points at
// an abandoned mailbox, so tests that must address a child post-restart go
// through the tree instead.
func currentProducer(t *testing.T, tr *tree.Tree, recID string) child.Snapshot {
	t.Helper()
	_, descendants, _ := tr.Snapshot(tr.Root())
	for _, d := range descendants {
		if d.ID == recID {
			return d
		}
	}
	t.Fatalf("record %s not found among current descendants", recID)
	return child.Snapshot{}
}

func TestOneForOneRestartsOnlyThePanickedChild(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := tree.New()
	ex := executor.NewPool()
	root := tr.Root()

	var runs int32
	restarted := make(chan struct{}, 1)
	flaky, err := Spawn(tr, ex, root, child.FuncBehavior{Func: flakyBehavior(&runs, restarted)}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	siblingMsgs := make(chan string, 1)
	sibling, err := Spawn(tr, ex, root, child.FuncBehavior{Func: echoBehavior(siblingMsgs, "sib")}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	select {
	case <-restarted:
	case <-time.After(time.Second):
		t.Fatal("panicked child was not restarted")
	}

	sibling[0].Producer.Send(envelope.Wrap("ping"))
	select {
	case msg := <-siblingMsgs:
		require.Equal(t, "sib:ping", msg)
	case <-time.After(time.Second):
		t.Fatal("sibling did not respond to messages — was it terminated by mistake?")
	}

	require.Equal(t, 0, FaultedDepth())
	require.Empty(t, root.Killed, "killed bookkeeping should be cleared once the restart completes")

	flakyNow := currentProducer(t, tr, flaky[0].ID)
	flakyNow.Producer.Send(envelope.Terminate)
	sibling[0].Producer.Send(envelope.Terminate)
	ex.Wait()
}

func TestCleanTerminateProducesNoKilledEntry(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := tree.New()
	ex := executor.NewPool()
	root := tr.Root()

	msgs := make(chan string, 1)
	handles, err := Spawn(tr, ex, root, child.FuncBehavior{Func: echoBehavior(msgs, "a")}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	handles[0].Producer.Send(envelope.Wrap("x"))
	<-msgs

	handles[0].Producer.Send(envelope.Terminate)
	ex.Wait()

	require.Empty(t, root.Killed, "a caller-initiated Terminate is not a failure")
	require.Equal(t, 0, FaultedDepth())
}

func TestOneForAllCascadesAndRestartsSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := tree.New()
	ex := executor.NewPool()
	root := tr.Root()
	root.Strategy = "one_for_all"

	var flakyRuns int32
	flakyRestarted := make(chan struct{}, 1)
	flaky, err := Spawn(tr, ex, root, child.FuncBehavior{Func: flakyBehavior(&flakyRuns, flakyRestarted)}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	var siblingRuns int32
	siblingRestarted := make(chan struct{}, 1)
	sibling, err := Spawn(tr, ex, root, child.FuncBehavior{Func: flakyRunCounter(&siblingRuns, siblingRestarted)}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	select {
	case <-flakyRestarted:
	case <-time.After(time.Second):
		t.Fatal("panicked child was not restarted")
	}
	select {
	case <-siblingRestarted:
	case <-time.After(time.Second):
		t.Fatal("sibling was not cascaded and restarted under one_for_all")
	}

	require.Equal(t, 0, FaultedDepth())
	require.Empty(t, root.Killed)

	flakyNow := currentProducer(t, tr, flaky[0].ID)
	siblingNow := currentProducer(t, tr, sibling[0].ID)
	flakyNow.Producer.Send(envelope.Terminate)
	siblingNow.Producer.Send(envelope.Terminate)
	ex.Wait()
}

func TestRestForOneRestartsOnlyTrailingSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	tr := tree.New()
	ex := executor.NewPool()
	root := tr.Root()
	root.Strategy = "rest_for_one"

	leadMsgs := make(chan string, 1)
	lead, err := Spawn(tr, ex, root, child.FuncBehavior{Func: echoBehavior(leadMsgs, "lead")}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	var flakyRuns int32
	flakyRestarted := make(chan struct{}, 1)
	flaky, err := Spawn(tr, ex, root, child.FuncBehavior{Func: flakyBehavior(&flakyRuns, flakyRestarted)}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	var trailRuns int32
	trailRestarted := make(chan struct{}, 1)
	trail, err := Spawn(tr, ex, root, child.FuncBehavior{Func: flakyRunCounter(&trailRuns, trailRestarted)}, envelope.Wrap(0), 1)
	require.NoError(t, err)

	select {
	case <-flakyRestarted:
	case <-time.After(time.Second):
		t.Fatal("panicked child was not restarted")
	}
	select {
	case <-trailRestarted:
	case <-time.After(time.Second):
		t.Fatal("trailing sibling was not restarted under rest_for_one")
	}

	lead[0].Producer.Send(envelope.Wrap("ping"))
	select {
	case msg := <-leadMsgs:
		require.Equal(t, "lead:ping", msg)
	case <-time.After(time.Second):
		t.Fatal("leading sibling did not respond — should be unaffected by rest_for_one")
	}

	require.Equal(t, 0, FaultedDepth())
	require.Empty(t, root.Killed)

	lead[0].Producer.Send(envelope.Terminate)
	currentProducer(t, tr, flaky[0].ID).Producer.Send(envelope.Terminate)
	currentProducer(t, tr, trail[0].ID).Producer.Send(envelope.Terminate)
	ex.Wait()
}

// flakyRunCounter is like flakyBehavior but never panics itself — it is
// restarted only as a cascade target, so its own run count just needs to
// tell a first run from a post-restart one.
func flakyRunCounter(runs *int32, restarted chan<- struct{}) child.Func {
	return func(ctx child.Context, msg envelope.Message) {
		if atomic.AddInt32(runs, 1) > 1 {
			restarted <- struct{}{}
		}
		ctx.Hook(func(envelope.Message) {})
	}
}
