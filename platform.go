package garrison

import (
	"sync"

	"github.com/go-garrison/garrison/config"
	"github.com/go-garrison/garrison/executor"
	"github.com/go-garrison/garrison/logging"
	"github.com/go-garrison/garrison/node"
	"github.com/go-garrison/garrison/tree"
)

// Platform is the process-wide runtime handle: the supervision tree, the
// executor child work runs on, and the blocking-run state. It is opaque —
// callers reach it only through the package-level functions below, which
// guard the single instance with one lock and a one-shot initializer
// (spec.md §9's "global singleton" design note).
type Platform struct {
	tree *tree.Tree
	ex   executor.Executor

	runMu   sync.Mutex
	started bool
	done    chan struct{}
}

var (
	instanceMu sync.Mutex
	instance   *Platform
)

// Init constructs the singleton platform with default configuration: the
// root supervisor and logging at info level. A second call, from any
// goroutine, returns ErrAlreadyInitialized — lifecycle misuse is reported
// by failing the operation, never retried (spec.md §7 kind 1).
func Init() error {
	return InitFromConfig(config.Default())
}

// InitFromConfig is Init with an explicit configuration, recovered from
// `mh84/bastion`'s `platform_from_config` as a distinct entry point
// alongside `platform()` (see SPEC_FULL.md §10).
func InitFromConfig(cfg config.Config) error {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return ErrAlreadyInitialized
	}

	logging.WithLogger(logging.NewLogrus(cfg.LogLevel, cfg.InTest))
	instance = &Platform{
		tree: tree.New(),
		ex:   executor.NewPool(),
		done: make(chan struct{}),
	}
	return nil
}

// reset tears the singleton down unconditionally. It is unexported and
// exists only so the package's own tests can run Init/InitFromConfig more
// than once within a single test binary.
func reset() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}

func current() (*Platform, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}

// Root returns the implicit top-level supervisor node installed at Init,
// wrapped as a Supervisor facade.
func Root() (*Supervisor, error) {
	p, err := current()
	if err != nil {
		return nil, err
	}
	return &Supervisor{p: p, n: p.tree.Root()}, nil
}

// NewSupervisor creates a supervisor with the default OneForOne strategy
// and inserts it into the tree using the pre-order placement rule
// (spec.md §3), exactly the `supervisor(name, system)` operation of
// spec.md §4.2. Use the returned Supervisor's Strategy method to change
// strategy before spawning children under it.
func NewSupervisor(name, system string) (*Supervisor, error) {
	p, err := current()
	if err != nil {
		return nil, err
	}
	b := node.NewBuilder(node.New(name, system))
	n := p.tree.Insert(b.Build())
	return &Supervisor{p: p, n: n}, nil
}
