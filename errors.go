package garrison

import "errors"

// Lifecycle misuse and executor rejection are the only user-visible error
// kinds (spec.md §7): every in-flight child failure is internalized as a
// restart instead.
var (
	// ErrAlreadyInitialized is returned by Init/InitFromConfig on any call
	// after the first.
	ErrAlreadyInitialized = errors.New("garrison: platform already initialized")
	// ErrNotInitialized is returned by any operation that needs the
	// platform (Root, NewSupervisor, Spawn, Start, DumpTree) before Init has
	// run. ForceShutdown returns ErrForceShutdownWindow instead.
	ErrNotInitialized = errors.New("garrison: platform not initialized")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("garrison: platform already started")
	// ErrForceShutdownWindow is returned when ForceShutdown is called
	// outside its allowed window (before Init, or after it has already run
	// once) — it is documented as unstable and intended for tests only.
	ErrForceShutdownWindow = errors.New("garrison: force shutdown called outside its allowed window")
	// ErrExecutorRejected wraps an executor's rejection of a submitted
	// task, fatal and propagated to the caller of Spawn.
	ErrExecutorRejected = errors.New("garrison: executor rejected task")
)
