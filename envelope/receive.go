package envelope

// Case is one arm of a Receive type-case: it runs handler against msg's
// payload if msg was built by Wrap[T] for a matching T, and reports whether
// it fired.
type Case func(msg Message) (fired bool)

// On builds a Case that fires handler when msg carries a T payload. Arms
// are tried in the order they are passed to Receive; first match wins.
func On[T any](handler func(T)) Case {
	return func(msg Message) bool {
		v, ok := Unwrap[T](msg)
		if !ok {
			return false
		}
		handler(v)
		return true
	}
}

// Receive is the runtime type-case primitive: it tries each case in source
// order against msg and runs the first one that matches the concrete
// payload type. If none match and no default is supplied via Default, it
// is a no-op.
func Receive(msg Message, cases ...Case) {
	for _, c := range cases {
		if c(msg) {
			return
		}
	}
}

// Default builds a Case that always fires; pass it last to Receive to get
// default-arm behaviour.
func Default(handler func()) Case {
	return func(Message) bool {
		handler()
		return true
	}
}
