package child

import "github.com/go-garrison/garrison/envelope"

// Behavior is the cloneable user closure of a child's behavior. Clone must
// produce a value safe to hand to a restarted instance independently of
// the original — for the common case of a stateless function this is just
// a value copy, which is what FuncBehavior implements.
type Behavior interface {
	Clone() Behavior
	Run(ctx Context, msg envelope.Message)
}

// Func is the signature of user code driving a child: it receives a
// context exposing tree snapshots and the child's mailbox, and the
// (possibly cloned) initial message.
type Func func(ctx Context, msg envelope.Message)

// FuncBehavior adapts a plain Func to Behavior. Cloning copies the func
// value; since Go closures already capture their free variables by
// reference, this matches the semantics of cloning a boxed closure in the
// originating model — independent restarts share whatever state the
// closure's author chose to capture, and nothing else.
type FuncBehavior struct {
	Func Func
}

func (f FuncBehavior) Clone() Behavior {
	return FuncBehavior{Func: f.Func}
}

func (f FuncBehavior) Run(ctx Context, msg envelope.Message) {
	f.Func(ctx, msg)
}
