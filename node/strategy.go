package node

// Strategy is the rule mapping a child failure to a restart set.
type Strategy string

const (
	// OneForOne restarts only the children recorded as killed; siblings
	// continue untouched.
	OneForOne Strategy = "one_for_one"
	// OneForAll terminates every descendant cooperatively and restarts
	// whichever of them come back recorded as killed. The engine does not
	// preemptively add living siblings to the restart set — see
	// DESIGN.md's note on the cooperative-Terminate user contract.
	OneForAll Strategy = "one_for_all"
	// RestForOne terminates the descendants installed after each killed
	// child (in insertion order) and restarts whichever come back
	// recorded as killed.
	RestForOne Strategy = "rest_for_one"
)

// Default is the strategy a freshly constructed supervisor uses unless a
// Builder changes it.
const Default = OneForOne
