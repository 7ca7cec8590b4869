package node

// Builder configures a Node's strategy before it is attached to the tree
// and started, mirroring the teacher's fluent-options supervisor
// construction.
type Builder struct {
	n *Node
}

// NewBuilder wraps a freshly created Node for configuration.
func NewBuilder(n *Node) *Builder {
	return &Builder{n: n}
}

// Strategy sets the supervision strategy. Default is OneForOne.
func (b *Builder) Strategy(s Strategy) *Builder {
	b.n.Strategy = s
	return b
}

// Build returns the configured Node.
func (b *Builder) Build() *Node {
	return b.n
}
