package garrison

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/go-garrison/garrison/node"
)

// DumpTree renders the current supervision tree to w: one row per
// supervisor, with its URN, strategy, installed descendant count (children
// that have exited are still counted), and
// killed-pending count. It is purely observational — it never mutates the
// tree — and exists because a complete module should ship at least one
// way to inspect a running supervision tree without attaching a debugger.
func DumpTree(w io.Writer) error {
	p, err := current()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"URN", "Strategy", "Descendants", "Killed (pending restart)"})
	p.tree.Walk(func(n *node.Node) {
		table.Append([]string{
			n.URN,
			string(n.Strategy),
			strconv.Itoa(len(n.Descendants)),
			strconv.Itoa(len(n.Killed)),
		})
	})
	table.Render()
	return nil
}
