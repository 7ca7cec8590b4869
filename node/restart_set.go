package node

import "github.com/go-garrison/garrison/child"

// RestartSet computes the children to restart for a supervisor whose
// Killed bookkeeping has just gained new entries. Per spec.md §4.4 this is
// S.killed for every strategy — the strategies differ in which *other*
// children get terminated (see TerminationTargets), not in the restart set
// itself.
func RestartSet(n *Node) []*child.Record {
	out := make([]*child.Record, len(n.Killed))
	copy(out, n.Killed)
	return out
}

// TerminationTargets computes which currently-installed descendants
// should receive Terminate as a consequence of the strategy, given the
// node's current Killed bookkeeping. It never includes a record already in
// Killed. For OneForOne it is always empty.
func TerminationTargets(n *Node) []*child.Record {
	switch n.Strategy {
	case OneForAll:
		return withoutKilled(n, n.Descendants)
	case RestForOne:
		seen := make(map[string]struct{})
		var out []*child.Record
		for _, killed := range n.Killed {
			idx := n.IndexOfDescendant(killed.ID)
			if idx < 0 {
				continue
			}
			for _, rec := range n.Descendants[idx+1:] {
				if _, ok := seen[rec.ID]; ok {
					continue
				}
				seen[rec.ID] = struct{}{}
				out = append(out, rec)
			}
		}
		return withoutKilled(n, out)
	default: // OneForOne
		return nil
	}
}

func withoutKilled(n *Node, recs []*child.Record) []*child.Record {
	killed := make(map[string]struct{}, len(n.Killed))
	for _, k := range n.Killed {
		killed[k.ID] = struct{}{}
	}
	out := make([]*child.Record, 0, len(recs))
	for _, rec := range recs {
		if _, ok := killed[rec.ID]; ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}
