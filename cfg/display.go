package cfg

import (
	"fmt"
	"strings"

	"github.com/mewkiz/pkg/term"
)

// String renders the graph as the predecessors/node/successors listing used
// throughout this module's debug output, one block per node in insertion
// order:
//
//	↙‾ pred1, pred2
//	node_name
//	↘_ succ1, succ2
//
// The entry node's name is printed in bold green; every other node's name
// is printed in bold white. Adapted from the teacher's dot-based
// Graph.String in cfg/graph.go, replaced with the plain ANSI listing the
// original source's ControlFlowGraph::fmt used, since a Node here has no
// DOT attributes to round-trip.
func (g *Graph) String() string {
	var b strings.Builder
	for i, n := range g.nodes.Values() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", term.WhiteBold("↙‾"), joinNodes(g.Preds(n)))
		if n == g.entry {
			fmt.Fprintf(&b, "%s\n", term.GreenBold(n.String()))
		} else {
			fmt.Fprintf(&b, "%s\n", term.WhiteBold(n.String()))
		}
		fmt.Fprintf(&b, "%s %s\n", term.WhiteBold("↘_"), joinNodes(g.Succs(n)))
	}
	return b.String()
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
