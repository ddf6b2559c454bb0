// Package cfa finds and collapses control flow primitives in a cfg.Graph.
//
// A primitive is a small group of nodes performing one structured-control
// task (a loop, a conditional, a plain sequence). FindAll repeatedly finds
// the highest-priority primitive still present in the graph and merges it
// into a single node, until only the entry node remains or no primitive
// can be found — in which case the graph is irreducible by this analysis.
package cfa

import "github.com/graphism/restructure/cfg"

// Prim is a control flow primitive located in a graph: a contiguous group
// of nodes recognized as a loop, conditional, or sequence. Implementations
// are PreconditionLoop, PostconditionLoop, OnewayConditional,
// OnewayReturnConditional, TwowayConditional, and StatementSequence — a
// fixed set, modeled as a tagged union rather than left open for new
// implementations to register.
type Prim interface {
	// EntryNode returns the node at which control enters the primitive.
	EntryNode() cfg.Node
	// ExitNode returns the node at which control leaves the primitive.
	ExitNode() cfg.Node
	// Nodes returns every node the primitive spans, entry and exit
	// included.
	Nodes() []cfg.Node
	// String renders the primitive the way it would appear in recovered
	// pseudocode, e.g. "-> if ( cond ) { body } -> exit".
	String() string

	// insertNeededNode splices a temporary node before exit when exit has
	// predecessors outside the primitive, so that merging the primitive
	// cannot also swallow unrelated incoming edges. See each primitive's
	// insertNeededNode for its exact precondition.
	insertNeededNode(g *cfg.Graph)
}

// finders lists the primitive-detection functions in the fixed priority
// order FindFirst tries them in: loops before conditionals, and
// conditionals before the fallback statement sequence. This order is load
// bearing — trying StatementSequence first would immediately collapse
// every candidate loop body before the loop around it is ever seen.
var finders = []func(g *cfg.Graph) (Prim, bool){
	func(g *cfg.Graph) (Prim, bool) { return findPreconditionLoop(g) },
	func(g *cfg.Graph) (Prim, bool) { return findPostconditionLoop(g) },
	func(g *cfg.Graph) (Prim, bool) { return findOnewayConditional(g) },
	func(g *cfg.Graph) (Prim, bool) { return findOnewayReturnConditional(g) },
	func(g *cfg.Graph) (Prim, bool) { return findTwowayConditional(g) },
	func(g *cfg.Graph) (Prim, bool) { return findStatementSequence(g) },
}

// FindFirst returns the highest-priority primitive present in g, or false
// if none of the six primitives match any node.
func FindFirst(g *cfg.Graph) (Prim, bool) {
	for _, find := range finders {
		if p, ok := find(g); ok {
			return p, true
		}
	}
	return nil, false
}

func nodesContain(nodes []cfg.Node, n cfg.Node) bool {
	for _, x := range nodes {
		if x == n {
			return true
		}
	}
	return false
}

// isTemp reports whether name was generated by Graph.CreateTemporaryNode.
// Every find_first guard rejects a candidate whose boundary name is a
// temporary already consumed as a to_succ/from_pred by an earlier merge,
// since that would mean re-matching a region that insertNeededNode already
// isolated.
func isTemp(g *cfg.Graph, name cfg.Name) bool {
	for _, t := range g.Temps() {
		if t == name {
			return true
		}
	}
	return false
}
