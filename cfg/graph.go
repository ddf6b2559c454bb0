package cfg

import (
	"fmt"
	"log"
	"os"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/internal/ordered"
)

// moduleName is the fragment used when generating temporary node names; see
// Graph.CreateTemporaryNode.
const moduleName = "RESTRUCTURE"

// dbg logs low-volume structural tracing to standard error, in the same
// shape as the teacher's package-level debug loggers.
var dbg = log.New(os.Stderr, term.RedBold("cfg:")+" ", 0)

// Graph is a mutable control flow graph. It is built once from a Function
// (see New) and is thereafter mutated only by package cfa's reduction
// driver; nothing in this package mutates a Graph concurrently with itself.
type Graph struct {
	entry Node
	nodes *ordered.UniqueSeq[Node]
	preds map[Node]*ordered.UniqueSeq[Node]
	succs map[Node]*ordered.UniqueSeq[Node]
	temps *ordered.UniqueSeq[Name]

	nextTemp uint64

	domTree  *domTree
	domDirty bool
}

// newEmpty returns a Graph with no nodes, ready for AddEdge calls. Used by
// New and by tests that build small graphs by hand.
func newEmpty() *Graph {
	return &Graph{
		nodes:    ordered.New[Node](),
		preds:    make(map[Node]*ordered.UniqueSeq[Node]),
		succs:    make(map[Node]*ordered.UniqueSeq[Node]),
		temps:    ordered.New[Name](),
		domDirty: true,
	}
}

// NewEmpty returns a Graph with no nodes, for building test fixtures or a
// graph recovered from something other than an ir.Func (e.g. a DOT file).
// Callers must call SetEntry before any dominance query.
func NewEmpty() *Graph { return newEmpty() }

// Entry returns the entry node of the graph.
func (g *Graph) Entry() Node { return g.entry }

// SetEntry overrides the entry node. A graph built with NewEmpty needs it
// before any dominance query; the cfa reduction driver calls it when a
// merge collapses through the current entry.
func (g *Graph) SetEntry(n Node) {
	g.entry = n
	g.domDirty = true
}

// Nodes returns every node currently in the graph, in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes.Values() }

// NumNodes returns the number of nodes currently in the graph.
func (g *Graph) NumNodes() int { return g.nodes.Len() }

// Preds returns the predecessors of n, in the order they were added. The
// returned slice is nil if no predecessor was ever recorded for n, and
// empty if every recorded predecessor has since been removed.
func (g *Graph) Preds(n Node) []Node {
	s, ok := g.preds[n]
	if !ok {
		return nil
	}
	return s.Values()
}

// Succs returns the successors of n, in the order they were added. The
// returned slice is nil if no successor was ever recorded for n, and empty
// if every recorded successor has since been removed.
func (g *Graph) Succs(n Node) []Node {
	s, ok := g.succs[n]
	if !ok {
		return nil
	}
	return s.Values()
}

// Temps returns every temporary name ever created in this graph, in
// creation order. Temporaries persist across the reduction even after the
// node they were spliced before has been merged away.
func (g *Graph) Temps() []Name { return g.temps.Values() }

// HasEdge reports whether there is an edge from u to v.
func (g *Graph) HasEdge(u, v Node) bool {
	s, ok := g.succs[u]
	return ok && s.Contains(v)
}

// AddEdge inserts a directed edge from u to v, registering both endpoints
// in the node set if they are not already present. Idempotent: adding the
// same edge twice has no further effect.
func (g *Graph) AddEdge(u, v Node) {
	g.nodes.Insert(u)
	g.nodes.Insert(v)
	if g.succs[u] == nil {
		g.succs[u] = ordered.New[Node]()
	}
	if g.preds[v] == nil {
		g.preds[v] = ordered.New[Node]()
	}
	g.succs[u].Insert(v)
	g.preds[v].Insert(u)
	g.domDirty = true
}

// RemoveNode deletes n along with every edge to or from it.
func (g *Graph) RemoveNode(n Node) {
	g.nodes.Remove(n)
	delete(g.preds, n)
	delete(g.succs, n)
	for _, preds := range g.preds {
		preds.Remove(n)
	}
	for _, succs := range g.succs {
		succs.Remove(n)
	}
	g.domDirty = true
}

// InsertNode splices node between after and before, requiring that an edge
// after->before already exists: that edge is removed and replaced with
// after->node and node->before.
func (g *Graph) InsertNode(node, after, before Node) {
	if s, ok := g.succs[after]; ok {
		s.Remove(before)
	}
	if s, ok := g.preds[before]; ok {
		s.Remove(after)
	}
	g.AddEdge(after, node)
	g.AddEdge(node, before)
}

// CreateTemporaryNode returns a fresh Name under the pattern
// "@<MODULE>_TEMPORARY_<n>", not yet inserted into the graph, and registers
// it in Temps. It retries with an incremented counter until it produces a
// name not already in use by some node in the graph.
func (g *Graph) CreateTemporaryNode() Name {
	var name Name
	for {
		name = Name(fmt.Sprintf("@%s_TEMPORARY_%d", moduleName, g.nextTemp))
		g.nextTemp++
		if !g.nodes.Contains(NodeOf(name)) {
			break
		}
	}
	g.temps.Insert(name)
	dbg.Printf("created temporary node %s", name)
	return name
}

// Clone returns a deep copy of g that shares no mutable state with it.
// Useful for running cfa.FindAll (which mutates its argument) while
// retaining the pre-reduction graph.
//
// Adapted from the teacher's cfg/copy.go, which copied nodes then edges
// between two gonum-backed graphs; this copies the node set and adjacency
// maps of the pair-identity model instead.
func (g *Graph) Clone() *Graph {
	out := newEmpty()
	out.entry = g.entry
	out.nextTemp = g.nextTemp
	for _, n := range g.nodes.Values() {
		out.nodes.Insert(n)
	}
	for u, succs := range g.succs {
		out.succs[u] = succs.Clone()
	}
	for v, preds := range g.preds {
		out.preds[v] = preds.Clone()
	}
	out.temps = g.temps.Clone()
	return out
}
