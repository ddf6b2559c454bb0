package cfg

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/flow"
	"gonum.org/v1/gonum/graph/iterator"
)

// Dominates returns true iff every path from the graph's entry to `to`
// passes through `through`. A node dominates itself, even if it is not
// (yet) part of the graph. The dominance query handles cycles: it is
// backed by a dominator tree (gonum.org/v1/gonum/graph/flow.Dominators)
// computed over an int64-ID adapter view of the graph's current adjacency,
// cached until the next mutating call and rebuilt lazily on demand — the
// same library the teacher's cfa.struct2Way uses for the same purpose,
// applied here to the pair-identity node model instead of a DOT-sourced
// gonum graph.
func (g *Graph) Dominates(through, to Node) bool {
	if through == to {
		return true
	}
	t := g.dominatorTree()
	if t == nil {
		return false
	}
	toID, ok := t.idOf[to]
	if !ok {
		return false
	}
	throughID, ok := t.idOf[through]
	if !ok {
		return false
	}
	cur := t.tree.DominatorOf(toID)
	for cur != nil {
		if cur.ID() == throughID {
			return true
		}
		next := t.tree.DominatorOf(cur.ID())
		if next == nil || next.ID() == cur.ID() {
			break
		}
		cur = next
	}
	return false
}

// domTree caches a computed dominator tree alongside the ID assignment it
// was built with.
type domTree struct {
	tree  flow.DominatorTree
	idOf  map[Node]int64
	nodes map[int64]Node
}

// dominatorTree returns the cached dominator tree, rebuilding it if the
// graph has been mutated since the last build. Returns nil if the entry
// node isn't part of the graph (e.g. an empty graph under test).
func (g *Graph) dominatorTree() *domTree {
	if !g.domDirty && g.domTree != nil {
		return g.domTree
	}
	if !g.nodes.Contains(g.entry) {
		g.domTree = nil
		g.domDirty = false
		return nil
	}

	idOf := make(map[Node]int64, g.nodes.Len())
	nodes := make(map[int64]Node, g.nodes.Len())
	for i, n := range g.nodes.Values() {
		id := int64(i)
		idOf[n] = id
		nodes[id] = n
	}

	view := &domGraphView{g: g, idOf: idOf, nodes: nodes}
	tree := flow.Dominators(view.nodeFor(g.entry), view)

	g.domTree = &domTree{tree: tree, idOf: idOf, nodes: nodes}
	g.domDirty = false
	return g.domTree
}

// domGraphView adapts a Graph's current adjacency to gonum's graph.Directed
// interface, which requires int64 node identities. It is rebuilt whenever
// the dominator tree cache is invalidated; it is not kept around longer
// than a single flow.Dominators call.
type domGraphView struct {
	g     *Graph
	idOf  map[Node]int64
	nodes map[int64]Node
}

type domNode int64

func (n domNode) ID() int64 { return int64(n) }

func (v *domGraphView) nodeFor(n Node) graph.Node {
	return domNode(v.idOf[n])
}

func (v *domGraphView) Node(id int64) graph.Node {
	if _, ok := v.nodes[id]; !ok {
		return nil
	}
	return domNode(id)
}

func (v *domGraphView) Nodes() graph.Nodes {
	out := make([]graph.Node, 0, len(v.nodes))
	for id := range v.nodes {
		out = append(out, domNode(id))
	}
	return iterator.NewOrderedNodes(out)
}

func (v *domGraphView) From(id int64) graph.Nodes {
	n, ok := v.nodes[id]
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	succs := v.g.Succs(n)
	out := make([]graph.Node, 0, len(succs))
	for _, s := range succs {
		out = append(out, domNode(v.idOf[s]))
	}
	return iterator.NewOrderedNodes(out)
}

func (v *domGraphView) To(id int64) graph.Nodes {
	n, ok := v.nodes[id]
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	preds := v.g.Preds(n)
	out := make([]graph.Node, 0, len(preds))
	for _, p := range preds {
		out = append(out, domNode(v.idOf[p]))
	}
	return iterator.NewOrderedNodes(out)
}

func (v *domGraphView) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

func (v *domGraphView) HasEdgeFromTo(uid, vid int64) bool {
	u, ok := v.nodes[uid]
	if !ok {
		return false
	}
	w, ok := v.nodes[vid]
	if !ok {
		return false
	}
	return v.g.HasEdge(u, w)
}

func (v *domGraphView) Edge(uid, vid int64) graph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return domEdge{from: domNode(uid), to: domNode(vid)}
}

type domEdge struct {
	from, to domNode
}

func (e domEdge) From() graph.Node         { return e.from }
func (e domEdge) To() graph.Node           { return e.to }
func (e domEdge) ReversedEdge() graph.Edge { return domEdge{from: e.to, to: e.from} }
