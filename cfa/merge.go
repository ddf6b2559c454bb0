package cfa

import "github.com/graphism/restructure/cfg"

// merge collapses p's nodes into a single meta-node carrying p's entry's
// from-pred and p's exit's to-succ, rewiring every edge that crossed the
// primitive's boundary onto the new node, and advancing g's entry if the
// primitive's entry was the graph's entry. Shared by every Prim
// implementation; grounded on the single CFAPrim::merge the original
// source dispatches all six variants through.
func merge(p Prim, g *cfg.Graph) cfg.Node {
	p.insertNeededNode(g)

	entry := p.EntryNode()
	exit := p.ExitNode()
	nodes := p.Nodes()
	isRoot := entry == g.Entry()

	entryPreds := g.Preds(entry)
	exitSuccs := g.Succs(exit)

	for _, n := range nodes {
		g.RemoveNode(n)
	}

	newNode := cfg.MetaNode(entry, exit)

	for _, pred := range entryPreds {
		if !nodesContain(nodes, pred) {
			g.AddEdge(pred, newNode)
		}
	}
	for _, succ := range exitSuccs {
		if !nodesContain(nodes, succ) {
			g.AddEdge(newNode, succ)
		}
	}

	if isRoot {
		g.SetEntry(newNode)
	}

	return newNode
}
