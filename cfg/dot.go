package cfg

import (
	"fmt"
	"sort"

	"bitbucket.org/zombiezen/cardcpx/natsort"
	"github.com/graphism/simple"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// DOT renders the graph in Graphviz DOT format, for -dot debug dumps from
// cmd/restructure. It builds a throwaway github.com/graphism/simple graph
// from the current node set and adjacency, labels the entry node, and
// marshals it with gonum's dot encoder — the same two libraries the
// teacher's cfg/graph.go and cfg/encoding.go combine for its own
// DOT-format Graph.String, adapted here to build the dot.Graph from the
// pair-identity adjacency model instead of wrapping it directly.
func (g *Graph) DOT() string {
	dg := simple.NewDirectedGraph()
	nodes := make(map[Node]*dotNode, g.nodes.Len())
	for _, n := range g.nodes.Values() {
		dn := &dotNode{Node: dg.NewNode(), id: n.String(), attrs: dotAttrs{}}
		if n == g.entry {
			dn.attrs["label"] = "entry"
		}
		dg.AddNode(dn)
		nodes[n] = dn
	}
	for _, n := range g.nodes.Values() {
		for _, s := range g.Succs(n) {
			dg.SetEdge(&dotEdge{Edge: dg.NewEdge(nodes[n], nodes[s]), attrs: dotAttrs{}})
		}
	}
	data, err := dot.Marshal(dg, g.entry.String(), "", "\t", false)
	if err != nil {
		panic(fmt.Errorf("cfg: unable to marshal graph in DOT format: %v", err))
	}
	return string(data)
}

type dotNode struct {
	graph.Node
	id    string
	attrs dotAttrs
}

func (n *dotNode) DOTID() string                   { return n.id }
func (n *dotNode) Attributes() []encoding.Attribute { return n.attrs.attributes() }

type dotEdge struct {
	graph.Edge
	attrs dotAttrs
}

func (e *dotEdge) Attributes() []encoding.Attribute { return e.attrs.attributes() }

type dotAttrs map[string]string

// attributes returns the attributes sorted by natural order of their key,
// matching the teacher's sortByDOTID use of natsort for stable, human-
// friendly (not lexicographic) ordering in generated DOT output.
func (a dotAttrs) attributes() []encoding.Attribute {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return natsort.Less(keys[i], keys[j]) })
	out := make([]encoding.Attribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, encoding.Attribute{Key: k, Value: a[k]})
	}
	return out
}
