package cfg

import (
	"reflect"
	"testing"
)

func nd(name string) Node { return NodeOf(Name(name)) }

func TestAddEdgeRegistersNodesAndAdjacency(t *testing.T) {
	g := newEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("A"), nd("C"))
	g.AddEdge(nd("A"), nd("B")) // idempotent

	want := []Node{nd("A"), nd("B"), nd("C")}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if got := g.Succs(nd("A")); !reflect.DeepEqual(got, []Node{nd("B"), nd("C")}) {
		t.Errorf("Succs(A) = %v", got)
	}
	if got := g.Preds(nd("B")); !reflect.DeepEqual(got, []Node{nd("A")}) {
		t.Errorf("Preds(B) = %v", got)
	}
	if !g.HasEdge(nd("A"), nd("B")) {
		t.Error("HasEdge(A, B) = false, want true")
	}
	if g.HasEdge(nd("B"), nd("A")) {
		t.Error("HasEdge(B, A) = true, want false")
	}
}

func TestRemoveNodePurgesAdjacency(t *testing.T) {
	g := newEmpty()
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("B"), nd("C"))
	g.RemoveNode(nd("B"))

	if g.nodes.Contains(nd("B")) {
		t.Error("B still present after RemoveNode")
	}
	if got := g.Succs(nd("A")); len(got) != 0 {
		t.Errorf("Succs(A) after removing B = %v, want empty", got)
	}
	if got := g.Preds(nd("C")); len(got) != 0 {
		t.Errorf("Preds(C) after removing B = %v, want empty", got)
	}
}

func TestInsertNodeSplicesBetween(t *testing.T) {
	g := newEmpty()
	g.AddEdge(nd("A"), nd("B"))
	g.InsertNode(nd("T"), nd("A"), nd("B"))

	if g.HasEdge(nd("A"), nd("B")) {
		t.Error("A->B edge still present after splice")
	}
	if !g.HasEdge(nd("A"), nd("T")) || !g.HasEdge(nd("T"), nd("B")) {
		t.Error("splice did not wire A->T->B")
	}
}

func TestCreateTemporaryNodeIsUniqueAndRecorded(t *testing.T) {
	g := newEmpty()
	first := g.CreateTemporaryNode()
	g.AddEdge(nd("A"), NodeOf(first))
	second := g.CreateTemporaryNode()

	if first == second {
		t.Errorf("two temporaries collided: %s", first)
	}
	want := []Name{first, second}
	if got := g.Temps(); !reflect.DeepEqual(got, want) {
		t.Errorf("Temps() = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := newEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))

	c := g.Clone()
	c.AddEdge(nd("B"), nd("C"))

	if g.HasEdge(nd("B"), nd("C")) {
		t.Error("mutating clone affected original")
	}
	if !c.HasEdge(nd("B"), nd("C")) {
		t.Error("clone missing its own mutation")
	}
	if c.Entry() != nd("A") {
		t.Errorf("clone entry = %v, want A", c.Entry())
	}
}
