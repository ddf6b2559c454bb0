package cfa

import (
	"testing"

	"github.com/graphism/restructure/cfg"
)

func nd(name string) cfg.Node { return cfg.NodeOf(cfg.Name(name)) }

// buildGraph wires edges in order and sets the entry to the first edge's
// source, matching how cfg.New would see a function whose first block is
// its entry.
func buildGraph(edges [][2]string) *cfg.Graph {
	g := cfg.NewEmpty()
	for i, e := range edges {
		u, v := nd(e[0]), nd(e[1])
		if i == 0 {
			g.SetEntry(u)
		}
		g.AddEdge(u, v)
	}
	return g
}

func TestFindPreconditionLoop(t *testing.T) {
	// A -> B (cond) -> C (body) -> B; B -> D (exit)
	g := buildGraph([][2]string{
		{"A", "B"},
		{"B", "C"},
		{"C", "B"},
		{"B", "D"},
	})
	p, ok := findPreconditionLoop(g)
	if !ok {
		t.Fatal("expected a precondition loop")
	}
	if p.Cond != nd("B") || p.Body != nd("C") || p.Exit != nd("D") {
		t.Errorf("got cond=%v body=%v exit=%v", p.Cond, p.Body, p.Exit)
	}
}

func TestFindPostconditionLoop(t *testing.T) {
	// A -> B (cond); B -> B (loop back); B -> C (exit)
	g := buildGraph([][2]string{
		{"A", "B"},
		{"B", "B"},
		{"B", "C"},
	})
	p, ok := findPostconditionLoop(g)
	if !ok {
		t.Fatal("expected a postcondition loop")
	}
	if p.Cond != nd("B") || p.Exit != nd("C") {
		t.Errorf("got cond=%v exit=%v", p.Cond, p.Exit)
	}
}

func TestFindOnewayConditional(t *testing.T) {
	// A (cond) -> B (body), A -> C (exit); B -> C
	g := buildGraph([][2]string{
		{"A", "B"},
		{"A", "C"},
		{"B", "C"},
	})
	p, ok := findOnewayConditional(g)
	if !ok {
		t.Fatal("expected a oneway conditional")
	}
	if p.Cond != nd("A") || p.Body != nd("B") || p.Exit != nd("C") {
		t.Errorf("got cond=%v body=%v exit=%v", p.Cond, p.Body, p.Exit)
	}
}

func TestFindOnewayReturnConditional(t *testing.T) {
	// A (cond) -> B (body, returns, no successors), A -> C (exit)
	g := cfg.NewEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("A"), nd("C"))
	// B has no outgoing edge; AddEdge(A, B) already registered it as a node.

	p, ok := findOnewayReturnConditional(g)
	if !ok {
		t.Fatal("expected a oneway return conditional")
	}
	if p.Cond != nd("A") || p.Body != nd("B") || p.Exit != nd("C") {
		t.Errorf("got cond=%v body=%v exit=%v", p.Cond, p.Body, p.Exit)
	}
}

func TestFindTwowayConditional(t *testing.T) {
	// A (cond) -> B, A -> C; B -> D (exit); C -> D
	g := buildGraph([][2]string{
		{"A", "B"},
		{"A", "C"},
		{"B", "D"},
		{"C", "D"},
	})
	p, ok := findTwowayConditional(g)
	if !ok {
		t.Fatal("expected a twoway conditional")
	}
	if p.Cond != nd("A") || p.Exit != nd("D") {
		t.Errorf("got cond=%v exit=%v", p.Cond, p.Exit)
	}
	if !(p.BodyA == nd("B") || p.BodyA == nd("C")) {
		t.Errorf("unexpected bodyA %v", p.BodyA)
	}
}

func TestFindStatementSequence(t *testing.T) {
	g := buildGraph([][2]string{
		{"A", "B"},
	})
	p, ok := findStatementSequence(g)
	if !ok {
		t.Fatal("expected a statement sequence")
	}
	if p.Entry != nd("A") || p.Exit != nd("B") {
		t.Errorf("got entry=%v exit=%v", p.Entry, p.Exit)
	}
}

func TestFindFirstPrefersLoopOverSequence(t *testing.T) {
	// A precondition loop (B/C/D) reachable only through a leading
	// sequence edge (A->B): FindFirst must not collapse A->B first.
	g := buildGraph([][2]string{
		{"A", "B"},
		{"B", "C"},
		{"C", "B"},
		{"B", "D"},
	})
	p, ok := FindFirst(g)
	if !ok {
		t.Fatal("expected to find a primitive")
	}
	if _, ok := p.(*PreconditionLoop); !ok {
		t.Errorf("FindFirst returned %T, want *PreconditionLoop", p)
	}
}

func TestFindAllReducesToSingleEntry(t *testing.T) {
	// while (B) { C } -> D, preceded by A -> B.
	g := buildGraph([][2]string{
		{"A", "B"},
		{"B", "C"},
		{"C", "B"},
		{"B", "D"},
	})
	bundle, err := FindAll(g)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if g.NumNodes() != 1 {
		t.Errorf("graph has %d nodes after FindAll, want 1", g.NumNodes())
	}
	if len(bundle.Prims) != 2 {
		t.Errorf("got %d primitives, want 2 (loop, then leading sequence)", len(bundle.Prims))
	}
	if _, ok := bundle.Prims[0].(*PreconditionLoop); !ok {
		t.Errorf("first merged primitive was %T, want *PreconditionLoop", bundle.Prims[0])
	}
}

func TestFindAllIrreducible(t *testing.T) {
	// A three-node cycle with no valid exit structure: A->B->C->A, plus a
	// dangling entry edge, is not reducible by any of the six primitives.
	g := cfg.NewEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("B"), nd("C"))
	g.AddEdge(nd("C"), nd("A"))
	g.AddEdge(nd("A"), nd("C"))

	if _, err := FindAll(g); err == nil {
		t.Fatal("expected FindAll to report irreducibility")
	}
}
