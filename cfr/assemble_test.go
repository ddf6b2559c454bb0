package cfr

import (
	"testing"

	"github.com/graphism/restructure/cfa"
	"github.com/graphism/restructure/cfg"
)

func nd(name string) cfg.Node { return cfg.NodeOf(cfg.Name(name)) }

func TestNewRecoversPrecedingSequenceAndLoop(t *testing.T) {
	// A -> B (cond); B -> C (body) -> B; B -> D (exit).
	g := cfg.NewEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("B"), nd("C"))
	g.AddEdge(nd("C"), nd("B"))
	g.AddEdge(nd("B"), nd("D"))

	bundle, err := cfa.FindAll(g)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	groups, err := New(bundle)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(groups.Groups) != 3 {
		t.Fatalf("got %d top-level groups, want 3 (A, while, D); groups: %#v", len(groups.Groups), groups.Groups)
	}

	block, ok := groups.Groups[0].(*Block)
	if !ok || block.Name != "A" {
		t.Errorf("groups[0] = %#v, want Block(A)", groups.Groups[0])
	}

	loop, ok := groups.Groups[1].(*PreconditionLoop)
	if !ok {
		t.Fatalf("groups[1] = %#v, want *PreconditionLoop", groups.Groups[1])
	}
	if len(loop.Cond.Groups) != 1 {
		t.Fatalf("loop cond has %d groups, want 1", len(loop.Cond.Groups))
	}
	condBlock, ok := loop.Cond.Groups[0].(*Block)
	if !ok || condBlock.Name != "B" {
		t.Errorf("loop cond = %#v, want Block(B)", loop.Cond.Groups[0])
	}
	bodyBlock, ok := loop.Body.Groups[0].(*Block)
	if !ok || bodyBlock.Name != "C" {
		t.Errorf("loop body = %#v, want Block(C)", loop.Body.Groups[0])
	}

	tail, ok := groups.Groups[2].(*Block)
	if !ok || tail.Name != "D" {
		t.Errorf("groups[2] = %#v, want Block(D)", groups.Groups[2])
	}
}

func TestNewRecoversTwowayConditionalPoppingPrecedingCond(t *testing.T) {
	// A (cond) -> B, A -> C; B -> D (exit); C -> D.
	g := cfg.NewEmpty()
	g.SetEntry(nd("A"))
	g.AddEdge(nd("A"), nd("B"))
	g.AddEdge(nd("A"), nd("C"))
	g.AddEdge(nd("B"), nd("D"))
	g.AddEdge(nd("C"), nd("D"))

	bundle, err := cfa.FindAll(g)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	groups, err := New(bundle)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(groups.Groups) != 2 {
		t.Fatalf("got %d top-level groups, want 2 (if/else, D); groups: %#v", len(groups.Groups), groups.Groups)
	}
	cond, ok := groups.Groups[0].(*TwowayConditional)
	if !ok {
		t.Fatalf("groups[0] = %#v, want *TwowayConditional", groups.Groups[0])
	}
	if b, ok := cond.Cond.Groups[0].(*Block); !ok || b.Name != "A" {
		t.Errorf("cond = %#v, want Block(A)", cond.Cond.Groups[0])
	}
}
