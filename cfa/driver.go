package cfa

import (
	"log"
	"os"

	"github.com/mewkiz/pkg/term"
	"github.com/pkg/errors"

	"github.com/graphism/restructure/cfg"
)

var dbg = log.New(os.Stderr, term.RedBold("cfa:")+" ", 0)

// ErrIrreducible is returned by FindAll when no primitive can be found in
// a graph that still has more than one node: the graph is not reducible
// by structured control flow primitives alone (e.g. it contains a goto
// into the middle of a loop with no matching pattern).
var ErrIrreducible = errors.New("cfa: graph is irreducible; no primitive matched")

// Bundle is the ordered sequence of primitives FindAll found while
// reducing a graph down to its entry node, together with the entry node
// and the temporaries created along the way. It is the input to package
// cfr's recovery assembler.
type Bundle struct {
	Entry cfg.Node
	Temps []cfg.Name
	Prims []Prim
}

// FindAll repeatedly finds and merges the highest-priority primitive in g
// until only the entry node remains, returning the primitives in the
// order they were merged. g is mutated in place; pass g.Clone() to keep
// the pre-reduction graph.
func FindAll(g *cfg.Graph) (*Bundle, error) {
	var prims []Prim
	for g.NumNodes() > 1 {
		p, ok := FindFirst(g)
		if !ok {
			return nil, errors.Wrapf(ErrIrreducible, "at %d remaining nodes", g.NumNodes())
		}
		merged := merge(p, g)
		dbg.Printf("merged %T spanning %v into %v", p, p.Nodes(), merged)
		prims = append(prims, p)
	}
	return &Bundle{
		Entry: g.Entry(),
		Temps: g.Temps(),
		Prims: prims,
	}, nil
}
