package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// StatementSequence is the fallback primitive: two nodes joined by a
// single unconditional edge, with no branching structure of its own.
//
//	Entry
//	Exit
type StatementSequence struct {
	Entry, Exit cfg.Node
}

func (p *StatementSequence) EntryNode() cfg.Node { return p.Entry }
func (p *StatementSequence) ExitNode() cfg.Node  { return p.Exit }
func (p *StatementSequence) Nodes() []cfg.Node   { return []cfg.Node{p.Entry, p.Exit} }

func findStatementSequence(g *cfg.Graph) (*StatementSequence, bool) {
	for _, entry := range g.Nodes() {
		succs := g.Succs(entry)
		if len(succs) != 1 {
			continue
		}
		exit := succs[0]
		if statementSequenceValid(g, entry, exit) {
			return &StatementSequence{Entry: entry, Exit: exit}, true
		}
	}
	return nil, false
}

func statementSequenceValid(g *cfg.Graph, entry, exit cfg.Node) bool {
	if isTemp(g, entry.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(entry, exit) {
		return false
	}

	entrySuccs := g.Succs(entry)
	if len(entrySuccs) != 1 || !nodesContain(entrySuccs, exit) {
		return false
	}

	return true
}

// insertNeededNode handles Entry being the last statement inside a loop
// body, splicing a temporary between Entry and Exit.
func (p *StatementSequence) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 1 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.Entry, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *StatementSequence) String() string {
	return fmt.Sprintf("%s %s %s %s",
		term.WhiteBold("->"),
		term.Cyan(p.Entry.String()),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
