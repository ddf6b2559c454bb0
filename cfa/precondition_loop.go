package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// PreconditionLoop is a while loop:
//
//	while (Cond) {
//	    Body
//	}
//	Exit
type PreconditionLoop struct {
	Cond, Body, Exit cfg.Node
}

func (p *PreconditionLoop) EntryNode() cfg.Node { return p.Cond }
func (p *PreconditionLoop) ExitNode() cfg.Node  { return p.Exit }
func (p *PreconditionLoop) Nodes() []cfg.Node   { return []cfg.Node{p.Cond, p.Body, p.Exit} }

func findPreconditionLoop(g *cfg.Graph) (*PreconditionLoop, bool) {
	for _, cond := range g.Nodes() {
		succs := g.Succs(cond)
		if len(succs) != 2 {
			continue
		}
		a, b := succs[0], succs[1]

		if preconditionLoopValid(g, cond, a, b) {
			return &PreconditionLoop{Cond: cond, Body: a, Exit: b}, true
		}
		if preconditionLoopValid(g, cond, b, a) {
			return &PreconditionLoop{Cond: cond, Body: b, Exit: a}, true
		}
	}
	return nil, false
}

func preconditionLoopValid(g *cfg.Graph, cond, body, exit cfg.Node) bool {
	if isTemp(g, cond.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(cond, body) || !g.Dominates(cond, exit) {
		return false
	}

	condSuccs := g.Succs(cond)
	if len(condSuccs) != 2 || !nodesContain(condSuccs, body) || !nodesContain(condSuccs, exit) {
		return false
	}

	bodyPreds := g.Preds(body)
	if len(bodyPreds) != 1 {
		return false
	}

	bodySuccs := g.Succs(body)
	if len(bodySuccs) != 1 || !nodesContain(bodySuccs, cond) {
		return false
	}

	return true
}

// insertNeededNode handles the case where the loop is itself nested
// directly inside another loop's body, so Exit also has predecessors
// outside {Cond, Body, Exit}: a temporary is spliced between Cond and
// Exit and becomes the new Exit, isolating the loop's true single exit
// edge before merge collapses it.
func (p *PreconditionLoop) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 1 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.Cond, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *PreconditionLoop) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s",
		term.WhiteBold("->"),
		term.MagentaBold("while"), term.WhiteBold("("),
		term.Cyan(p.Cond.String()),
		term.WhiteBold(") {"),
		term.Cyan(p.Body.String()),
		term.WhiteBold("}"),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
