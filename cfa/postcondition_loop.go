package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// PostconditionLoop is a do-while style loop, expressed with an explicit
// break:
//
//	loop {
//	    if (!Cond) { break; }
//	}
//	Exit
type PostconditionLoop struct {
	Cond, Exit cfg.Node
}

func (p *PostconditionLoop) EntryNode() cfg.Node { return p.Cond }
func (p *PostconditionLoop) ExitNode() cfg.Node  { return p.Exit }
func (p *PostconditionLoop) Nodes() []cfg.Node   { return []cfg.Node{p.Cond, p.Exit} }

func findPostconditionLoop(g *cfg.Graph) (*PostconditionLoop, bool) {
	for _, cond := range g.Nodes() {
		succs := g.Succs(cond)
		if len(succs) != 2 {
			continue
		}
		a, b := succs[0], succs[1]

		if postconditionLoopValid(g, cond, a) {
			return &PostconditionLoop{Cond: cond, Exit: a}, true
		}
		if postconditionLoopValid(g, cond, b) {
			return &PostconditionLoop{Cond: cond, Exit: b}, true
		}
	}
	return nil, false
}

func postconditionLoopValid(g *cfg.Graph, cond, exit cfg.Node) bool {
	if exit == cond {
		return false
	}
	if isTemp(g, cond.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(cond, exit) {
		return false
	}

	condSuccs := g.Succs(cond)
	if len(condSuccs) != 2 || !nodesContain(condSuccs, cond) || !nodesContain(condSuccs, exit) {
		return false
	}

	return true
}

// insertNeededNode handles the loop being nested directly inside another
// loop's body: a temporary is spliced between Cond and Exit so the
// enclosing loop keeps seeing a single exit edge after this loop merges.
func (p *PostconditionLoop) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 1 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.Cond, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *PostconditionLoop) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s%s %s %s %s %s %s %s",
		term.WhiteBold("->"),
		term.MagentaBold("loop"), term.WhiteBold("{"),
		term.MagentaBold("if"), term.WhiteBold("("), term.RedBold("!"),
		term.Cyan(p.Cond.String()),
		term.WhiteBold(") {"), term.MagentaBold("break;"),
		term.WhiteBold("}"), term.WhiteBold("}"),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
