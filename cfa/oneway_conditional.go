package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// OnewayConditional is a plain if with no else:
//
//	if (Cond) {
//	    Body
//	}
//	Exit
type OnewayConditional struct {
	Cond, Body, Exit cfg.Node
}

func (p *OnewayConditional) EntryNode() cfg.Node { return p.Cond }
func (p *OnewayConditional) ExitNode() cfg.Node  { return p.Exit }
func (p *OnewayConditional) Nodes() []cfg.Node   { return []cfg.Node{p.Cond, p.Body, p.Exit} }

func findOnewayConditional(g *cfg.Graph) (*OnewayConditional, bool) {
	for _, cond := range g.Nodes() {
		succs := g.Succs(cond)
		if len(succs) != 2 {
			continue
		}
		a, b := succs[0], succs[1]

		if onewayConditionalValid(g, cond, a, b) {
			return &OnewayConditional{Cond: cond, Body: a, Exit: b}, true
		}
		if onewayConditionalValid(g, cond, b, a) {
			return &OnewayConditional{Cond: cond, Body: b, Exit: a}, true
		}
	}
	return nil, false
}

func onewayConditionalValid(g *cfg.Graph, cond, body, exit cfg.Node) bool {
	if isTemp(g, cond.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(cond, body) || !g.Dominates(cond, exit) {
		return false
	}
	for _, pred := range g.Preds(cond) {
		if !g.Dominates(pred, cond) {
			return false
		}
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
	if len(bodySuccs) != 1 || !nodesContain(bodySuccs, exit) {
		return false
	}

	return true
}

// insertNeededNode handles the conditional being the last thing inside a
// loop body: a temporary is spliced from both Cond and Body into Exit so
// the enclosing loop keeps seeing a single exit edge.
func (p *OnewayConditional) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 2 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.Cond, p.Exit)
		g.InsertNode(cfg.NodeOf(temp), p.Body, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *OnewayConditional) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s",
		term.WhiteBold("->"),
		term.MagentaBold("if"), term.WhiteBold("("),
		term.Cyan(p.Cond.String()),
		term.WhiteBold(") {"),
		term.Cyan(p.Body.String()),
		term.WhiteBold("}"),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
