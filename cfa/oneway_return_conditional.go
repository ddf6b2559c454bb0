package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// OnewayReturnConditional is an if whose body always returns, so control
// only reaches Exit via the condition's false branch:
//
//	if (Cond) {
//	    Body
//	    return;
//	}
//	Exit
type OnewayReturnConditional struct {
	Cond, Body, Exit cfg.Node
}

func (p *OnewayReturnConditional) EntryNode() cfg.Node { return p.Cond }
func (p *OnewayReturnConditional) ExitNode() cfg.Node  { return p.Exit }
func (p *OnewayReturnConditional) Nodes() []cfg.Node   { return []cfg.Node{p.Cond, p.Body, p.Exit} }

func findOnewayReturnConditional(g *cfg.Graph) (*OnewayReturnConditional, bool) {
	for _, cond := range g.Nodes() {
		succs := g.Succs(cond)
		if len(succs) != 2 {
			continue
		}
		a, b := succs[0], succs[1]

		if onewayReturnConditionalValid(g, cond, a, b) {
			return &OnewayReturnConditional{Cond: cond, Body: a, Exit: b}, true
		}
		if onewayReturnConditionalValid(g, cond, b, a) {
			return &OnewayReturnConditional{Cond: cond, Body: b, Exit: a}, true
		}
	}
	return nil, false
}

func onewayReturnConditionalValid(g *cfg.Graph, cond, body, exit cfg.Node) bool {
	if isTemp(g, cond.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(cond, body) || !g.Dominates(cond, exit) {
		return false
	}

	condPreds := g.Preds(cond)
	for _, pred := range condPreds {
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

	if bodySuccs := g.Succs(body); len(bodySuccs) > 0 {
		return false
	}

	// Reject a loop head: no predecessor of cond may be dominated by cond,
	// since such a predecessor closes a back edge into cond.
	for _, pred := range condPreds {
		if g.Dominates(cond, pred) {
			return false
		}
	}

	return true
}

// insertNeededNode handles the conditional being the last thing inside a
// loop body, splicing a temporary between Cond and Exit.
func (p *OnewayReturnConditional) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 1 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.Cond, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *OnewayReturnConditional) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s",
		term.WhiteBold("->"),
		term.MagentaBold("if"), term.WhiteBold("("),
		term.Cyan(p.Cond.String()),
		term.WhiteBold(") {"),
		term.Cyan(p.Body.String())+" "+term.MagentaBold("return;"),
		term.WhiteBold("}"),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
