package cfa

import (
	"fmt"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// TwowayConditional is an if/else whose two branches reconverge:
//
//	if (Cond) {
//	    BodyA
//	} else {
//	    BodyB
//	}
//	Exit
type TwowayConditional struct {
	Cond, BodyA, BodyB, Exit cfg.Node
}

func (p *TwowayConditional) EntryNode() cfg.Node { return p.Cond }
func (p *TwowayConditional) ExitNode() cfg.Node  { return p.Exit }
func (p *TwowayConditional) Nodes() []cfg.Node {
	return []cfg.Node{p.Cond, p.BodyA, p.BodyB, p.Exit}
}

func findTwowayConditional(g *cfg.Graph) (*TwowayConditional, bool) {
	for _, cond := range g.Nodes() {
		condSuccs := g.Succs(cond)
		if len(condSuccs) != 2 {
			continue
		}
		bodyA, bodyB := condSuccs[0], condSuccs[1]

		bodyASuccs := g.Succs(bodyA)
		if len(bodyASuccs) != 1 {
			continue
		}
		exit := bodyASuccs[0]

		if twowayConditionalValid(g, cond, bodyA, bodyB, exit) {
			return &TwowayConditional{Cond: cond, BodyA: bodyA, BodyB: bodyB, Exit: exit}, true
		}
	}
	return nil, false
}

func twowayConditionalValid(g *cfg.Graph, cond, bodyA, bodyB, exit cfg.Node) bool {
	if isTemp(g, cond.ToSucc) || isTemp(g, exit.FromPred) {
		return false
	}
	if !g.Dominates(cond, bodyA) || !g.Dominates(cond, bodyB) || !g.Dominates(cond, exit) {
		return false
	}
	for _, pred := range g.Preds(cond) {
		if !g.Dominates(pred, cond) {
			return false
		}
	}

	condSuccs := g.Succs(cond)
	if len(condSuccs) != 2 || !nodesContain(condSuccs, bodyA) || !nodesContain(condSuccs, bodyB) {
		return false
	}

	bodyAPreds := g.Preds(bodyA)
	if len(bodyAPreds) != 1 {
		return false
	}
	bodyASuccs := g.Succs(bodyA)
	if len(bodyASuccs) != 1 || !nodesContain(bodyASuccs, exit) {
		return false
	}

	bodyBPreds := g.Preds(bodyB)
	if len(bodyBPreds) != 1 {
		return false
	}
	bodyBSuccs := g.Succs(bodyB)
	if len(bodyBSuccs) != 1 || !nodesContain(bodyBSuccs, exit) {
		return false
	}

	return true
}

// insertNeededNode handles the conditional being the last thing inside a
// loop body, splicing a temporary from both branches into Exit.
func (p *TwowayConditional) insertNeededNode(g *cfg.Graph) {
	if len(g.Preds(p.Exit)) != 2 {
		temp := g.CreateTemporaryNode()
		g.InsertNode(cfg.NodeOf(temp), p.BodyA, p.Exit)
		g.InsertNode(cfg.NodeOf(temp), p.BodyB, p.Exit)
		p.Exit = cfg.NodeOf(temp)
	}
}

func (p *TwowayConditional) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s %s %s %s %s",
		term.WhiteBold("->"),
		term.MagentaBold("if"), term.WhiteBold("("),
		term.Cyan(p.Cond.String()),
		term.WhiteBold(") {"),
		term.Cyan(p.BodyA.String()),
		term.WhiteBold("}"), term.MagentaBold("else"), term.WhiteBold("{"),
		term.Cyan(p.BodyB.String()),
		term.WhiteBold("}"),
		term.WhiteBold("->"),
		term.Cyan(p.Exit.String()))
}
