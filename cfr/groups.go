// Package cfr rebuilds a nested statement tree from the flat sequence of
// control flow primitives package cfa found while reducing a cfg.Graph.
package cfr

import (
	"strings"

	"github.com/mewkiz/pkg/term"

	"github.com/graphism/restructure/cfg"
)

// Group is one recovered statement: a plain block, or a structured
// control construct wrapping further Groups. Implementations are Block,
// PreconditionLoop, PostconditionLoop, OnewayConditional,
// OnewayReturnConditional, and TwowayConditional, mirroring cfa's six
// primitives one-for-one (StatementSequence has no Group of its own: it
// contributes its two sides' groups directly, with no wrapper).
type Group interface {
	fmtInner(b *strings.Builder, depth int)
}

// Groups is an ordered sequence of recovered statements.
type Groups struct {
	Groups []Group
}

func (gs *Groups) fmtInner(b *strings.Builder, depth int) {
	for _, g := range gs.Groups {
		g.fmtInner(b, depth)
	}
}

// String renders the recovered tree as indented, ANSI-colored pseudocode.
func (gs *Groups) String() string {
	var b strings.Builder
	gs.fmtInner(&b, 0)
	return b.String()
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// Block is a single, unstructured basic block reached in sequence.
type Block struct {
	Name cfg.Name
}

func (g *Block) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.Cyan(string(g.Name)))
	b.WriteString("\n")
}

// PreconditionLoop is a recovered while loop.
type PreconditionLoop struct {
	Cond, Body *Groups
}

func (g *PreconditionLoop) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.MagentaBold("while") + " " + term.WhiteBold("(") + "\n")
	g.Cond.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold(") {") + "\n")
	g.Body.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold("}") + "\n")
}

// PostconditionLoop is a recovered loop-with-break.
type PostconditionLoop struct {
	Cond *Groups
}

func (g *PostconditionLoop) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.MagentaBold("loop") + " " + term.WhiteBold("{") + " " +
		term.MagentaBold("if") + " " + term.WhiteBold("(") + term.RedBold("!") + "\n")
	g.Cond.fmtInner(b, depth+2)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold(") {") + " " + term.MagentaBold("break;") + " " +
		term.WhiteBold("}") + " " + term.WhiteBold("}") + "\n")
}

// OnewayConditional is a recovered if with no else.
type OnewayConditional struct {
	Cond, Body *Groups
}

func (g *OnewayConditional) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.MagentaBold("if") + " " + term.WhiteBold("(") + "\n")
	g.Cond.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold(") {") + "\n")
	g.Body.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold("}") + "\n")
}

// OnewayReturnConditional is a recovered if whose body always returns.
type OnewayReturnConditional struct {
	Cond, Body *Groups
}

func (g *OnewayReturnConditional) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.MagentaBold("if") + " " + term.WhiteBold("(") + "\n")
	g.Cond.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold(") {") + "\n")
	g.Body.fmtInner(b, depth+1)
	b.WriteString(indent(depth + 1))
	b.WriteString(term.MagentaBold("return;") + "\n")
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold("}") + "\n")
}

// TwowayConditional is a recovered if/else.
type TwowayConditional struct {
	Cond, BodyTrue, BodyFalse *Groups
}

func (g *TwowayConditional) fmtInner(b *strings.Builder, depth int) {
	b.WriteString(indent(depth))
	b.WriteString(term.MagentaBold("if") + " " + term.WhiteBold("(") + "\n")
	g.Cond.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold(") {") + "\n")
	g.BodyTrue.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold("}") + " " + term.MagentaBold("else") + " " + term.WhiteBold("{") + "\n")
	g.BodyFalse.fmtInner(b, depth+1)
	b.WriteString(indent(depth))
	b.WriteString(term.WhiteBold("}") + "\n")
}
