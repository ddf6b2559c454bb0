package cfg

import (
	"fmt"

	"github.com/llir/llvm/ir"
)

// New builds a control flow graph from an LLVM IR function's basic blocks.
// The entry node is derived from the first block. Each block's terminator
// is inspected to add outgoing edges:
//
//   - Br adds one edge to its target.
//   - CondBr adds an edge to its true destination, then its false
//     destination.
//   - Switch adds an edge to each case destination in source order, then
//     to the default destination.
//   - IndirectBr adds an edge to each possible destination in source
//     order.
//   - Ret and Unreachable add no edges.
//
// Any other terminator (Invoke, Resume, CleanupRet, CatchRet, CatchSwitch,
// CallBr) is unsupported and causes New to panic, matching the teacher's
// convention of panicking on malformed/unsupported input it does not
// expect a well-formed loader to ever produce.
func New(fn *ir.Func) *Graph {
	g := newEmpty()
	if len(fn.Blocks) == 0 {
		panic(fmt.Errorf("cfg: function %q has no basic blocks", fn.Name()))
	}
	g.entry = NodeOf(blockName(fn.Blocks[0]))

	for _, block := range fn.Blocks {
		from := blockName(block)
		switch term := block.Term.(type) {

		case *ir.TermBr:
			g.AddEdge(NodeOf(from), NodeOf(blockName(term.Target)))

		case *ir.TermCondBr:
			g.AddEdge(NodeOf(from), NodeOf(blockName(term.TargetTrue)))
			g.AddEdge(NodeOf(from), NodeOf(blockName(term.TargetFalse)))

		case *ir.TermSwitch:
			for _, c := range term.Cases {
				g.AddEdge(NodeOf(from), NodeOf(blockName(c.Target)))
			}
			g.AddEdge(NodeOf(from), NodeOf(blockName(term.TargetDefault)))

		case *ir.TermIndirectBr:
			for _, dest := range term.ValidTargets {
				g.AddEdge(NodeOf(from), NodeOf(blockName(dest)))
			}
			g.nodes.Insert(NodeOf(from))

		case *ir.TermRet:
			g.nodes.Insert(NodeOf(from))

		case *ir.TermUnreachable:
			g.nodes.Insert(NodeOf(from))

		default:
			panic(fmt.Errorf("cfg: unsupported terminator %T in block %q", term, from))
		}
	}

	return g
}

// blockName returns the Name identifying an LLVM IR basic block.
func blockName(block *ir.Block) Name {
	return Name(block.Name())
}
