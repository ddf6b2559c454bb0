package cfr

import (
	"github.com/pkg/errors"

	"github.com/graphism/restructure/cfa"
	"github.com/graphism/restructure/cfg"
)

// ErrUnmatchedNode is returned when a node in a cfa.Bundle is neither the
// entry/exit pair of some recorded primitive nor a plain, uncollapsed
// block: a sign that the bundle was built against a different graph than
// the one New is being asked to recover, or that a merge recorded an
// inconsistent boundary.
var ErrUnmatchedNode = errors.New("cfr: node matches no primitive and is not a simple block")

// New rebuilds the nested statement tree for a fully reduced bundle,
// starting from its (possibly merged) entry node.
func New(bundle *cfa.Bundle) (*Groups, error) {
	return handle(bundle, bundle.Entry)
}

// handle finds the primitive, if any, whose span matches at exactly
// (same FromPred as at's FromPred, same ToSucc as at's ToSucc) and
// recurses into its sub-regions, rebuilding a nested Group for it. If at
// matches no primitive, it must be a single uncollapsed block.
func handle(bundle *cfa.Bundle, at cfg.Node) (*Groups, error) {
	for _, prim := range bundle.Prims {
		entry, exit := prim.EntryNode(), prim.ExitNode()
		if entry.FromPred != at.FromPred || exit.ToSucc != at.ToSucc {
			continue
		}

		switch p := prim.(type) {

		case *cfa.PreconditionLoop:
			cond, err := handle(bundle, p.Cond)
			if err != nil {
				return nil, err
			}
			body, err := handle(bundle, p.Body)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out := &Groups{Groups: []Group{&PreconditionLoop{Cond: cond, Body: body}}}
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil

		case *cfa.PostconditionLoop:
			cond, err := handle(bundle, p.Cond)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out := &Groups{Groups: []Group{&PostconditionLoop{Cond: cond}}}
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil

		case *cfa.OnewayConditional:
			out, err := handle(bundle, p.Cond)
			if err != nil {
				return nil, err
			}
			cond := &Groups{Groups: []Group{popLast(out)}}
			body, err := handle(bundle, p.Body)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, &OnewayConditional{Cond: cond, Body: body})
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil

		case *cfa.OnewayReturnConditional:
			out, err := handle(bundle, p.Cond)
			if err != nil {
				return nil, err
			}
			cond := &Groups{Groups: []Group{popLast(out)}}
			body, err := handle(bundle, p.Body)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, &OnewayReturnConditional{Cond: cond, Body: body})
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil

		case *cfa.TwowayConditional:
			out, err := handle(bundle, p.Cond)
			if err != nil {
				return nil, err
			}
			cond := &Groups{Groups: []Group{popLast(out)}}
			bodyA, err := handle(bundle, p.BodyA)
			if err != nil {
				return nil, err
			}
			bodyB, err := handle(bundle, p.BodyB)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, &TwowayConditional{Cond: cond, BodyTrue: bodyA, BodyFalse: bodyB})
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil

		case *cfa.StatementSequence:
			out, err := handle(bundle, p.Entry)
			if err != nil {
				return nil, err
			}
			exitGroups, err := handle(bundle, p.Exit)
			if err != nil {
				return nil, err
			}
			out.Groups = append(out.Groups, exitGroups.Groups...)
			return out, nil
		}
	}

	if at.FromPred == at.ToSucc {
		if isTempName(bundle, at.FromPred) {
			return &Groups{}, nil
		}
		return &Groups{Groups: []Group{&Block{Name: at.FromPred}}}, nil
	}

	return nil, errors.Wrapf(ErrUnmatchedNode, "at %v", at)
}

// popLast removes and returns the last group of gs, which must be
// non-empty. Each conditional variant uses it on the groups recovered for
// its Cond region: the last group becomes the conditional's Cond, and the
// groups before it (statements merged ahead of the condition block) stay in
// sequence ahead of the conditional.
func popLast(gs *Groups) Group {
	n := len(gs.Groups)
	last := gs.Groups[n-1]
	gs.Groups = gs.Groups[:n-1]
	return last
}

func isTempName(bundle *cfa.Bundle, name cfg.Name) bool {
	for _, t := range bundle.Temps {
		if t == name {
			return true
		}
	}
	return false
}
