package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// walkStatements walks a statement list in order, appending zero-or-more
// IR nodes per statement to the enclosing sequence, per SPEC_FULL.md
// §4.3's statement dispatch table.
func (s *state) walkStatements(stmts []*syntax.Node) []ir.Node {
	var out []ir.Node
	for _, stmt := range stmts {
		out = append(out, s.walkStatement(stmt)...)
	}
	return out
}

// wrapSequence collapses a node list down to the single Node a
// single-valued context (a parallel/race branch) needs:
// zero children yields nil, one child is returned unwrapped, and two or
// more are wrapped in a sequence node. Per SPEC_FULL.md §4.3 "Wrapping",
// sequence.children is never empty.
func (s *state) wrapSequence(loc ir.Location, nodes []ir.Node) ir.Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		seq := ir.NewSequence(s.arena, loc, nodes)
		s.link(seq.ID(), nodes)
		return seq
	}
}

// walkBodyNode walks a statement/expression that stands for a
// callback's body — either a statement_block or a concise arrow body —
// and collapses the result to a single Node via wrapSequence.
func (s *state) walkBodyNode(body *syntax.Node) ir.Node {
	if body == nil {
		return nil
	}
	var stmts []*syntax.Node
	if body.Kind == syntax.KindStatementBlock {
		stmts = body.Statements()
	} else {
		stmts = []*syntax.Node{body}
	}
	return s.wrapSequence(body.Loc, s.walkStatements(stmts))
}
