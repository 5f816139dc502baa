package walk

import (
	"github.com/awaitly-go/analyzer/ir"
	"github.com/awaitly-go/analyzer/syntax"
)

// walkStatement dispatches one statement to its IR-producing handler,
// per SPEC_FULL.md §4.3. Most statement kinds either produce exactly one
// node or none; expression statements, bare expressions (a concise arrow
// body) and variable declarations (one walk per declarator's initializer)
// can produce the zero-or-more a raw call recognizer returns.
func (s *state) walkStatement(stmt *syntax.Node) []ir.Node {
	switch stmt.Kind {
	case syntax.KindExpressionStatement:
		return s.walkExpressionAsStatement(stmt.Named("expression"))
	case syntax.KindCallExpression, syntax.KindAwaitExpression, syntax.KindParenthesizedExpression:
		return s.walkExpressionAsStatement(stmt)
	case syntax.KindLexicalDeclaration, syntax.KindVariableDeclaration:
		var out []ir.Node
		for _, d := range stmt.NamedList("declarators") {
			out = append(out, s.walkExpressionAsStatement(d.Value())...)
		}
		return out
	case syntax.KindIfStatement:
		if n := s.walkIfStatement(stmt); n != nil {
			return []ir.Node{n}
		}
		return nil
	case syntax.KindForStatement, syntax.KindForInStatement, syntax.KindWhileStatement:
		if n := s.walkLoopStatement(stmt); n != nil {
			return []ir.Node{n}
		}
		return nil
	case syntax.KindSwitchStatement:
		if n := s.walkSwitchStatement(stmt); n != nil {
			return []ir.Node{n}
		}
		return nil
	case syntax.KindStatementBlock:
		return s.walkStatements(stmt.Statements())
	default:
		// return/break/continue, try/throw and anything else carry no DSL
		// construct of their own.
		return nil
	}
}

// unwrap strips await_expression and parenthesized_expression wrappers,
// per SPEC_FULL.md §4.3 "Expression dispatch".
func unwrap(n *syntax.Node) *syntax.Node {
	for n != nil {
		switch n.Kind {
		case syntax.KindAwaitExpression:
			n = n.Named("argument")
		case syntax.KindParenthesizedExpression:
			n = n.Named("expression")
		default:
			return n
		}
	}
	return n
}

// walkExpressionAsStatement recognizes a top-level expression statement.
// A call that is DSL-shaped but unmatched becomes an explicit unknown
// node (failure semantics: the walker never throws); anything else is
// silently ignored.
func (s *state) walkExpressionAsStatement(expr *syntax.Node) []ir.Node {
	expr = unwrap(expr)
	if expr == nil || expr.Kind != syntax.KindCallExpression {
		return nil
	}
	node, recognized := s.recognizeCall(expr)
	if node != nil {
		return []ir.Node{node}
	}
	if recognized {
		// A DSL-shaped call whose overload the walker could not match.
		u := ir.NewUnknown(s.arena, expr.Loc, "unrecognized DSL overload: "+expr.Function().Text())
		s.stats.UnknownCount++
		return []ir.Node{u}
	}
	return nil
}

func (s *state) walkIfStatement(stmt *syntax.Node) ir.Node {
	cond := unwrap(stmt.Condition())
	if cond != nil && cond.Kind == syntax.KindCallExpression {
		if obj, method, ok := s.calleeOnStepParam(cond); ok && (method == "if" || method == "label") {
			_ = obj
			return s.buildDecisionFromIf(cond, stmt)
		}
	}
	return s.walkPlainIfStatement(stmt)
}

func (s *state) walkPlainIfStatement(stmt *syntax.Node) ir.Node {
	cond := stmt.Condition()
	n := ir.NewConditional(s.arena, stmt.Loc)
	n.Helper = ir.HelperNone
	if cond != nil {
		n.Condition = cond.Text()
	}
	n.Consequent = s.childListFrom(stmt.Consequence())
	if alt := stmt.Alternative(); alt != nil {
		// else_clause wraps its body in a role named "body"; an `else if`
		// chain nests another if_statement there.
		body := alt.Body()
		n.Alternate = s.childListFrom(body)
	}
	s.link(n.ID(), n.Consequent)
	s.link(n.ID(), n.Alternate)
	s.stats.ConditionalCount++
	return n
}

// childListFrom walks a statement (typically a statement_block) and
// returns its top-level IR nodes as a flat list — the natural shape for
// Conditional.Consequent/Alternate, Loop.Body, SwitchCase.Body, all of
// which are declared as plural fields rather than a single Node.
func (s *state) childListFrom(stmt *syntax.Node) []ir.Node {
	if stmt == nil {
		return nil
	}
	if stmt.Kind == syntax.KindIfStatement {
		if n := s.walkIfStatement(stmt); n != nil {
			return []ir.Node{n}
		}
		return nil
	}
	return s.walkStatement(stmt)
}

func (s *state) walkSwitchStatement(stmt *syntax.Node) ir.Node {
	n := ir.NewSwitch(s.arena, stmt.Loc)
	if disc := stmt.Value(); disc != nil {
		n.Expression = disc.Text()
	}
	for _, c := range stmt.Cases() {
		sc := ir.SwitchCase{IsDefault: c.Kind == syntax.KindSwitchDefault}
		if v := c.Value(); v != nil {
			sc.Value = v.Text()
		}
		sc.Body = s.walkStatements(c.Statements())
		s.link(n.ID(), sc.Body)
		n.Cases = append(n.Cases, sc)
	}
	return n
}
