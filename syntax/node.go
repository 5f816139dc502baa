package syntax

import "github.com/awaitly-go/analyzer/ir"

// Node kinds, matching the set spec.md §4.1 requires the adapter classify.
const (
	KindCallExpression           = "call_expression"
	KindMemberExpression          = "member_expression"
	KindIdentifier                 = "identifier"
	KindString                     = "string"
	KindTemplateString             = "template_string"
	KindNumber                     = "number"
	KindObject                     = "object"
	KindPair                       = "pair"
	KindArray                      = "array"
	KindArrowFunction               = "arrow_function"
	KindFunctionExpression          = "function_expression"
	KindVariableDeclaration         = "variable_declaration"
	KindLexicalDeclaration          = "lexical_declaration"
	KindVariableDeclarator          = "variable_declarator"
	KindExpressionStatement         = "expression_statement"
	KindReturnStatement             = "return_statement"
	KindIfStatement                 = "if_statement"
	KindElseClause                  = "else_clause"
	KindForStatement                = "for_statement"
	KindForInStatement              = "for_in_statement" // covers both `in` and `of`
	KindWhileStatement               = "while_statement"
	KindStatementBlock                = "statement_block"
	KindAwaitExpression               = "await_expression"
	KindParenthesizedExpression       = "parenthesized_expression"
	KindObjectPattern                  = "object_pattern"
	KindPairPattern                    = "pair_pattern"
	KindShorthandPropertyIdentifierPattern = "shorthand_property_identifier_pattern"
	KindAssignmentPattern              = "assignment_pattern"
	KindRequiredParameter               = "required_parameter"
	KindArrayPattern                    = "array_pattern"
	KindSwitchStatement                 = "switch_statement"
	KindSwitchCase                      = "switch_case"
	KindSwitchDefault                   = "switch_default"
	KindSpreadElement                   = "spread_element"
	KindUnaryExpression                 = "unary_expression"
	KindBinaryExpression                = "binary_expression"
	KindTernaryExpression               = "ternary_expression"
	KindAssignmentExpression            = "assignment_expression"
	KindNewExpression                   = "new_expression"
	KindThisExpression                  = "this_expression"
	KindNull                            = "null"
	KindUndefined                       = "undefined"
	KindTrue                            = "true"
	KindFalse                           = "false"
	KindSubscriptExpression             = "subscript_expression"
	KindBreakStatement                  = "break_statement"
	KindContinueStatement               = "continue_statement"
	KindProgram                         = "program"
	KindErrorNode                       = "ERROR"
)

// Node is one syntax-tree node. Fields are populated directly rather than
// hidden behind accessor methods where that is simpler for this module's
// consumers (discover, walk); Named/NamedList/Children/Text are the
// adapter-contract methods spec.md §4.1 requires.
type Node struct {
	Kind string
	Loc  ir.Location

	// named holds single-valued role children: function, body, key,
	// value, left, right, condition, consequence, alternative, callee,
	// object, property, argument.
	named map[string]*Node

	// namedList holds role children that are naturally plural:
	// arguments, elements (array), properties (object/pattern),
	// parameters, statements (block/program), cases (switch).
	namedList map[string][]*Node

	// kids are every child in source order, named or not, for generic
	// unnamed-children iteration.
	kids []*Node

	tree *Tree

	// Literal payloads: literalValue holds a string/template_string
	// node's value or an operator node's operator text (assignment,
	// binary, for_operator); literalNumber is set for number nodes.
	// true/false nodes carry no payload.
	literalValue  string
	literalNumber float64
	noSubTemplate bool
}

func newNode(t *Tree, kind string, loc ir.Location) *Node {
	return &Node{Kind: kind, Loc: loc, tree: t, named: map[string]*Node{}, namedList: map[string][]*Node{}}
}

func (n *Node) setNamed(role string, c *Node) {
	if c == nil {
		return
	}
	n.named[role] = c
	n.kids = append(n.kids, c)
}

func (n *Node) appendNamedList(role string, c *Node) {
	if c == nil {
		return
	}
	n.namedList[role] = append(n.namedList[role], c)
	n.kids = append(n.kids, c)
}

// Named returns the single child bound to role, or nil.
func (n *Node) Named(role string) *Node {
	if n == nil {
		return nil
	}
	return n.named[role]
}

// NamedList returns the children bound to a plural role.
func (n *Node) NamedList(role string) []*Node {
	if n == nil {
		return nil
	}
	return n.namedList[role]
}

// Children returns every child node, named or unnamed, in source order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.kids
}

// Text slices the original source for this node's span.
func (n *Node) Text() string {
	if n == nil || n.tree == nil {
		return ""
	}
	return string(n.tree.Source[n.Loc.StartByte:n.Loc.EndByte])
}

// Function, Arguments, Body, Parameters, Key, Value, Left, Right,
// Condition, Consequence, Alternative are the exact named-child
// accessors spec.md §4.1 lists.
func (n *Node) Function() *Node     { return n.Named("function") }
func (n *Node) Body() *Node         { return n.Named("body") }
func (n *Node) Key() *Node          { return n.Named("key") }
func (n *Node) Value() *Node        { return n.Named("value") }
func (n *Node) Left() *Node         { return n.Named("left") }
func (n *Node) Right() *Node        { return n.Named("right") }
func (n *Node) Condition() *Node    { return n.Named("condition") }
func (n *Node) Consequence() *Node  { return n.Named("consequence") }
func (n *Node) Alternative() *Node  { return n.Named("alternative") }
func (n *Node) Callee() *Node       { return n.Named("callee") }
func (n *Node) Object() *Node       { return n.Named("object") }
func (n *Node) Property() *Node     { return n.Named("property") }
func (n *Node) Arguments() []*Node  { return n.NamedList("arguments") }
func (n *Node) Parameters() []*Node { return n.NamedList("parameters") }
func (n *Node) Elements() []*Node   { return n.NamedList("elements") }
func (n *Node) Properties() []*Node { return n.NamedList("properties") }
func (n *Node) Statements() []*Node { return n.NamedList("statements") }
func (n *Node) Cases() []*Node      { return n.NamedList("cases") }

// IsNoSubTemplate reports whether a template_string node had no ${...}
// interpolations, i.e. it is eligible to be treated as a string literal
// for stepId extraction.
func (n *Node) IsNoSubTemplate() bool {
	return n != nil && n.Kind == KindTemplateString && n.noSubTemplate
}

// StringValue returns the literal value of a string or no-substitution
// template_string node, without its quotes. Backslash escape sequences
// are kept as written; they are not decoded.
func (n *Node) StringValue() (string, bool) {
	if n == nil {
		return "", false
	}
	if n.Kind == KindString {
		return n.literalValue, true
	}
	if n.Kind == KindTemplateString && n.noSubTemplate {
		return n.literalValue, true
	}
	return "", false
}

// NumberValue returns the parsed numeric value of a number node.
func (n *Node) NumberValue() (float64, bool) {
	if n == nil || n.Kind != KindNumber {
		return 0, false
	}
	return n.literalNumber, true
}

// BoolValue returns the literal boolean value of a true/false node.
func (n *Node) BoolValue() (bool, bool) {
	if n == nil {
		return false, false
	}
	switch n.Kind {
	case KindTrue:
		return true, true
	case KindFalse:
		return false, true
	}
	return false, false
}
