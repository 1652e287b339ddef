package ast

import "encoding/json"

// Position is a single line/column pair, matching ESTree's SourceLocation
// endpoints. Columns are 0-based UTF-16 code units, lines are 1-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is attached to a node's Loc field when parser.Options.
// Locations is set.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NodeBase is embedded by every concrete node type. Start/End hold UTF-16
// code-unit offsets and are populated only when parser.Options.Ranges is
// set; Loc is populated only when parser.Options.Locations is set. Both are
// left nil otherwise so they are omitted from JSON output entirely, rather
// than serializing as zero.
type NodeBase struct {
	Start *int            `json:"start,omitempty"`
	End   *int            `json:"end,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`
}

// Node is implemented by every AST node.
type Node interface {
	isNode()
}

// Statement is implemented by every node valid in a statement position.
type Statement interface {
	Node
	isStatement()
}

// Declaration is a Statement that also introduces a binding
// (FunctionDeclaration, VariableDeclaration, ClassDeclaration).
type Declaration interface {
	Statement
	isDeclaration()
}

// Expression is implemented by every node valid in an expression position.
type Expression interface {
	Node
	isExpression()
}

// Pattern is implemented by every node valid as a binding or assignment
// target: Identifier, MemberExpression, ObjectPattern, ArrayPattern,
// AssignmentPattern and RestElement.
type Pattern interface {
	Node
	isPattern()
}

// ForInit is the union of nodes legal in a C-style for statement's
// initializer clause: *VariableDeclaration or any Expression. It is not a
// distinct marker interface (every Expression and *VariableDeclaration
// already satisfies Node); the parser alone is responsible for only ever
// constructing one of those two shapes here.
type ForInit = Node

// ForTarget is the union of nodes legal on the left of for-in/for-of:
// *VariableDeclaration or any Pattern.
type ForTarget = Node

// marshalNode injects the ESTree "type" discriminator ahead of a node's own
// fields. Every node's MarshalJSON delegates here instead of hand-writing
// the wrapper struct.
func marshalNode[T any](typ string, v T) ([]byte, error) {
	fields, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(typ)
	if err != nil {
		return nil, err
	}
	out := append([]byte(`{"type":`), tag...)
	if len(fields) > 2 {
		out = append(out, ',')
		out = append(out, fields[1:]...)
	} else {
		out = append(out, '}')
	}
	return out, nil
}
