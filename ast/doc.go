// Package ast defines the ESTree-shaped syntax tree produced by package
// parser. Every node type embeds NodeBase, which carries the optional
// Start/End byte-range and Loc line/column fields controlled by
// parser.Options.Ranges and parser.Options.Locations.
//
// Node values are always returned as concrete pointer types (*Identifier,
// *BinaryExpression, ...); the Expression, Statement, Pattern and
// Declaration interfaces exist so call sites can hold heterogeneous
// children without a type switch at every level.
//
// JSON output matches the ESTree "type" discriminated-union convention:
//
//	b, _ := json.Marshal(program)
//	// {"type":"Program","body":[...],"sourceType":"script"}
package ast
