package ast

import "fmt"

// ExprToPattern reinterprets an expression parsed under the
// destructuring-assignment cover grammar (spec.md §5.4: "object/array
// literal vs. destructuring pattern") as a Pattern. It never mutates or
// reuses the expression's nodes; every Pattern it returns is a fresh value,
// so a node can never be observed as both an Expression and a Pattern
// through the same pointer.
//
// Only the expression shapes the grammar actually allows on a destructuring
// left-hand side convert successfully: Identifier, MemberExpression,
// ArrayExpression, ObjectExpression, AssignmentExpression with operator
// "=", and SpreadElement (which becomes the pattern's RestElement). Any
// other expression shape (a call, a literal, a binary expression, ...)
// returns an error, which the parser turns into a fatal syntax error at the
// position where the cover grammar was committed to a pattern.
func ExprToPattern(expr Node) (Pattern, error) {
	switch e := expr.(type) {
	case *Identifier:
		return &Identifier{NodeBase: e.NodeBase, Name: e.Name}, nil

	case *MemberExpression:
		return &MemberExpression{
			NodeBase: e.NodeBase,
			Object:   e.Object,
			Property: e.Property,
			Computed: e.Computed,
		}, nil

	case *AssignmentExpression:
		if e.Operator != "=" {
			return nil, fmt.Errorf("invalid destructuring target: compound assignment %q", e.Operator)
		}
		left, err := exprOrPatternToPattern(e.Left)
		if err != nil {
			return nil, err
		}
		return &AssignmentPattern{NodeBase: e.NodeBase, Left: left, Right: e.Right}, nil

	case *ArrayExpression:
		elements := make([]Pattern, len(e.Elements))
		for i, el := range e.Elements {
			if el == nil {
				continue
			}
			if spread, ok := el.(*SpreadElement); ok {
				if i != len(e.Elements)-1 {
					return nil, fmt.Errorf("rest element must be last in array pattern")
				}
				arg, err := ExprToPattern(spread.Argument)
				if err != nil {
					return nil, err
				}
				elements[i] = &RestElement{NodeBase: spread.NodeBase, Argument: arg}
				continue
			}
			p, err := ExprToPattern(el)
			if err != nil {
				return nil, err
			}
			elements[i] = p
		}
		return &ArrayPattern{NodeBase: e.NodeBase, Elements: elements}, nil

	case *ObjectExpression:
		props := make([]Node, len(e.Properties))
		for i, p := range e.Properties {
			switch prop := p.(type) {
			case *SpreadElement:
				if i != len(e.Properties)-1 {
					return nil, fmt.Errorf("rest element must be last in object pattern")
				}
				arg, err := ExprToPattern(prop.Argument)
				if err != nil {
					return nil, err
				}
				props[i] = &RestElement{NodeBase: prop.NodeBase, Argument: arg}
			case *Property:
				if prop.Kind != "init" || prop.Method {
					return nil, fmt.Errorf("invalid destructuring target: accessor or method property")
				}
				val, err := ExprToPattern(prop.Value)
				if err != nil {
					return nil, err
				}
				props[i] = &AssignmentProperty{
					NodeBase:  prop.NodeBase,
					Key:       prop.Key,
					Value:     val,
					Computed:  prop.Computed,
					Shorthand: prop.Shorthand,
				}
			default:
				return nil, fmt.Errorf("invalid destructuring target: unexpected object property shape")
			}
		}
		return &ObjectPattern{NodeBase: e.NodeBase, Properties: props}, nil

	default:
		return nil, fmt.Errorf("invalid destructuring target: %T is not assignable", expr)
	}
}

// exprOrPatternToPattern accepts either shape on the left of a nested
// AssignmentExpression: the parser may have already produced a Pattern
// (e.g. while reinterpreting an arrow parameter list) or still hold the raw
// Expression form.
func exprOrPatternToPattern(n Node) (Pattern, error) {
	if p, ok := n.(Pattern); ok {
		return p, nil
	}
	return ExprToPattern(n)
}
