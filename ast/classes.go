package ast

// ClassDeclaration. Id is nil only for `export default class { ... }`.
// SuperClass is nil for a non-derived class.
type ClassDeclaration struct {
	NodeBase
	Id         *Identifier `json:"id"`
	SuperClass Expression  `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func (n *ClassDeclaration) isNode()        {}
func (n *ClassDeclaration) isStatement()   {}
func (n *ClassDeclaration) isDeclaration() {}
func (n *ClassDeclaration) MarshalJSON() ([]byte, error) {
	type alias ClassDeclaration
	return marshalNode("ClassDeclaration", alias(*n))
}

// ClassExpression has the same shape as ClassDeclaration but is valid in
// expression position, e.g. `const C = class extends Base { ... }`.
type ClassExpression struct {
	NodeBase
	Id         *Identifier `json:"id"`
	SuperClass Expression  `json:"superClass"`
	Body       *ClassBody  `json:"body"`
}

func (n *ClassExpression) isNode()       {}
func (n *ClassExpression) isExpression() {}
func (n *ClassExpression) MarshalJSON() ([]byte, error) {
	type alias ClassExpression
	return marshalNode("ClassExpression", alias(*n))
}

// ClassBody holds the method/accessor list between a class's braces.
// ES2018 has no class-field proposal; every entry is a *MethodDefinition.
type ClassBody struct {
	NodeBase
	Body []*MethodDefinition `json:"body"`
}

func (n *ClassBody) isNode() {}
func (n *ClassBody) MarshalJSON() ([]byte, error) {
	type alias ClassBody
	return marshalNode("ClassBody", alias(*n))
}

// MethodDefinition. Kind is "constructor", "method", "get" or "set". The
// parser enforces ES2018's early errors on this shape: at most one plain
// "constructor", no "constructor" with Kind "get"/"set" or Static true, no
// duplicate "constructor".
type MethodDefinition struct {
	NodeBase
	Key      Expression           `json:"key"`
	Value    *FunctionExpression  `json:"value"`
	Kind     string               `json:"kind"`
	Computed bool                 `json:"computed"`
	Static   bool                 `json:"static"`
}

func (n *MethodDefinition) isNode() {}
func (n *MethodDefinition) MarshalJSON() ([]byte, error) {
	type alias MethodDefinition
	return marshalNode("MethodDefinition", alias(*n))
}
