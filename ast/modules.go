package ast

// ImportDeclaration. Specifiers entries are *ImportSpecifier,
// *ImportDefaultSpecifier or *ImportNamespaceSpecifier, in source order.
type ImportDeclaration struct {
	NodeBase
	Specifiers []Node   `json:"specifiers"`
	Source     *Literal `json:"source"`
}

func (n *ImportDeclaration) isNode()      {}
func (n *ImportDeclaration) isStatement() {}
func (n *ImportDeclaration) MarshalJSON() ([]byte, error) {
	type alias ImportDeclaration
	return marshalNode("ImportDeclaration", alias(*n))
}

// ImportSpecifier is one `{ imported as local }` entry; Imported equals
// Local when there is no `as` clause.
type ImportSpecifier struct {
	NodeBase
	Imported *Identifier `json:"imported"`
	Local    *Identifier `json:"local"`
}

func (n *ImportSpecifier) isNode() {}
func (n *ImportSpecifier) MarshalJSON() ([]byte, error) {
	type alias ImportSpecifier
	return marshalNode("ImportSpecifier", alias(*n))
}

// ImportDefaultSpecifier is the bare `name` in `import name from "...".`.
type ImportDefaultSpecifier struct {
	NodeBase
	Local *Identifier `json:"local"`
}

func (n *ImportDefaultSpecifier) isNode() {}
func (n *ImportDefaultSpecifier) MarshalJSON() ([]byte, error) {
	type alias ImportDefaultSpecifier
	return marshalNode("ImportDefaultSpecifier", alias(*n))
}

// ImportNamespaceSpecifier is `* as name`.
type ImportNamespaceSpecifier struct {
	NodeBase
	Local *Identifier `json:"local"`
}

func (n *ImportNamespaceSpecifier) isNode() {}
func (n *ImportNamespaceSpecifier) MarshalJSON() ([]byte, error) {
	type alias ImportNamespaceSpecifier
	return marshalNode("ImportNamespaceSpecifier", alias(*n))
}

// ExportNamedDeclaration covers both `export <declaration>` (Declaration
// set, Specifiers/Source nil) and `export { a, b as c } [from "...']`
// (Declaration nil, Specifiers set, Source nil unless re-exporting).
type ExportNamedDeclaration struct {
	NodeBase
	Declaration Statement         `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal          `json:"source"`
}

func (n *ExportNamedDeclaration) isNode()      {}
func (n *ExportNamedDeclaration) isStatement() {}
func (n *ExportNamedDeclaration) MarshalJSON() ([]byte, error) {
	type alias ExportNamedDeclaration
	return marshalNode("ExportNamedDeclaration", alias(*n))
}

// ExportSpecifier. Exported equals Local when there is no `as` clause.
type ExportSpecifier struct {
	NodeBase
	Local    *Identifier `json:"local"`
	Exported *Identifier `json:"exported"`
}

func (n *ExportSpecifier) isNode() {}
func (n *ExportSpecifier) MarshalJSON() ([]byte, error) {
	type alias ExportSpecifier
	return marshalNode("ExportSpecifier", alias(*n))
}

// ExportDefaultDeclaration. Declaration is a *FunctionDeclaration,
// *ClassDeclaration (either may be anonymous) or any Expression.
type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node `json:"declaration"`
}

func (n *ExportDefaultDeclaration) isNode()      {}
func (n *ExportDefaultDeclaration) isStatement() {}
func (n *ExportDefaultDeclaration) MarshalJSON() ([]byte, error) {
	type alias ExportDefaultDeclaration
	return marshalNode("ExportDefaultDeclaration", alias(*n))
}

// ExportAllDeclaration is `export * from "...".`.
type ExportAllDeclaration struct {
	NodeBase
	Source *Literal `json:"source"`
}

func (n *ExportAllDeclaration) isNode()      {}
func (n *ExportAllDeclaration) isStatement() {}
func (n *ExportAllDeclaration) MarshalJSON() ([]byte, error) {
	type alias ExportAllDeclaration
	return marshalNode("ExportAllDeclaration", alias(*n))
}

// FunctionDeclaration. Id is nil only for `export default function() {}`.
type FunctionDeclaration struct {
	NodeBase
	Id        *Identifier     `json:"id"`
	Params    []Pattern       `json:"params"`
	Body      *BlockStatement `json:"body"`
	Generator bool            `json:"generator"`
	Async     bool            `json:"async"`
}

func (n *FunctionDeclaration) isNode()        {}
func (n *FunctionDeclaration) isStatement()   {}
func (n *FunctionDeclaration) isDeclaration() {}
func (n *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type alias FunctionDeclaration
	return marshalNode("FunctionDeclaration", alias(*n))
}
