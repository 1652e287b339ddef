package ast

// Identifier is dual-natured: it is both an Expression (a variable
// reference) and a Pattern (a binding target), matching ESTree.
type Identifier struct {
	NodeBase
	Name string `json:"name"`
}

func (n *Identifier) isNode()       {}
func (n *Identifier) isExpression() {}
func (n *Identifier) isPattern()    {}
func (n *Identifier) MarshalJSON() ([]byte, error) {
	type alias Identifier
	return marshalNode("Identifier", alias(*n))
}

// Literal covers every non-template, non-bigint literal: string, number,
// boolean, null, and regex. Regex literals also set Regex; Value holds the
// *regexp2.Regexp the parser obtained by attempting host construction
// (spec.md §4.2's "the parser asks the host to attempt construction"), or
// nil when that construction failed — the literal still parses
// successfully either way.
type Literal struct {
	NodeBase
	Value any          `json:"value"`
	Raw   string       `json:"raw,omitempty"`
	Regex *RegexValue  `json:"regex,omitempty"`
}

// RegexValue mirrors ESTree's Literal.regex shape.
type RegexValue struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func (n *Literal) isNode()       {}
func (n *Literal) isExpression() {}
func (n *Literal) MarshalJSON() ([]byte, error) {
	type alias Literal
	return marshalNode("Literal", alias(*n))
}

// BigIntLiteral is emitted for arbitrary-precision integer literals (the
// `123n` syntax) instead of folding them into Literal, so consumers are
// never tempted to read a *big.Int out of Literal.Value as if it were a
// regular number. Value holds the decimal digit string without the
// trailing 'n'.
type BigIntLiteral struct {
	NodeBase
	Value string `json:"value"`
	Raw   string `json:"raw,omitempty"`
}

func (n *BigIntLiteral) isNode()       {}
func (n *BigIntLiteral) isExpression() {}
func (n *BigIntLiteral) MarshalJSON() ([]byte, error) {
	type alias BigIntLiteral
	return marshalNode("BigIntLiteral", alias(*n))
}

// TemplateElement is one quasi (static text run) of a TemplateLiteral. Tail
// is true for the closing quasi.
type TemplateElement struct {
	NodeBase
	Tail   bool   `json:"tail"`
	Cooked string `json:"cooked"`
	Raw    string `json:"raw"`
}

func (n *TemplateElement) isNode() {}
func (n *TemplateElement) MarshalJSON() ([]byte, error) {
	type alias TemplateElement
	return marshalNode("TemplateElement", alias(*n))
}

// TemplateLiteral always satisfies len(Quasis) == len(Expressions)+1.
type TemplateLiteral struct {
	NodeBase
	Quasis      []*TemplateElement `json:"quasis"`
	Expressions []Expression       `json:"expressions"`
}

func (n *TemplateLiteral) isNode()       {}
func (n *TemplateLiteral) isExpression() {}
func (n *TemplateLiteral) MarshalJSON() ([]byte, error) {
	type alias TemplateLiteral
	return marshalNode("TemplateLiteral", alias(*n))
}

// TaggedTemplateExpression is `tag\`...\``.
type TaggedTemplateExpression struct {
	NodeBase
	Tag   Expression       `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func (n *TaggedTemplateExpression) isNode()       {}
func (n *TaggedTemplateExpression) isExpression() {}
func (n *TaggedTemplateExpression) MarshalJSON() ([]byte, error) {
	type alias TaggedTemplateExpression
	return marshalNode("TaggedTemplateExpression", alias(*n))
}

// ArrayExpression. Elements entries are an Expression, a *SpreadElement
// (stage-3 pack aside, spread is already standard inside array literals),
// or nil for an elision ("hole"), e.g. the middle slot of `[1, , 3]`.
type ArrayExpression struct {
	NodeBase
	Elements []Node `json:"elements"`
}

func (n *ArrayExpression) isNode()       {}
func (n *ArrayExpression) isExpression() {}
func (n *ArrayExpression) MarshalJSON() ([]byte, error) {
	type alias ArrayExpression
	return marshalNode("ArrayExpression", alias(*n))
}

// ObjectExpression.Properties entries are *Property or, once the stage-3
// object-spread pack (Options.Next) is enabled, *SpreadElement.
type ObjectExpression struct {
	NodeBase
	Properties []Node `json:"properties"`
}

func (n *ObjectExpression) isNode()       {}
func (n *ObjectExpression) isExpression() {}
func (n *ObjectExpression) MarshalJSON() ([]byte, error) {
	type alias ObjectExpression
	return marshalNode("ObjectExpression", alias(*n))
}

// Property is one key/value entry of an ObjectExpression. Kind is "init",
// "get" or "set". Shorthand is true for `{x}`; Method is true for
// `{f() {}}`.
type Property struct {
	NodeBase
	Key       Expression `json:"key"`
	Value     Expression `json:"value"`
	Kind      string     `json:"kind"`
	Computed  bool       `json:"computed"`
	Shorthand bool       `json:"shorthand"`
	Method    bool       `json:"method"`
}

func (n *Property) isNode() {}
func (n *Property) MarshalJSON() ([]byte, error) {
	type alias Property
	return marshalNode("Property", alias(*n))
}

// SpreadElement is `...expr` inside an array literal, call argument list or
// (stage-3 pack) object literal.
type SpreadElement struct {
	NodeBase
	Argument Expression `json:"argument"`
}

func (n *SpreadElement) isNode() {}
func (n *SpreadElement) MarshalJSON() ([]byte, error) {
	type alias SpreadElement
	return marshalNode("SpreadElement", alias(*n))
}

// FunctionExpression backs both named and anonymous function expressions
// and, with Id nil, method/getter/setter function values.
type FunctionExpression struct {
	NodeBase
	Id        *Identifier     `json:"id"`
	Params    []Pattern       `json:"params"`
	Body      *BlockStatement `json:"body"`
	Generator bool            `json:"generator"`
	Async     bool            `json:"async"`
}

func (n *FunctionExpression) isNode()       {}
func (n *FunctionExpression) isExpression() {}
func (n *FunctionExpression) MarshalJSON() ([]byte, error) {
	type alias FunctionExpression
	return marshalNode("FunctionExpression", alias(*n))
}

// ArrowFunctionExpression. Body is either a *BlockStatement (ExpressionBody
// false) or an Expression (ExpressionBody true, the concise body form).
// Arrow functions are never generators; Async mirrors `async (...) => ...`.
type ArrowFunctionExpression struct {
	NodeBase
	Params         []Pattern `json:"params"`
	Body           Node      `json:"body"`
	Async          bool      `json:"async"`
	ExpressionBody bool      `json:"expression"`
}

func (n *ArrowFunctionExpression) isNode()       {}
func (n *ArrowFunctionExpression) isExpression() {}
func (n *ArrowFunctionExpression) MarshalJSON() ([]byte, error) {
	type alias ArrowFunctionExpression
	return marshalNode("ArrowFunctionExpression", alias(*n))
}

// UnaryExpression. Prefix is always true for the ES2018 unary operator set
// (typeof, void, delete, +, -, ~, !); the field exists to match ESTree's
// shape, which reuses it for UpdateExpression's postfix form.
type UnaryExpression struct {
	NodeBase
	Operator string     `json:"operator"`
	Prefix   bool       `json:"prefix"`
	Argument Expression `json:"argument"`
}

func (n *UnaryExpression) isNode()       {}
func (n *UnaryExpression) isExpression() {}
func (n *UnaryExpression) MarshalJSON() ([]byte, error) {
	type alias UnaryExpression
	return marshalNode("UnaryExpression", alias(*n))
}

// UpdateExpression is `++x`/`--x` (Prefix true) or `x++`/`x--` (Prefix
// false).
type UpdateExpression struct {
	NodeBase
	Operator string     `json:"operator"`
	Argument Expression `json:"argument"`
	Prefix   bool       `json:"prefix"`
}

func (n *UpdateExpression) isNode()       {}
func (n *UpdateExpression) isExpression() {}
func (n *UpdateExpression) MarshalJSON() ([]byte, error) {
	type alias UpdateExpression
	return marshalNode("UpdateExpression", alias(*n))
}

// BinaryExpression covers every non-short-circuiting binary operator,
// including `in` and `instanceof`.
type BinaryExpression struct {
	NodeBase
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func (n *BinaryExpression) isNode()       {}
func (n *BinaryExpression) isExpression() {}
func (n *BinaryExpression) MarshalJSON() ([]byte, error) {
	type alias BinaryExpression
	return marshalNode("BinaryExpression", alias(*n))
}

// LogicalExpression is `&&`, `||`, kept distinct from BinaryExpression
// because its operands are not eagerly evaluated.
type LogicalExpression struct {
	NodeBase
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func (n *LogicalExpression) isNode()       {}
func (n *LogicalExpression) isExpression() {}
func (n *LogicalExpression) MarshalJSON() ([]byte, error) {
	type alias LogicalExpression
	return marshalNode("LogicalExpression", alias(*n))
}

// AssignmentExpression. Left is a Pattern for destructuring assignment
// (`[a, b] = x`) or an Expression for a simple assignment target
// (Identifier or MemberExpression); package parser builds it via
// ExprToPattern whenever the left-hand side was parsed as an expression
// under the assignment-target cover grammar.
type AssignmentExpression struct {
	NodeBase
	Operator string     `json:"operator"`
	Left     Node       `json:"left"`
	Right    Expression `json:"right"`
}

func (n *AssignmentExpression) isNode()       {}
func (n *AssignmentExpression) isExpression() {}
func (n *AssignmentExpression) MarshalJSON() ([]byte, error) {
	type alias AssignmentExpression
	return marshalNode("AssignmentExpression", alias(*n))
}

// ConditionalExpression is the `?:` ternary.
type ConditionalExpression struct {
	NodeBase
	Test       Expression `json:"test"`
	Consequent Expression `json:"consequent"`
	Alternate  Expression `json:"alternate"`
}

func (n *ConditionalExpression) isNode()       {}
func (n *ConditionalExpression) isExpression() {}
func (n *ConditionalExpression) MarshalJSON() ([]byte, error) {
	type alias ConditionalExpression
	return marshalNode("ConditionalExpression", alias(*n))
}

// CallExpression. Callee is *Import for a dynamic `import(...)` call
// (Options.Next), *Super for `super(...)`, or any other Expression.
// Arguments entries are an Expression or a *SpreadElement.
type CallExpression struct {
	NodeBase
	Callee    Node   `json:"callee"`
	Arguments []Node `json:"arguments"`
}

func (n *CallExpression) isNode()       {}
func (n *CallExpression) isExpression() {}
func (n *CallExpression) MarshalJSON() ([]byte, error) {
	type alias CallExpression
	return marshalNode("CallExpression", alias(*n))
}

// NewExpression. Arguments entries are an Expression or a *SpreadElement.
type NewExpression struct {
	NodeBase
	Callee    Expression `json:"callee"`
	Arguments []Node     `json:"arguments"`
}

func (n *NewExpression) isNode()       {}
func (n *NewExpression) isExpression() {}
func (n *NewExpression) MarshalJSON() ([]byte, error) {
	type alias NewExpression
	return marshalNode("NewExpression", alias(*n))
}

// MemberExpression is dual-natured like Identifier: it can appear as an
// Expression (`a.b`) or, as an assignment/destructuring target, as a
// Pattern (`({a.b} = x)` is invalid, but `a.b = x` and `[a.b] = x` are).
// Property is an Identifier for the dotted form (Computed false) or any
// Expression for the bracketed form (Computed true).
type MemberExpression struct {
	NodeBase
	Object    Expression `json:"object"`
	Property  Expression `json:"property"`
	Computed  bool       `json:"computed"`
}

func (n *MemberExpression) isNode()       {}
func (n *MemberExpression) isExpression() {}
func (n *MemberExpression) isPattern()    {}
func (n *MemberExpression) MarshalJSON() ([]byte, error) {
	type alias MemberExpression
	return marshalNode("MemberExpression", alias(*n))
}

// SequenceExpression is the comma operator.
type SequenceExpression struct {
	NodeBase
	Expressions []Expression `json:"expressions"`
}

func (n *SequenceExpression) isNode()       {}
func (n *SequenceExpression) isExpression() {}
func (n *SequenceExpression) MarshalJSON() ([]byte, error) {
	type alias SequenceExpression
	return marshalNode("SequenceExpression", alias(*n))
}

// ThisExpression is the bare `this` keyword.
type ThisExpression struct {
	NodeBase
}

func (n *ThisExpression) isNode()       {}
func (n *ThisExpression) isExpression() {}
func (n *ThisExpression) MarshalJSON() ([]byte, error) {
	type alias ThisExpression
	return marshalNode("ThisExpression", alias(*n))
}

// Super is the bare `super` keyword, legal only as a MemberExpression
// object or a CallExpression callee inside a derived class constructor or
// method.
type Super struct {
	NodeBase
}

func (n *Super) isNode()       {}
func (n *Super) isExpression() {}
func (n *Super) MarshalJSON() ([]byte, error) {
	type alias Super
	return marshalNode("Super", alias(*n))
}

// Import is the bare `import` keyword used as a CallExpression callee for
// dynamic `import(specifier)`, gated behind Options.Next.
type Import struct {
	NodeBase
}

func (n *Import) isNode()       {}
func (n *Import) isExpression() {}
func (n *Import) MarshalJSON() ([]byte, error) {
	type alias Import
	return marshalNode("Import", alias(*n))
}

// MetaProperty is `new.target` (and, with Options.Next, `import.meta`).
type MetaProperty struct {
	NodeBase
	Meta     *Identifier `json:"meta"`
	Property *Identifier `json:"property"`
}

func (n *MetaProperty) isNode()       {}
func (n *MetaProperty) isExpression() {}
func (n *MetaProperty) MarshalJSON() ([]byte, error) {
	type alias MetaProperty
	return marshalNode("MetaProperty", alias(*n))
}

// YieldExpression is only legal inside a generator function body. Delegate
// is true for `yield*`; Argument is nil for a bare `yield`.
type YieldExpression struct {
	NodeBase
	Argument Expression `json:"argument"`
	Delegate bool       `json:"delegate"`
}

func (n *YieldExpression) isNode()       {}
func (n *YieldExpression) isExpression() {}
func (n *YieldExpression) MarshalJSON() ([]byte, error) {
	type alias YieldExpression
	return marshalNode("YieldExpression", alias(*n))
}

// AwaitExpression is only legal inside an async function body (or at the
// top level of a module).
type AwaitExpression struct {
	NodeBase
	Argument Expression `json:"argument"`
}

func (n *AwaitExpression) isNode()       {}
func (n *AwaitExpression) isExpression() {}
func (n *AwaitExpression) MarshalJSON() ([]byte, error) {
	type alias AwaitExpression
	return marshalNode("AwaitExpression", alias(*n))
}

// DoExpression is the V8 feature-pack `do { ... }` expression form, whose
// value is that of the last completed statement in Body.
type DoExpression struct {
	NodeBase
	Body *BlockStatement `json:"body"`
}

func (n *DoExpression) isNode()       {}
func (n *DoExpression) isExpression() {}
func (n *DoExpression) MarshalJSON() ([]byte, error) {
	type alias DoExpression
	return marshalNode("DoExpression", alias(*n))
}

// ThrowExpression is the third opt-in feature pack's `throw expr` used in
// expression position (e.g. as the right side of `??` in other dialects, or
// inside an arrow concise body here).
type ThrowExpression struct {
	NodeBase
	Argument Expression `json:"argument"`
}

func (n *ThrowExpression) isNode()       {}
func (n *ThrowExpression) isExpression() {}
func (n *ThrowExpression) MarshalJSON() ([]byte, error) {
	type alias ThrowExpression
	return marshalNode("ThrowExpression", alias(*n))
}
