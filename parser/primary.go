package parser

import (
	"math/big"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// parsePrimary parses the grammar's terminal expression productions:
// literals, identifiers, `this`/`super`, parenthesized groups (the
// arrow-head cover grammar), array/object literals, function/class
// expressions, templates, and the opt-in `do`/dynamic-import/JSX forms.
func (p *Parser) parsePrimary(ctx Context) ast.Expression {
	start := p.pos()
	switch {
	case p.at(token.NUMBER):
		if raw := p.tok.Literal; ctx.inStrict() && len(raw) > 1 && raw[0] == '0' &&
			raw[1] >= '0' && raw[1] <= '9' && !strings.ContainsAny(raw, "89") {
			p.failTok(p.tok, "octal literals are not allowed in strict mode")
		}
		lit := &ast.Literal{Value: p.tok.Value, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.BIGINT):
		v, _ := p.tok.Value.(*big.Int)
		lit := &ast.BigIntLiteral{Value: v.String(), Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.STRING):
		if ctx.inStrict() && lexer.HadLegacyOctalEscape(p.tok.Value) {
			p.fail(start, "octal escape sequences are not allowed in strict mode")
		}
		lit := &ast.Literal{Value: p.tok.Cooked, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.REGEXP):
		return p.parseRegexLiteral(start)

	case p.at(token.TRUE_LIT):
		lit := &ast.Literal{Value: true, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.FALSE_LIT):
		lit := &ast.Literal{Value: false, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.NULL_LIT):
		lit := &ast.Literal{Value: nil, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit

	case p.at(token.THIS):
		p.advance()
		n := &ast.ThisExpression{}
		p.finishNode(&n.NodeBase, start)
		return n

	case p.at(token.SUPER):
		return p.parseSuper(ctx)

	case p.at(token.LPAREN):
		return p.parsePrimaryParen(ctx)

	case p.at(token.LBRACKET):
		return p.parseArrayLiteral(ctx)

	case p.at(token.LBRACE):
		return p.parseObjectLiteral(ctx)

	case p.at(token.TEMPLATE_HEAD) || p.at(token.TEMPLATE_NOSUB):
		return p.parseTemplateLiteral(ctx)

	case p.at(token.FUNCTION):
		return p.parseFunctionExpression(ctx, false)

	case p.at(token.CLASS):
		return p.parseClassExpression(ctx)

	case p.at(token.ASYNC):
		return p.parseAsyncPrimary(ctx)

	case p.at(token.IMPORT):
		return p.parseImportExpression(ctx, start)

	case p.opts.V8 && p.at(token.DO):
		return p.parseDoExpression(ctx)

	case p.opts.JSX && p.at(token.LT):
		return p.parseJSXElement(ctx)

	case p.tok.Kind.Is(token.FlagIdentifier):
		return p.parseIdentifierReference(ctx, start)
	}

	p.failTok(p.tok, "unexpected token %s", p.tok.Kind)
	return nil
}

func (p *Parser) parseIdentifierReference(ctx Context, start token.Position) ast.Expression {
	if p.tok.Kind.Is(token.FlagFutureReserved) && ctx.inStrict() {
		p.fail(start, "'%s' is a reserved identifier in strict mode", p.tok.Literal)
	}
	name := p.tok.Literal
	p.advance()
	id := &ast.Identifier{Name: name}
	p.finishNode(&id.NodeBase, start)
	return id
}

func (p *Parser) parseSuper(ctx Context) ast.Expression {
	start := p.pos()
	p.advance()
	sup := &ast.Super{}
	p.finishNode(&sup.NodeBase, start)
	switch {
	case p.at(token.LPAREN):
		if !p.allowSuperCall {
			p.fail(start, "'super' call is only valid inside a derived class constructor")
		}
	case p.at(token.DOT) || p.at(token.LBRACKET):
		if !p.allowSuperProperty {
			p.fail(start, "'super' keyword is only valid inside a class method")
		}
	default:
		p.fail(start, "'super' keyword is unexpected here")
	}
	return sup
}

// parseRegexLiteral validates only the flag set and well-formedness of the
// slash/bracket structure (already enforced by the lexer); body validation
// is delegated to the host RegExp engine, approximated here via
// dlclark/regexp2 (spec.md §1: "delegated to the host's RegExp
// constructor"). A construction failure never aborts the parse — per
// spec.md §4.2 the literal still succeeds, with Value left nil on failure
// and set to the compiled *regexp2.Regexp on success.
func (p *Parser) parseRegexLiteral(start token.Position) ast.Expression {
	payload := p.tok.Regex
	if strings.ContainsRune(payload.Flags, 's') && !p.opts.Next {
		p.fail(start, "regular expression flag 's' requires the stage-3 feature pack")
	}
	var reOpts regexp2.RegexOptions
	if strings.ContainsRune(payload.Flags, 'i') {
		reOpts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(payload.Flags, 'm') {
		reOpts |= regexp2.Multiline
	}
	if strings.ContainsRune(payload.Flags, 's') {
		reOpts |= regexp2.Singleline
	}
	var value any
	if compiled, err := regexp2.Compile(payload.Pattern, reOpts); err == nil {
		value = compiled
	}

	lit := &ast.Literal{Value: value, Regex: &ast.RegexValue{Pattern: payload.Pattern, Flags: payload.Flags}, Raw: p.tok.Raw}
	p.advance()
	p.finishNode(&lit.NodeBase, start)
	return lit
}

func (p *Parser) templateElementFromToken(tok token.Token, tail bool) *ast.TemplateElement {
	el := &ast.TemplateElement{Tail: tail, Cooked: tok.Cooked, Raw: tok.Raw}
	p.setNodeRange(&el.NodeBase, tok.Start, tok.End)
	return el
}

// parseTemplateLiteral parses a template from TEMPLATE_NOSUB or
// TEMPLATE_HEAD onward, using RescanTemplateContinuation (spec.md §4.2's
// scanTemplateNext) to resume lexing after each "${...}" substitution's
// closing brace.
func (p *Parser) parseTemplateLiteral(ctx Context) *ast.TemplateLiteral {
	start := p.pos()
	if p.at(token.TEMPLATE_NOSUB) {
		q := p.templateElementFromToken(p.tok, true)
		p.advance()
		tl := &ast.TemplateLiteral{Quasis: []*ast.TemplateElement{q}}
		p.finishNode(&tl.NodeBase, start)
		return tl
	}

	var quasis []*ast.TemplateElement
	var exprs []ast.Expression
	quasis = append(quasis, p.templateElementFromToken(p.tok, false))
	p.advance()
	for {
		exprs = append(exprs, p.parseExpression(ctx.with(ctxIn)))
		if !p.at(token.RBRACE) {
			p.fail(p.pos(), "unexpected token %s, expected '}' to close template substitution", p.tok.Kind)
		}
		rbrace := p.tok
		next := p.lex.RescanTemplateContinuation(rbrace)
		p.prev = rbrace
		p.tok = next
		p.tok.AfterNewline = false
		p.exprAllowed = exprAllowedAfter(p.tok)
		tail := p.tok.Kind == token.TEMPLATE_TAIL
		quasis = append(quasis, p.templateElementFromToken(p.tok, tail))
		p.advance()
		if tail {
			break
		}
	}
	tl := &ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}
	p.finishNode(&tl.NodeBase, start)
	return tl
}

func (p *Parser) parseArrayLiteral(ctx Context) ast.Expression {
	start := p.pos()
	p.expect(token.LBRACKET)
	var elements []ast.Node
	for !p.at(token.RBRACKET) {
		if p.at(token.COMMA) {
			elements = append(elements, nil)
			p.advance()
			continue
		}
		if p.at(token.ELLIPSIS) {
			sStart := p.pos()
			p.advance()
			arg := p.parseAssignment(ctx.with(ctxIn))
			spread := &ast.SpreadElement{Argument: arg}
			p.finishNode(&spread.NodeBase, sStart)
			elements = append(elements, spread)
		} else {
			elements = append(elements, p.parseAssignment(ctx.with(ctxIn)))
		}
		if !p.at(token.RBRACKET) {
			if !p.eat(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RBRACKET)
	arr := &ast.ArrayExpression{Elements: elements}
	p.finishNode(&arr.NodeBase, start)
	return arr
}

func (p *Parser) parseObjectLiteral(ctx Context) ast.Expression {
	start := p.pos()
	p.expect(token.LBRACE)
	var props []ast.Node
	for !p.at(token.RBRACE) {
		if p.at(token.ELLIPSIS) {
			if !p.opts.Next {
				p.fail(p.pos(), "object spread requires the stage-3 feature pack")
			}
			sStart := p.pos()
			p.advance()
			arg := p.parseAssignment(ctx.with(ctxIn))
			spread := &ast.SpreadElement{Argument: arg}
			p.finishNode(&spread.NodeBase, sStart)
			props = append(props, spread)
		} else {
			props = append(props, p.parseObjectProperty(ctx))
		}
		if !p.at(token.RBRACE) {
			if !p.eat(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RBRACE)
	obj := &ast.ObjectExpression{Properties: props}
	p.finishNode(&obj.NodeBase, start)
	return obj
}

// parsePropertyKey parses an object-literal/class-method key: any
// IdentifierName (including reserved words, which are legal property
// names), a string literal, or a number literal.
func (p *Parser) parsePropertyKey() ast.Expression {
	start := p.pos()
	switch {
	case p.at(token.STRING):
		lit := &ast.Literal{Value: p.tok.Cooked, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit
	case p.at(token.NUMBER):
		lit := &ast.Literal{Value: p.tok.Value, Raw: p.tok.Raw}
		p.advance()
		p.finishNode(&lit.NodeBase, start)
		return lit
	default:
		if p.tok.Literal == "" {
			p.failTok(p.tok, "expected a property name")
		}
		name := p.tok.Literal
		p.advance()
		id := &ast.Identifier{Name: name}
		p.finishNode(&id.NodeBase, start)
		return id
	}
}

func isKeyTerminator(k token.Kind) bool {
	switch k {
	case token.COLON, token.COMMA, token.RBRACE, token.LPAREN, token.ASSIGN:
		return true
	}
	return false
}

func (p *Parser) parseObjectProperty(ctx Context) *ast.Property {
	start := p.pos()
	async, generator, kind := false, false, "init"

	if p.at(token.ASYNC) {
		snap := p.snapshot()
		p.advance()
		if p.tok.AfterNewline || isKeyTerminator(p.tok.Kind) {
			p.restore(snap)
		} else {
			async = true
		}
	}
	if p.at(token.STAR) {
		generator = true
		p.advance()
	}
	if (p.at(token.GET) || p.at(token.SET)) && !async && !generator {
		kindTok := p.tok
		snap := p.snapshot()
		p.advance()
		if isKeyTerminator(p.tok.Kind) {
			p.restore(snap)
		} else {
			kind = kindTok.Literal
		}
	}

	computed := false
	var key ast.Expression
	if p.at(token.LBRACKET) {
		computed = true
		p.advance()
		key = p.parseAssignment(ctx.with(ctxIn))
		p.expect(token.RBRACKET)
	} else {
		key = p.parsePropertyKey()
	}

	prop := &ast.Property{Key: key, Kind: kind, Computed: computed}

	if kind == "get" || kind == "set" || generator || async || p.at(token.LPAREN) {
		prop.Value = p.parseMethodBody(ctx, async, generator)
		prop.Method = kind == "init"
		p.finishNode(&prop.NodeBase, start)
		return prop
	}

	if p.eat(token.COLON) {
		prop.Value = p.parseAssignment(ctx.with(ctxIn))
		p.finishNode(&prop.NodeBase, start)
		return prop
	}

	id, ok := key.(*ast.Identifier)
	if !ok {
		p.fail(start, "invalid shorthand property name")
	}
	prop.Shorthand = true
	if p.eat(token.ASSIGN) {
		right := p.parseAssignment(ctx.with(ctxIn))
		valId := &ast.Identifier{NodeBase: id.NodeBase, Name: id.Name}
		assign := &ast.AssignmentExpression{Operator: "=", Left: valId, Right: right}
		p.finishNode(&assign.NodeBase, start)
		prop.Value = assign
	} else {
		prop.Value = &ast.Identifier{NodeBase: id.NodeBase, Name: id.Name}
	}
	p.finishNode(&prop.NodeBase, start)
	return prop
}

// parseParenElements parses the bracketed, comma-separated element list
// shared by the parenthesized-expression/arrow-head cover grammar (spec.md
// §4.3): each element is an assignment expression or, for the innermost
// dedicated rest-arrow form, a spread. wrapped[i] records whether element i
// was itself written with its own redundant parentheses, needed to reject
// it later as an arrow parameter (spec.md example 8).
func (p *Parser) parseParenElements(ctx Context) (elements []ast.Node, wrapped []bool, hasRest, trailingComma bool) {
	p.expect(token.LPAREN)
	for !p.at(token.RPAREN) {
		if p.at(token.ELLIPSIS) {
			hasRest = true
			sStart := p.pos()
			p.advance()
			arg := p.parseAssignment(ctx.with(ctxIn))
			spread := &ast.SpreadElement{Argument: arg}
			p.finishNode(&spread.NodeBase, sStart)
			elements = append(elements, spread)
			wrapped = append(wrapped, false)
		} else {
			isWrapped := p.at(token.LPAREN)
			elements = append(elements, p.parseAssignment(ctx.with(ctxIn)))
			wrapped = append(wrapped, isWrapped)
		}
		if p.eat(token.COMMA) {
			if p.at(token.RPAREN) {
				trailingComma = true
			}
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return
}

func (p *Parser) parsePrimaryParen(ctx Context) ast.Expression {
	start := p.pos()
	elements, wrapped, hasRest, trailingComma := p.parseParenElements(ctx)

	if p.at(token.ARROW) && !p.tok.AfterNewline {
		params := p.toArrowParams(elements, wrapped, start)
		return p.finishArrowFunction(ctx, start, params, false)
	}
	if hasRest {
		p.fail(start, "rest element is only valid in an arrow function parameter list")
	}
	if trailingComma {
		p.fail(start, "trailing comma is only valid in an arrow function parameter list")
	}
	if len(elements) == 0 {
		p.fail(start, "unexpected token ')'")
	}
	if len(elements) == 1 {
		return elements[0].(ast.Expression)
	}
	exprs := make([]ast.Expression, len(elements))
	for i, e := range elements {
		exprs[i] = e.(ast.Expression)
	}
	seq := &ast.SequenceExpression{Expressions: exprs}
	p.finishNode(&seq.NodeBase, start)
	return seq
}

// toArrowParams converts the parenthesized cover-grammar element list into
// an arrow function's parameter patterns, rejecting the shapes the grammar
// forbids there: a member expression, a non-trailing rest, or an element
// that was itself independently parenthesized.
func (p *Parser) toArrowParams(elements []ast.Node, wrapped []bool, start token.Position) []ast.Pattern {
	params := make([]ast.Pattern, len(elements))
	for i, el := range elements {
		if wrapped[i] {
			p.fail(start, "invalid arrow function parameter: unexpected parenthesized expression")
		}
		if spread, ok := el.(*ast.SpreadElement); ok {
			if i != len(elements)-1 {
				p.fail(start, "rest parameter must be last in an arrow function parameter list")
			}
			arg, err := ast.ExprToPattern(spread.Argument)
			if err != nil {
				p.fail(start, "invalid rest parameter: %s", err)
			}
			if _, isMember := arg.(*ast.MemberExpression); isMember {
				p.fail(start, "invalid rest parameter: member expression")
			}
			rest := &ast.RestElement{NodeBase: spread.NodeBase, Argument: arg}
			params[i] = rest
			continue
		}
		if _, isMember := el.(*ast.MemberExpression); isMember {
			p.fail(start, "invalid arrow function parameter: member expression")
		}
		pat, err := ast.ExprToPattern(el)
		if err != nil {
			p.fail(start, "invalid arrow function parameter: %s", err)
		}
		params[i] = pat
	}
	return params
}

// parseAsyncPrimary disambiguates `async` as a plain identifier/call callee
// from the three async-function-head forms it may introduce (spec.md
// §4.3's async-arrow detection), using a snapshot/restore probe confined to
// a single lookahead token past `async` itself.
func (p *Parser) parseAsyncPrimary(ctx Context) ast.Expression {
	start := p.pos()
	snap := p.snapshot()
	p.advance() // 'async'
	afterNL := p.tok.AfterNewline

	switch {
	case !afterNL && p.at(token.FUNCTION):
		return p.parseFunctionExpression(ctx, true)

	case !afterNL && p.at(token.LPAREN):
		asyncEnd := p.prev.End
		elements, wrapped, _, _ := p.parseParenElements(ctx)
		if p.at(token.ARROW) && !p.tok.AfterNewline {
			params := p.toArrowParams(elements, wrapped, start)
			return p.finishArrowFunction(ctx, start, params, true)
		}
		id := &ast.Identifier{Name: "async"}
		p.setNodeRange(&id.NodeBase, start, asyncEnd)
		call := &ast.CallExpression{Callee: id, Arguments: elements}
		p.finishNode(&call.NodeBase, start)
		return p.parseCallTail(ctx, call, start, true)

	case !afterNL && p.tok.Kind.Is(token.FlagIdentifier) && p.tok.Kind != token.ASYNC:
		name := p.tok.Literal
		paramStart := p.tok.Start
		idSnap := p.snapshot()
		p.advance()
		if p.at(token.ARROW) && !p.tok.AfterNewline {
			param := &ast.Identifier{Name: name}
			p.finishNode(&param.NodeBase, paramStart)
			return p.finishArrowFunction(ctx, start, []ast.Pattern{param}, true)
		}
		p.restore(idSnap)
	}

	p.restore(snap)
	id := &ast.Identifier{Name: "async"}
	p.advance()
	p.finishNode(&id.NodeBase, start)
	return id
}

func (p *Parser) parseImportExpression(ctx Context, start token.Position) ast.Expression {
	p.advance() // 'import'
	if p.at(token.DOT) {
		if !p.opts.Next {
			p.fail(start, "import.meta requires the stage-3 feature pack")
		}
		p.advance()
		prop := p.expect(token.IDENT)
		if prop.Literal != "meta" {
			p.failTok(prop, "the only valid meta property here is import.meta")
		}
		meta := &ast.Identifier{Name: "import"}
		p.finishNode(&meta.NodeBase, start)
		propId := &ast.Identifier{Name: "meta"}
		p.finishNode(&propId.NodeBase, prop.Start)
		n := &ast.MetaProperty{Meta: meta, Property: propId}
		p.finishNode(&n.NodeBase, start)
		return n
	}
	if !p.opts.Next {
		p.fail(start, "dynamic import() requires the stage-3 feature pack")
	}
	imp := &ast.Import{}
	p.finishNode(&imp.NodeBase, start)
	if !p.at(token.LPAREN) {
		p.failTok(p.tok, "expected '(' after import")
	}
	args := p.parseArguments(ctx)
	if len(args) != 1 {
		p.fail(start, "import() requires exactly one argument")
	}
	call := &ast.CallExpression{Callee: imp, Arguments: args}
	p.finishNode(&call.NodeBase, start)
	return p.parseCallTail(ctx, call, start, true)
}

func (p *Parser) parseDoExpression(ctx Context) ast.Expression {
	start := p.pos()
	p.advance() // 'do'
	body := p.parseBlockStatement(ctx)
	n := &ast.DoExpression{Body: body}
	p.finishNode(&n.NodeBase, start)
	return n
}
