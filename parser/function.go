package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/token"
)

// parseParams parses a parenthesized parameter list, returning the patterns
// and whether the list is "non-simple" (spec.md §4.4: contains a default,
// rest, or destructuring parameter), which governs the duplicate-name rule.
// A "use strict" directive in the body that follows is not checked against
// it: a non-simple list followed by such a directive is accepted.
func (p *Parser) parseParams(ctx Context) ([]ast.Pattern, bool) {
	p.expect(token.LPAREN)
	var params []ast.Pattern
	nonSimple := false
	for !p.at(token.RPAREN) {
		if p.at(token.ELLIPSIS) {
			nonSimple = true
			rStart := p.pos()
			p.advance()
			arg := p.parseBindingTarget(ctx)
			rest := &ast.RestElement{Argument: arg}
			p.finishNode(&rest.NodeBase, rStart)
			params = append(params, rest)
			break // rest parameter must be last
		}
		pStart := p.pos()
		target := p.parseBindingTarget(ctx)
		if _, simple := target.(*ast.Identifier); !simple {
			nonSimple = true
		}
		if p.eat(token.ASSIGN) {
			nonSimple = true
			right := p.parseAssignment(ctx.with(ctxIn))
			ap := &ast.AssignmentPattern{Left: target, Right: right}
			p.finishNode(&ap.NodeBase, pStart)
			target = ap
		}
		params = append(params, target)
		if !p.eat(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return params, nonSimple
}

// parseBindingTarget parses one binding target: an identifier, or an
// array/object destructuring pattern reparsed via the same literal grammar
// used for expressions and reinterpreted with ast.ExprToPattern (spec.md
// §5.4's cover grammar applies here too, just without an assignment
// operator ever being the alternative reading).
func (p *Parser) parseBindingTarget(ctx Context) ast.Pattern {
	switch {
	case p.at(token.LBRACKET):
		arr := p.parseArrayLiteral(ctx)
		pat, err := ast.ExprToPattern(arr)
		if err != nil {
			p.fail(p.pos(), "invalid binding pattern: %s", err)
		}
		return pat
	case p.at(token.LBRACE):
		obj := p.parseObjectLiteral(ctx)
		pat, err := ast.ExprToPattern(obj)
		if err != nil {
			p.fail(p.pos(), "invalid binding pattern: %s", err)
		}
		return pat
	}
	if !p.tok.Kind.Is(token.FlagIdentifier) {
		p.failTok(p.tok, "expected a binding identifier")
	}
	if p.tok.Kind.Is(token.FlagFutureReserved) && ctx.inStrict() {
		p.fail(p.pos(), "'%s' is a reserved identifier in strict mode", p.tok.Literal)
	}
	start := p.pos()
	name := p.tok.Literal
	p.advance()
	id := &ast.Identifier{Name: name}
	p.finishNode(&id.NodeBase, start)
	return id
}

// collectPatternNames appends every bound identifier name within pat, in
// declaration order, used to validate parameter lists for duplicates and
// strict-mode-only restricted names.
func collectPatternNames(pat ast.Pattern, out *[]string) {
	switch n := pat.(type) {
	case *ast.Identifier:
		*out = append(*out, n.Name)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				collectPatternNames(el, out)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range n.Properties {
			switch p := prop.(type) {
			case *ast.AssignmentProperty:
				collectPatternNames(p.Value, out)
			case *ast.RestElement:
				collectPatternNames(p.Argument, out)
			}
		}
	case *ast.RestElement:
		collectPatternNames(n.Argument, out)
	case *ast.AssignmentPattern:
		collectPatternNames(n.Left, out)
	}
}

// validateParams enforces spec.md §4.4's parameter early errors: duplicate
// names are only fatal once the list is non-simple or the body turns out
// strict, and eval/arguments/future-reserved names are only fatal in
// strict mode.
func (p *Parser) validateParams(params []ast.Pattern, nonSimple, strict bool, pos token.Position) {
	var names []string
	for _, param := range params {
		collectPatternNames(param, &names)
	}
	if nonSimple || strict {
		seen := map[string]bool{}
		for _, n := range names {
			if seen[n] {
				p.fail(pos, "duplicate parameter name %q", n)
			}
			seen[n] = true
		}
	}
	if strict {
		for _, n := range names {
			if n == "eval" || n == "arguments" {
				p.fail(pos, "'%s' is not a valid strict mode parameter name", n)
			}
			if kind, ok := token.Keywords[n]; ok && kind.Is(token.FlagFutureReserved) {
				p.fail(pos, "'%s' is a reserved identifier in strict mode", n)
			}
		}
	}
}

// parseBodyStatements parses statements up to terminator, detecting the
// directive prologue as it goes: consecutive leading ExpressionStatements
// whose expression is a bare string literal. A "use strict" directive
// promotes ctx to strict for the remainder of the body (spec.md §4.4).
func (p *Parser) parseBodyStatements(ctx Context, terminator token.Kind) ([]ast.Statement, Context) {
	var body []ast.Statement
	cur := ctx
	inPrologue := true
	for !p.at(terminator) && !p.at(token.EOF) {
		stmt := p.parseStatement(cur)
		body = append(body, stmt)
		if inPrologue {
			es, ok := stmt.(*ast.ExpressionStatement)
			var lit *ast.Literal
			if ok {
				lit, ok = es.Expression.(*ast.Literal)
			}
			var s string
			if ok {
				s, ok = lit.Value.(string)
			}
			if ok {
				if s == "use strict" && !cur.inStrict() {
					cur = cur.with(ctxStrict)
				}
				continue
			}
			inPrologue = false
		}
	}
	return body, cur
}

func (p *Parser) parseFunctionBody(ctx Context) (*ast.BlockStatement, bool) {
	start := p.pos()
	p.expect(token.LBRACE)
	body, finalCtx := p.parseBodyStatements(ctx, token.RBRACE)
	p.expect(token.RBRACE)
	blk := &ast.BlockStatement{Body: body}
	p.finishNode(&blk.NodeBase, start)
	return blk, finalCtx.inStrict()
}

func (p *Parser) parseBlockStatement(ctx Context) *ast.BlockStatement {
	start := p.pos()
	p.expect(token.LBRACE)
	prevScope := p.scope
	p.scope = newBlockScope(prevScope)
	body, _ := p.parseBodyStatements(ctx, token.RBRACE)
	p.scope = prevScope
	p.expect(token.RBRACE)
	blk := &ast.BlockStatement{Body: body}
	p.finishNode(&blk.NodeBase, start)
	return blk
}

// pushFunctionContext computes the Context a function body parses under:
// `return` becomes legal, and `yield`/`await` are keywords only for a
// generator/async function respectively. It does not touch the parser's
// super flags; class methods set those themselves.
func (p *Parser) pushFunctionContext(ctx Context, generator, async bool) Context {
	bodyCtx := ctx.with(ctxReturn).without(ctxYield).without(ctxAwait).without(ctxDefault)
	if generator {
		bodyCtx = bodyCtx.with(ctxYield)
	}
	if async {
		bodyCtx = bodyCtx.with(ctxAwait)
	}
	return bodyCtx
}

func (p *Parser) parseFunctionDeclaration(ctx Context, async bool) *ast.FunctionDeclaration {
	start := p.pos()
	p.expect(token.FUNCTION)
	generator := p.eat(token.STAR)

	var id *ast.Identifier
	if p.tok.Kind.Is(token.FlagIdentifier) {
		idStart := p.pos()
		name := p.tok.Literal
		p.advance()
		id = &ast.Identifier{Name: name}
		p.finishNode(&id.NodeBase, idStart)
	} else if !ctx.has(ctxDefault) {
		p.failTok(p.tok, "function declaration requires a name")
	}
	if id != nil && p.scope != nil {
		p.scope.addVar(id.Name)
	}

	prevScope := p.scope
	p.scope = newFunctionScope(prevScope)
	params, nonSimple := p.parseParams(ctx)
	bodyCtx := p.pushFunctionContext(ctx, generator, async)
	body, strict := p.parseFunctionBody(bodyCtx)
	p.scope = prevScope
	p.validateParams(params, nonSimple, strict, start)

	fn := &ast.FunctionDeclaration{Id: id, Params: params, Body: body, Generator: generator, Async: async}
	p.finishNode(&fn.NodeBase, start)
	return fn
}

func (p *Parser) parseFunctionExpression(ctx Context, async bool) *ast.FunctionExpression {
	start := p.pos()
	p.expect(token.FUNCTION)
	generator := p.eat(token.STAR)

	prevScope := p.scope
	p.scope = newFunctionScope(prevScope)

	var id *ast.Identifier
	if p.tok.Kind.Is(token.FlagIdentifier) {
		idStart := p.pos()
		name := p.tok.Literal
		p.advance()
		id = &ast.Identifier{Name: name}
		p.finishNode(&id.NodeBase, idStart)
		p.scope.addLexical(name)
	}

	params, nonSimple := p.parseParams(ctx)
	bodyCtx := p.pushFunctionContext(ctx, generator, async)
	body, strict := p.parseFunctionBody(bodyCtx)
	p.scope = prevScope
	p.validateParams(params, nonSimple, strict, start)

	fn := &ast.FunctionExpression{Id: id, Params: params, Body: body, Generator: generator, Async: async}
	p.finishNode(&fn.NodeBase, start)
	return fn
}

// parseMethodBody parses an object-literal or class method's parameter
// list and body; the key has already been consumed by the caller.
func (p *Parser) parseMethodBody(ctx Context, async, generator bool) *ast.FunctionExpression {
	start := p.pos()
	prevScope := p.scope
	p.scope = newFunctionScope(prevScope)
	params, nonSimple := p.parseParams(ctx)
	bodyCtx := p.pushFunctionContext(ctx, generator, async)
	body, strict := p.parseFunctionBody(bodyCtx)
	p.scope = prevScope
	p.validateParams(params, nonSimple, strict, start)
	fn := &ast.FunctionExpression{Params: params, Body: body, Generator: generator, Async: async}
	p.finishNode(&fn.NodeBase, start)
	return fn
}

// finishArrowFunction completes an arrow function once its parameter list
// (already reinterpreted from the cover grammar) and the `=>` token's
// position are known (spec.md §4.3). Arrow bodies are never generators and
// inherit `await` legality from their enclosing context rather than
// establishing their own.
func (p *Parser) finishArrowFunction(ctx Context, start token.Position, params []ast.Pattern, async bool) ast.Expression {
	p.expect(token.ARROW)

	var names []string
	for _, param := range params {
		collectPatternNames(param, &names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			p.fail(start, "duplicate parameter name %q", n)
		}
		seen[n] = true
	}

	bodyCtx := ctx.with(ctxReturn).without(ctxYield)
	if async {
		bodyCtx = bodyCtx.with(ctxAwait)
	}

	prevScope := p.scope
	p.scope = newFunctionScope(prevScope)
	defer func() { p.scope = prevScope }()

	var body ast.Node
	exprBody := false
	if p.at(token.LBRACE) {
		blk, _ := p.parseFunctionBody(bodyCtx)
		body = blk
	} else {
		body = p.parseAssignment(bodyCtx)
		exprBody = true
	}

	arrow := &ast.ArrowFunctionExpression{Params: params, Body: body, Async: async, ExpressionBody: exprBody}
	p.finishNode(&arrow.NodeBase, start)
	return arrow
}
