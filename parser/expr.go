package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// parserSnapshot captures everything needed to rewind a speculative parse:
// the lexer's cursor plus the parser's own one-token buffer. It backs the
// three named lookahead sites spec.md calls out (async-arrow vs.
// identifier, `let` lexical declaration vs. identifier, dynamic `import(`
// vs. declaration), the same way RescanTemplateContinuation rewinds the
// lexer alone.
type parserSnapshot struct {
	lex         lexer.State
	tok, prev   token.Token
	exprAllowed bool
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{lex: p.lex.Snapshot(), tok: p.tok, prev: p.prev, exprAllowed: p.exprAllowed}
}

func (p *Parser) restore(s parserSnapshot) {
	p.lex.Restore(s.lex)
	p.tok, p.prev, p.exprAllowed = s.tok, s.prev, s.exprAllowed
}

// parseExpression parses the comma (sequence) operator, the widest
// expression grammar production.
func (p *Parser) parseExpression(ctx Context) ast.Expression {
	start := p.pos()
	first := p.parseAssignment(ctx)
	if !p.at(token.COMMA) {
		return first
	}
	exprs := []ast.Expression{first}
	for p.eat(token.COMMA) {
		exprs = append(exprs, p.parseAssignment(ctx))
	}
	seq := &ast.SequenceExpression{Expressions: exprs}
	p.finishNode(&seq.NodeBase, start)
	return seq
}

// parseAssignment parses everything at or above assignment precedence:
// arrow functions, yield, conditional, and the assignment operators
// themselves, whose right side recurses back into parseAssignment (they
// are right-associative).
func (p *Parser) parseAssignment(ctx Context) ast.Expression {
	start := p.pos()

	if p.at(token.YIELD) && ctx.allowYield() {
		return p.parseYield(ctx)
	}

	if arrow, ok := p.tryParseIdentifierArrow(ctx); ok {
		return arrow
	}

	left := p.parseConditional(ctx)

	if !p.tok.Kind.IsAssignTarget() {
		return left
	}
	op := p.tok.Literal
	opKind := p.tok.Kind
	p.advance()
	right := p.parseAssignment(ctx)

	var leftNode ast.Node = left
	if opKind == token.ASSIGN {
		switch left.(type) {
		case *ast.Identifier, *ast.MemberExpression:
		default:
			pat, err := ast.ExprToPattern(left)
			if err != nil {
				p.fail(start, "invalid assignment target: %s", err)
			}
			leftNode = pat
		}
	} else {
		switch left.(type) {
		case *ast.Identifier, *ast.MemberExpression:
		default:
			p.fail(start, "invalid left-hand side in compound assignment")
		}
	}

	assign := &ast.AssignmentExpression{Operator: op, Left: leftNode, Right: right}
	p.finishNode(&assign.NodeBase, start)
	return assign
}

// tryParseIdentifierArrow handles the single-identifier arrow form,
// `x => body`, which parseConditional/parsePrimary would otherwise parse as
// a bare Identifier with no way to notice the following `=>` until it is
// too late to build a single-node arrow directly. Parenthesized parameter
// lists are handled separately inside parsePrimary, where the `(` is
// already the cover grammar's natural entry point.
func (p *Parser) tryParseIdentifierArrow(ctx Context) (ast.Expression, bool) {
	if !p.tok.Kind.Is(token.FlagIdentifier) || p.tok.Kind == token.ASYNC {
		return nil, false
	}
	start := p.tok.Start
	name := p.tok.Literal
	snap := p.snapshot()
	p.advance()
	if p.at(token.ARROW) && !p.tok.AfterNewline {
		param := &ast.Identifier{Name: name}
		p.finishNode(&param.NodeBase, start)
		return p.finishArrowFunction(ctx, start, []ast.Pattern{param}, false), true
	}
	p.restore(snap)
	return nil, false
}

func (p *Parser) parseYield(ctx Context) ast.Expression {
	start := p.pos()
	p.advance()
	delegate := p.eat(token.STAR)
	var arg ast.Expression
	if !p.tok.AfterNewline && !p.at(token.SEMICOLON) && !p.at(token.RPAREN) &&
		!p.at(token.RBRACE) && !p.at(token.RBRACKET) && !p.at(token.COMMA) && !p.at(token.COLON) && !p.at(token.EOF) {
		arg = p.parseAssignment(ctx)
	} else if delegate {
		p.fail(start, "yield* requires an argument")
	}
	y := &ast.YieldExpression{Argument: arg, Delegate: delegate}
	p.finishNode(&y.NodeBase, start)
	return y
}

func (p *Parser) parseConditional(ctx Context) ast.Expression {
	start := p.pos()
	test := p.parseBinary(ctx, token.LOWEST)
	if !p.eat(token.QUESTION) {
		return test
	}
	consequent := p.parseAssignment(ctx.with(ctxIn))
	p.expect(token.COLON)
	alternate := p.parseAssignment(ctx)
	cond := &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
	p.finishNode(&cond.NodeBase, start)
	return cond
}

// parseBinary implements precedence climbing over token.Kind.Precedence().
// `**` is right-associative (handled by recursing at the same precedence
// for its own right side); every other binary operator is left-associative
// (recursing at precedence+1).
func (p *Parser) parseBinary(ctx Context, minPrec int) ast.Expression {
	start := p.pos()
	left := p.parseUnary(ctx)

	for {
		kind := p.tok.Kind
		if kind == token.IN && !ctx.allowIn() {
			return left
		}
		if !kind.Is(token.FlagBinaryOp) {
			return left
		}
		prec := kind.Precedence()
		if prec < minPrec || prec == token.LOWEST {
			return left
		}
		op := p.tok.Literal
		p.advance()
		nextMin := prec + 1
		if kind == token.STARSTAR {
			nextMin = prec
		}
		right := p.parseBinary(ctx, nextMin)

		var node ast.Expression
		if kind == token.LOGICAL_AND || kind == token.LOGICAL_OR {
			n := &ast.LogicalExpression{Operator: op, Left: left, Right: right}
			p.finishNode(&n.NodeBase, start)
			node = n
		} else {
			n := &ast.BinaryExpression{Operator: op, Left: left, Right: right}
			p.finishNode(&n.NodeBase, start)
			node = n
		}
		left = node
	}
}

var unaryOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.BNOT: true, token.LOGICAL_NOT: true,
	token.TYPEOF: true, token.VOID: true, token.DELETE: true,
}

func (p *Parser) parseUnary(ctx Context) ast.Expression {
	start := p.pos()
	switch {
	case unaryOps[p.tok.Kind]:
		op := p.tok.Literal
		p.advance()
		arg := p.parseUnary(ctx)
		n := &ast.UnaryExpression{Operator: op, Prefix: true, Argument: arg}
		p.finishNode(&n.NodeBase, start)
		return n
	case p.tok.Kind == token.INC || p.tok.Kind == token.DEC:
		op := p.tok.Literal
		p.advance()
		arg := p.parseUnary(ctx)
		n := &ast.UpdateExpression{Operator: op, Argument: arg, Prefix: true}
		p.finishNode(&n.NodeBase, start)
		return n
	case p.tok.Kind == token.AWAIT && ctx.allowAwait():
		p.advance()
		arg := p.parseUnary(ctx)
		n := &ast.AwaitExpression{Argument: arg}
		p.finishNode(&n.NodeBase, start)
		return n
	case p.tok.Kind == token.THROW && p.opts.ThrowExpr:
		p.advance()
		arg := p.parseAssignment(ctx)
		n := &ast.ThrowExpression{Argument: arg}
		p.finishNode(&n.NodeBase, start)
		return n
	}
	return p.parsePostfix(ctx)
}

func (p *Parser) parsePostfix(ctx Context) ast.Expression {
	start := p.pos()
	expr := p.parseLeftHandSide(ctx, true)
	if (p.tok.Kind == token.INC || p.tok.Kind == token.DEC) && !p.tok.AfterNewline {
		op := p.tok.Literal
		p.advance()
		n := &ast.UpdateExpression{Operator: op, Argument: expr, Prefix: false}
		p.finishNode(&n.NodeBase, start)
		return n
	}
	return expr
}

// parseLeftHandSide parses NewExpression/CallExpression/MemberExpression
// chains: `new Foo().bar[baz](qux)\`tpl\`` style postfix sequences.
func (p *Parser) parseLeftHandSide(ctx Context, allowCall bool) ast.Expression {
	start := p.pos()
	var expr ast.Expression
	if p.at(token.NEW) {
		expr = p.parseNewExpression(ctx)
	} else {
		expr = p.parsePrimary(ctx)
	}
	return p.parseCallTail(ctx, expr, start, allowCall)
}

func (p *Parser) parseNewExpression(ctx Context) ast.Expression {
	start := p.pos()
	p.advance() // 'new'
	if p.at(token.DOT) {
		p.advance()
		prop := p.expect(token.IDENT)
		if prop.Literal != "target" {
			p.failTok(prop, "the only valid meta property here is new.target")
		}
		meta := &ast.Identifier{Name: "new"}
		p.finishNode(&meta.NodeBase, start)
		propId := &ast.Identifier{Name: "target"}
		p.finishNode(&propId.NodeBase, prop.Start)
		n := &ast.MetaProperty{Meta: meta, Property: propId}
		p.finishNode(&n.NodeBase, start)
		return n
	}
	var callee ast.Expression
	if p.at(token.NEW) {
		callee = p.parseNewExpression(ctx)
	} else {
		callee = p.parsePrimary(ctx)
	}
	callee = p.parseCallTail(ctx, callee, start, false)
	var args []ast.Node
	if p.at(token.LPAREN) {
		args = p.parseArguments(ctx)
	}
	n := &ast.NewExpression{Callee: callee, Arguments: args}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseCallTail(ctx Context, expr ast.Expression, start token.Position, allowCall bool) ast.Expression {
	for {
		switch {
		case p.at(token.DOT):
			p.advance()
			propTok := p.tok
			if !propTok.Kind.Is(token.FlagIdentifier) {
				p.failTok(propTok, "expected a property name after '.'")
			}
			p.advance()
			prop := &ast.Identifier{Name: propTok.Literal}
			p.finishNode(&prop.NodeBase, propTok.Start)
			n := &ast.MemberExpression{Object: expr, Property: prop, Computed: false}
			p.finishNode(&n.NodeBase, start)
			expr = n

		case p.at(token.LBRACKET):
			p.advance()
			prop := p.parseExpression(ctx.with(ctxIn))
			p.expect(token.RBRACKET)
			n := &ast.MemberExpression{Object: expr, Property: prop, Computed: true}
			p.finishNode(&n.NodeBase, start)
			expr = n

		case allowCall && p.at(token.LPAREN):
			args := p.parseArguments(ctx)
			n := &ast.CallExpression{Callee: expr, Arguments: args}
			p.finishNode(&n.NodeBase, start)
			expr = n

		case p.at(token.TEMPLATE_HEAD) || p.at(token.TEMPLATE_NOSUB):
			quasi := p.parseTemplateLiteral(ctx)
			n := &ast.TaggedTemplateExpression{Tag: expr, Quasi: quasi}
			p.finishNode(&n.NodeBase, start)
			expr = n

		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments(ctx Context) []ast.Node {
	p.expect(token.LPAREN)
	var args []ast.Node
	for !p.at(token.RPAREN) {
		if p.at(token.ELLIPSIS) {
			spreadStart := p.pos()
			p.advance()
			arg := p.parseAssignment(ctx.with(ctxIn))
			spread := &ast.SpreadElement{Argument: arg}
			p.finishNode(&spread.NodeBase, spreadStart)
			args = append(args, spread)
		} else {
			args = append(args, p.parseAssignment(ctx.with(ctxIn)))
		}
		if !p.eat(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return args
}
