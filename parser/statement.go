package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/token"
)

// parseStatementListWithDirectives parses a Program's top-level statement
// list, including the directive prologue, reusing the same machinery a
// function body uses (spec.md §4.4).
func (p *Parser) parseStatementListWithDirectives(ctx Context) []ast.Statement {
	body, _ := p.parseBodyStatements(ctx, token.EOF)
	return body
}

// parseStatement dispatches on the current token to the concrete statement
// grammar production, following the teacher's one-function-per-production
// layout.
func (p *Parser) parseStatement(ctx Context) ast.Statement {
	switch {
	case p.at(token.LBRACE):
		return p.parseBlockStatement(ctx)
	case p.at(token.VAR):
		return p.parseVariableStatement(ctx, "var")
	case p.at(token.SEMICOLON):
		return p.parseEmptyStatement()
	case p.at(token.IF):
		return p.parseIfStatement(ctx)
	case p.at(token.DO):
		return p.parseDoWhileStatement(ctx)
	case p.at(token.WHILE):
		return p.parseWhileStatement(ctx)
	case p.at(token.FOR):
		return p.parseForStatement(ctx)
	case p.at(token.CONTINUE):
		return p.parseContinueStatement(ctx)
	case p.at(token.BREAK):
		return p.parseBreakStatement(ctx)
	case p.at(token.RETURN):
		return p.parseReturnStatement(ctx)
	case p.at(token.WITH):
		return p.parseWithStatement(ctx)
	case p.at(token.SWITCH):
		return p.parseSwitchStatement(ctx)
	case p.at(token.THROW):
		return p.parseThrowStatement(ctx)
	case p.at(token.TRY):
		return p.parseTryStatement(ctx)
	case p.at(token.DEBUGGER):
		return p.parseDebuggerStatement()
	case p.at(token.FUNCTION):
		decl := p.parseFunctionDeclaration(ctx, false)
		return decl
	case p.at(token.CLASS):
		return p.parseClassDeclaration(ctx)
	case p.at(token.IMPORT):
		if p.moduleMode && !p.isImportExpressionAhead() {
			return p.parseImportDeclaration(ctx)
		}
		return p.parseExpressionOrLabeledStatement(ctx)
	case p.at(token.EXPORT):
		if !p.moduleMode {
			p.failTok(p.tok, "'export' is only valid in a module")
		}
		return p.parseExportDeclaration(ctx)
	case p.at(token.LET) && p.isLexicalDeclarationAhead():
		return p.parseVariableStatement(ctx, "let")
	case p.at(token.CONST):
		return p.parseVariableStatement(ctx, "const")
	case p.at(token.ASYNC) && p.isAsyncFunctionDeclarationAhead():
		p.advance()
		return p.parseFunctionDeclaration(ctx, true)
	default:
		return p.parseExpressionOrLabeledStatement(ctx)
	}
}

// isLexicalDeclarationAhead disambiguates `let` as a declaration keyword
// from `let` used as a plain identifier (legal outside strict mode):
// it is a declaration only when followed by a binding-pattern start or an
// identifier.
func (p *Parser) isLexicalDeclarationAhead() bool {
	snap := p.snapshot()
	p.advance()
	isDecl := p.tok.Kind.Is(token.FlagIdentifier) || p.at(token.LBRACE) || p.at(token.LBRACKET)
	p.restore(snap)
	return isDecl
}

func (p *Parser) isAsyncFunctionDeclarationAhead() bool {
	snap := p.snapshot()
	p.advance()
	ok := !p.tok.AfterNewline && p.at(token.FUNCTION)
	p.restore(snap)
	return ok
}

func (p *Parser) isImportExpressionAhead() bool {
	snap := p.snapshot()
	p.advance()
	ok := p.at(token.LPAREN) || p.at(token.DOT)
	p.restore(snap)
	return ok
}

func (p *Parser) parseEmptyStatement() *ast.EmptyStatement {
	start := p.pos()
	p.advance()
	n := &ast.EmptyStatement{}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	start := p.pos()
	p.advance()
	p.semicolon()
	n := &ast.DebuggerStatement{}
	p.finishNode(&n.NodeBase, start)
	return n
}

// parseExpressionOrLabeledStatement resolves the single remaining
// ambiguity in statement position: a bare identifier followed by ':' is a
// label, not the start of an expression statement.
func (p *Parser) parseExpressionOrLabeledStatement(ctx Context) ast.Statement {
	start := p.pos()
	if p.tok.Kind.Is(token.FlagIdentifier) {
		snap := p.snapshot()
		nameEnd := p.tok.End
		name := p.tok.Literal
		p.advance()
		if p.at(token.COLON) {
			id := &ast.Identifier{Name: name}
			p.setNodeRange(&id.NodeBase, start, nameEnd)
			p.advance()
			if p.labels[name] {
				p.fail(start, "label %q has already been declared", name)
			}
			p.labels[name] = true
			body := p.parseStatement(ctx)
			delete(p.labels, name)
			n := &ast.LabeledStatement{Label: id, Body: body}
			p.finishNode(&n.NodeBase, start)
			return n
		}
		p.restore(snap)
	}
	expr := p.parseExpression(ctx.with(ctxIn))
	p.semicolon()
	n := &ast.ExpressionStatement{Expression: expr}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseIfStatement(ctx Context) *ast.IfStatement {
	start := p.pos()
	p.advance()
	p.expect(token.LPAREN)
	test := p.parseExpression(ctx.with(ctxIn))
	p.expect(token.RPAREN)
	consequent := p.parseStatement(ctx)
	var alternate ast.Statement
	if p.eat(token.ELSE) {
		alternate = p.parseStatement(ctx)
	}
	n := &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseWhileStatement(ctx Context) *ast.WhileStatement {
	start := p.pos()
	p.advance()
	p.expect(token.LPAREN)
	test := p.parseExpression(ctx.with(ctxIn))
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseStatement(ctx)
	p.loopDepth--
	n := &ast.WhileStatement{Test: test, Body: body}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseDoWhileStatement(ctx Context) *ast.DoWhileStatement {
	start := p.pos()
	p.advance()
	p.loopDepth++
	body := p.parseStatement(ctx)
	p.loopDepth--
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	test := p.parseExpression(ctx.with(ctxIn))
	p.expect(token.RPAREN)
	p.eat(token.SEMICOLON)
	n := &ast.DoWhileStatement{Body: body, Test: test}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseWithStatement(ctx Context) *ast.WithStatement {
	start := p.pos()
	if ctx.inStrict() {
		p.fail(start, "'with' statements are not allowed in strict mode")
	}
	p.advance()
	p.expect(token.LPAREN)
	obj := p.parseExpression(ctx.with(ctxIn))
	p.expect(token.RPAREN)
	body := p.parseStatement(ctx)
	n := &ast.WithStatement{Object: obj, Body: body}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseReturnStatement(ctx Context) *ast.ReturnStatement {
	start := p.pos()
	if !ctx.allowReturn() {
		p.fail(start, "'return' is only valid inside a function body")
	}
	p.advance()
	var arg ast.Expression
	if !p.at(token.SEMICOLON) && !p.at(token.RBRACE) && !p.at(token.EOF) && !p.tok.AfterNewline {
		arg = p.parseExpression(ctx.with(ctxIn))
	}
	p.semicolon()
	n := &ast.ReturnStatement{Argument: arg}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseBreakStatement(ctx Context) *ast.BreakStatement {
	start := p.pos()
	p.advance()
	var label *ast.Identifier
	if p.tok.Kind.Is(token.FlagIdentifier) && !p.tok.AfterNewline {
		labStart := p.pos()
		name := p.tok.Literal
		if !p.labels[name] {
			p.fail(labStart, "undefined label %q", name)
		}
		p.advance()
		label = &ast.Identifier{Name: name}
		p.finishNode(&label.NodeBase, labStart)
	} else if p.loopDepth == 0 && p.switchDepth == 0 {
		p.fail(start, "'break' is only valid inside a loop or switch")
	}
	p.semicolon()
	n := &ast.BreakStatement{Label: label}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseContinueStatement(ctx Context) *ast.ContinueStatement {
	start := p.pos()
	p.advance()
	var label *ast.Identifier
	if p.tok.Kind.Is(token.FlagIdentifier) && !p.tok.AfterNewline {
		labStart := p.pos()
		name := p.tok.Literal
		if !p.labels[name] {
			p.fail(labStart, "undefined label %q", name)
		}
		p.advance()
		label = &ast.Identifier{Name: name}
		p.finishNode(&label.NodeBase, labStart)
	}
	if p.loopDepth == 0 {
		p.fail(start, "'continue' is only valid inside a loop")
	}
	p.semicolon()
	n := &ast.ContinueStatement{Label: label}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseThrowStatement(ctx Context) *ast.ThrowStatement {
	start := p.pos()
	p.advance()
	if p.tok.AfterNewline {
		p.fail(start, "no line break is allowed between 'throw' and its argument")
	}
	arg := p.parseExpression(ctx.with(ctxIn))
	p.semicolon()
	n := &ast.ThrowStatement{Argument: arg}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseTryStatement(ctx Context) *ast.TryStatement {
	start := p.pos()
	p.advance()
	block := p.parseBlockStatement(ctx)

	var handler *ast.CatchClause
	if p.at(token.CATCH) {
		cStart := p.pos()
		p.advance()
		var param ast.Pattern
		if p.eat(token.LPAREN) {
			param = p.parseBindingTarget(ctx)
			p.expect(token.RPAREN)
		} else if !p.opts.Next {
			p.fail(cStart, "optional catch binding requires the stage-3 feature pack")
		}
		prevScope := p.scope
		p.scope = newBlockScope(prevScope)
		if id, ok := param.(*ast.Identifier); ok {
			p.scope.addLexical(id.Name)
		}
		body := p.parseBlockStatement(ctx)
		p.scope = prevScope
		handler = &ast.CatchClause{Param: param, Body: body}
		p.finishNode(&handler.NodeBase, cStart)
	}

	var finalizer *ast.BlockStatement
	if p.eat(token.FINALLY) {
		finalizer = p.parseBlockStatement(ctx)
	}
	if handler == nil && finalizer == nil {
		p.fail(start, "missing catch or finally after try block")
	}
	n := &ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) parseSwitchStatement(ctx Context) *ast.SwitchStatement {
	start := p.pos()
	p.advance()
	p.expect(token.LPAREN)
	disc := p.parseExpression(ctx.with(ctxIn))
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	p.switchDepth++
	prevScope := p.scope
	p.scope = newBlockScope(prevScope)
	var cases []*ast.SwitchCase
	sawDefault := false
	for !p.at(token.RBRACE) {
		cStart := p.pos()
		var test ast.Expression
		if p.eat(token.CASE) {
			test = p.parseExpression(ctx.with(ctxIn))
		} else {
			p.expect(token.DEFAULT)
			if sawDefault {
				p.fail(cStart, "a switch statement may have only one default clause")
			}
			sawDefault = true
		}
		p.expect(token.COLON)
		var body []ast.Statement
		for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) {
			body = append(body, p.parseStatement(ctx))
		}
		sc := &ast.SwitchCase{Test: test, Consequent: body}
		p.finishNode(&sc.NodeBase, cStart)
		cases = append(cases, sc)
	}
	p.scope = prevScope
	p.switchDepth--
	p.expect(token.RBRACE)
	n := &ast.SwitchStatement{Discriminant: disc, Cases: cases}
	p.finishNode(&n.NodeBase, start)
	return n
}

// parseVariableStatement parses a var/let/const statement, binding each
// declared name into the current scope per kind (spec.md's hoisting rules).
func (p *Parser) parseVariableStatement(ctx Context, kind string) *ast.VariableDeclaration {
	start := p.pos()
	decl := p.parseVariableDeclarationList(ctx, kind)
	p.semicolon()
	p.finishNode(&decl.NodeBase, start)
	return decl
}

func (p *Parser) parseVariableDeclarationList(ctx Context, kind string) *ast.VariableDeclaration {
	start := p.pos()
	p.advance() // var/let/const
	var decls []*ast.VariableDeclarator
	for {
		dStart := p.pos()
		target := p.parseBindingTarget(ctx)
		p.bindDeclaredName(target, kind)
		var init ast.Expression
		if p.eat(token.ASSIGN) {
			init = p.parseAssignment(ctx.with(ctxIn))
		} else if kind == "const" {
			p.fail(dStart, "missing initializer in const declaration")
		} else if _, simple := target.(*ast.Identifier); !simple {
			p.fail(dStart, "missing initializer in destructuring declaration")
		}
		d := &ast.VariableDeclarator{Id: target, Init: init}
		p.finishNode(&d.NodeBase, dStart)
		decls = append(decls, d)
		if !p.eat(token.COMMA) {
			break
		}
	}
	n := &ast.VariableDeclaration{Kind: kind, Declarations: decls}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) bindDeclaredName(target ast.Pattern, kind string) {
	if p.scope == nil {
		return
	}
	var names []string
	collectPatternNames(target, &names)
	for _, name := range names {
		if reservedLexicalNames[name] && kind != "var" {
			p.fail(p.prev.End, "'%s' is disallowed as a lexical declaration name", name)
		}
		var ok bool
		if kind == "var" {
			ok = p.scope.addVar(name)
		} else {
			ok = p.scope.addLexical(name)
		}
		if !ok {
			p.fail(p.prev.End, "identifier %q has already been declared", name)
		}
	}
}

// parseForStatement parses every for-loop production sharing the `for (`
// prefix (spec.md's C-style/for-in/for-of/for-await-of family), using a
// snapshot to try a declaration/expression as the loop head before deciding
// which continuation ('in', 'of', or ';') it resolves to.
func (p *Parser) parseForStatement(ctx Context) ast.Statement {
	start := p.pos()
	p.advance()
	isAwait := false
	if p.at(token.AWAIT) {
		if !p.opts.Next {
			p.failTok(p.tok, "'for await' requires the stage-3 feature pack")
		}
		if !ctx.allowAwait() {
			p.failTok(p.tok, "'for await' is only valid inside an async function body")
		}
		isAwait = true
		p.advance()
	}
	p.expect(token.LPAREN)

	prevScope := p.scope
	p.scope = newBlockScope(prevScope)
	defer func() { p.scope = prevScope }()

	noInCtx := ctx.without(ctxIn)

	if p.at(token.SEMICOLON) {
		return p.finishCStyleFor(ctx, start, nil)
	}

	if p.at(token.VAR) || p.at(token.CONST) || (p.at(token.LET) && p.isLexicalDeclarationAhead()) {
		kind := p.tok.Literal
		decl := p.parseVariableDeclarationListNoIn(noInCtx, kind)
		if p.at(token.IN) || p.at(token.OF) {
			return p.finishForInOf(ctx, start, decl, isAwait)
		}
		return p.finishCStyleFor(ctx, start, decl)
	}

	lhs := p.parseExpression(noInCtx)
	if p.at(token.IN) || p.at(token.OF) {
		target, err := ast.ExprToPattern(lhs)
		if err != nil {
			p.fail(start, "invalid left-hand side in for-in/for-of: %s", err)
		}
		return p.finishForInOf(ctx, start, target, isAwait)
	}
	return p.finishCStyleFor(ctx, start, lhs)
}

func (p *Parser) parseVariableDeclarationListNoIn(ctx Context, kind string) *ast.VariableDeclaration {
	start := p.pos()
	p.advance()
	dStart := p.pos()
	target := p.parseBindingTarget(ctx)
	p.bindDeclaredName(target, kind)
	var init ast.Expression
	if p.eat(token.ASSIGN) {
		init = p.parseAssignment(ctx.with(ctxIn))
	}
	d := &ast.VariableDeclarator{Id: target, Init: init}
	p.finishNode(&d.NodeBase, dStart)
	decls := []*ast.VariableDeclarator{d}
	for p.eat(token.COMMA) {
		dStart = p.pos()
		target = p.parseBindingTarget(ctx)
		p.bindDeclaredName(target, kind)
		init = nil
		if p.eat(token.ASSIGN) {
			init = p.parseAssignment(ctx.with(ctxIn))
		}
		d = &ast.VariableDeclarator{Id: target, Init: init}
		p.finishNode(&d.NodeBase, dStart)
		decls = append(decls, d)
	}
	n := &ast.VariableDeclaration{Kind: kind, Declarations: decls}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) finishForInOf(ctx Context, start token.Position, left ast.ForTarget, isAwait bool) ast.Statement {
	isOf := p.at(token.OF)
	p.advance()
	var right ast.Expression
	if isOf {
		right = p.parseAssignment(ctx.with(ctxIn))
	} else {
		right = p.parseExpression(ctx.with(ctxIn))
	}
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseStatement(ctx)
	p.loopDepth--
	if isOf {
		n := &ast.ForOfStatement{Left: left, Right: right, Body: body, Await: isAwait}
		p.finishNode(&n.NodeBase, start)
		return n
	}
	if isAwait {
		p.fail(start, "'for await' requires an 'of' loop")
	}
	n := &ast.ForInStatement{Left: left, Right: right, Body: body}
	p.finishNode(&n.NodeBase, start)
	return n
}

func (p *Parser) finishCStyleFor(ctx Context, start token.Position, init ast.ForInit) ast.Statement {
	p.expect(token.SEMICOLON)
	var test ast.Expression
	if !p.at(token.SEMICOLON) {
		test = p.parseExpression(ctx.with(ctxIn))
	}
	p.expect(token.SEMICOLON)
	var update ast.Expression
	if !p.at(token.RPAREN) {
		update = p.parseExpression(ctx.with(ctxIn))
	}
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseStatement(ctx)
	p.loopDepth--
	n := &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
	p.finishNode(&n.NodeBase, start)
	return n
}
