package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/token"
)

// parseClassBody parses a class's brace-delimited method list, enforcing
// the constructor-shape early errors: at most one plain "constructor", and
// "constructor" may never be a getter/setter or static (spec.md class
// invariants).
func (p *Parser) parseClassBody(ctx Context, hasSuperClass bool) *ast.ClassBody {
	start := p.pos()
	p.expect(token.LBRACE)
	var methods []*ast.MethodDefinition
	sawConstructor := false
	for !p.at(token.RBRACE) {
		if p.eat(token.SEMICOLON) {
			continue
		}
		m := p.parseClassMethod(ctx, hasSuperClass)
		if m.Kind == "constructor" {
			if sawConstructor {
				p.fail(p.pos(), "a class may have only one constructor")
			}
			sawConstructor = true
		}
		methods = append(methods, m)
	}
	p.expect(token.RBRACE)
	body := &ast.ClassBody{Body: methods}
	p.finishNode(&body.NodeBase, start)
	return body
}

func (p *Parser) parseClassMethod(ctx Context, hasSuperClass bool) *ast.MethodDefinition {
	start := p.pos()
	static := false
	if p.at(token.STATIC) {
		snap := p.snapshot()
		p.advance()
		if isKeyTerminator(p.tok.Kind) {
			p.restore(snap)
		} else {
			static = true
		}
	}

	async, generator, kind := false, false, "method"

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

	if !computed && !static {
		declaredKind := kind
		if id, ok := key.(*ast.Identifier); ok && id.Name == "constructor" {
			kind = "constructor"
		}
		if lit, ok := key.(*ast.Literal); ok {
			if s, ok := lit.Value.(string); ok && s == "constructor" {
				kind = "constructor"
			}
		}
		if kind == "constructor" && declaredKind != "method" {
			p.fail(start, "class constructor may not be a getter or setter")
		}
	}
	if static && !computed {
		if id, ok := key.(*ast.Identifier); ok && id.Name == "prototype" {
			p.fail(start, "class may not have a static property or method named 'prototype'")
		}
	}
	if kind == "constructor" && (generator || async) {
		p.fail(start, "class constructor may not be a generator or async method")
	}

	prevSuperCall, prevSuperProperty := p.allowSuperCall, p.allowSuperProperty
	p.allowSuperProperty = true
	p.allowSuperCall = kind == "constructor" && hasSuperClass
	fn := p.parseMethodBody(ctx.with(ctxStrict), async, generator)
	p.allowSuperCall, p.allowSuperProperty = prevSuperCall, prevSuperProperty

	m := &ast.MethodDefinition{Key: key, Value: fn, Kind: kind, Computed: computed, Static: static}
	p.finishNode(&m.NodeBase, start)
	return m
}

func (p *Parser) parseClassHeader(ctx Context) (*ast.Identifier, ast.Expression, bool) {
	var id *ast.Identifier
	if p.tok.Kind.Is(token.FlagIdentifier) {
		idStart := p.pos()
		name := p.tok.Literal
		p.advance()
		id = &ast.Identifier{Name: name}
		p.finishNode(&id.NodeBase, idStart)
	}
	var super ast.Expression
	hasSuper := false
	if p.eat(token.EXTENDS) {
		hasSuper = true
		super = p.parseLeftHandSide(ctx.with(ctxIn).with(ctxStrict), true)
	}
	return id, super, hasSuper
}

func (p *Parser) parseClassDeclaration(ctx Context) *ast.ClassDeclaration {
	start := p.pos()
	p.expect(token.CLASS)
	classCtx := ctx.with(ctxStrict)
	id, super, hasSuper := p.parseClassHeader(classCtx)
	if id == nil && !ctx.has(ctxDefault) {
		p.fail(start, "class declaration requires a name")
	}
	if id != nil && p.scope != nil {
		p.scope.addLexical(id.Name)
	}
	body := p.parseClassBody(classCtx, hasSuper)
	decl := &ast.ClassDeclaration{Id: id, SuperClass: super, Body: body}
	p.finishNode(&decl.NodeBase, start)
	return decl
}

func (p *Parser) parseClassExpression(ctx Context) ast.Expression {
	start := p.pos()
	p.expect(token.CLASS)
	classCtx := ctx.with(ctxStrict)
	id, super, hasSuper := p.parseClassHeader(classCtx)
	body := p.parseClassBody(classCtx, hasSuper)
	expr := &ast.ClassExpression{Id: id, SuperClass: super, Body: body}
	p.finishNode(&expr.NodeBase, start)
	return expr
}
