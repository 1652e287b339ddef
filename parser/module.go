package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/token"
)

// parseImportDeclaration parses the full `import` grammar (spec.md §4.3):
// a default specifier, a namespace specifier, a named-import list, or any
// combination of a default specifier followed by one of the other two,
// always terminated by a `from` clause naming the module source. Only
// reachable when p.moduleMode is set and isImportExpressionAhead ruled out
// the `import(...)`/`import.meta` expression forms.
func (p *Parser) parseImportDeclaration(ctx Context) *ast.ImportDeclaration {
	start := p.pos()
	p.expect(token.IMPORT)

	var specifiers []ast.Node
	switch {
	case p.at(token.STRING):
		// bare `import "module"` has no specifiers at all.
	case p.at(token.STAR):
		specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
	case p.at(token.LBRACE):
		specifiers = p.parseNamedImportSpecifiers()
	default:
		specifiers = append(specifiers, p.parseImportDefaultSpecifier())
		if p.eat(token.COMMA) {
			switch {
			case p.at(token.STAR):
				specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
			case p.at(token.LBRACE):
				specifiers = append(specifiers, p.parseNamedImportSpecifiers()...)
			default:
				p.failTok(p.tok, "expected '*' or '{' after ',' in import clause")
			}
		}
	}

	if len(specifiers) > 0 || !p.at(token.STRING) {
		p.expectContextual(token.FROM, "from")
	}
	source := p.parseStringLiteral()
	p.semicolon()

	decl := &ast.ImportDeclaration{Specifiers: specifiers, Source: source}
	p.finishNode(&decl.NodeBase, start)
	return decl
}

func (p *Parser) bindImportedName(name string, pos token.Position) {
	if p.scope == nil {
		return
	}
	if !p.scope.addLexical(name) {
		p.fail(pos, "identifier %q has already been declared", name)
	}
}

func (p *Parser) parseImportDefaultSpecifier() *ast.ImportDefaultSpecifier {
	start := p.pos()
	local := p.parseBindingIdentifierName()
	spec := &ast.ImportDefaultSpecifier{Local: local}
	p.finishNode(&spec.NodeBase, start)
	p.bindImportedName(local.Name, start)
	return spec
}

func (p *Parser) parseImportNamespaceSpecifier() *ast.ImportNamespaceSpecifier {
	start := p.pos()
	p.expect(token.STAR)
	p.expectContextual(token.AS, "as")
	local := p.parseBindingIdentifierName()
	spec := &ast.ImportNamespaceSpecifier{Local: local}
	p.finishNode(&spec.NodeBase, start)
	p.bindImportedName(local.Name, start)
	return spec
}

func (p *Parser) parseNamedImportSpecifiers() []ast.Node {
	p.expect(token.LBRACE)
	var out []ast.Node
	for !p.at(token.RBRACE) {
		start := p.pos()
		importedIsReserved := !p.tok.Kind.Is(token.FlagIdentifier) || p.tok.Kind.Is(token.FlagReserved)
		imported := p.parseIdentifierName()
		local := imported
		if p.eat(token.AS) {
			local = p.parseBindingIdentifierName()
		} else if importedIsReserved {
			// an imported reserved word with no `as` clause can never bind
			// (`import { default } from "m"` is always invalid).
			p.fail(start, "unexpected reserved word '%s' as local import name", imported.Name)
		}
		spec := &ast.ImportSpecifier{Imported: imported, Local: local}
		p.finishNode(&spec.NodeBase, start)
		p.bindImportedName(local.Name, start)
		out = append(out, spec)
		if !p.eat(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return out
}

// parseExportDeclaration parses every `export` form: `export default ...`,
// `export * from "..."`, `export { ... } [from "..."]`, and
// `export <declaration>` (var/let/const/function/class/async function).
func (p *Parser) parseExportDeclaration(ctx Context) ast.Statement {
	start := p.pos()
	p.expect(token.EXPORT)

	switch {
	case p.eat(token.DEFAULT):
		return p.finishExportDefault(ctx, start)
	case p.eat(token.STAR):
		return p.finishExportAll(start)
	case p.at(token.LBRACE):
		return p.finishExportNamed(start)
	default:
		return p.finishExportDeclaration(ctx, start)
	}
}

func (p *Parser) finishExportDefault(ctx Context, start token.Position) *ast.ExportDefaultDeclaration {
	defaultCtx := ctx.with(ctxDefault)
	var decl ast.Node
	switch {
	case p.at(token.FUNCTION):
		decl = p.parseFunctionDeclaration(defaultCtx, false)
	case p.at(token.ASYNC) && p.isAsyncFunctionDeclarationAhead():
		p.advance()
		decl = p.parseFunctionDeclaration(defaultCtx, true)
	case p.at(token.CLASS):
		decl = p.parseClassDeclaration(defaultCtx)
	default:
		decl = p.parseAssignment(ctx.with(ctxIn))
		p.semicolon()
	}
	exp := &ast.ExportDefaultDeclaration{Declaration: decl}
	p.finishNode(&exp.NodeBase, start)
	return exp
}

func (p *Parser) finishExportAll(start token.Position) *ast.ExportAllDeclaration {
	p.expectContextual(token.FROM, "from")
	source := p.parseStringLiteral()
	p.semicolon()
	exp := &ast.ExportAllDeclaration{Source: source}
	p.finishNode(&exp.NodeBase, start)
	return exp
}

// finishExportNamed parses `export { a, b as c }` and, when followed by a
// `from` clause, `export { a, b as c } from "mod"` -- the latter permits
// reserved words as the exported-from names since they never become local
// bindings (spec.md §4.3), so the local half is scanned with
// parseIdentifierName rather than a binding-restricted reader.
func (p *Parser) finishExportNamed(start token.Position) *ast.ExportNamedDeclaration {
	p.expect(token.LBRACE)
	var specs []*ast.ExportSpecifier
	var localReserved []bool
	var localPos []token.Position
	for !p.at(token.RBRACE) {
		sStart := p.pos()
		reserved := !p.tok.Kind.Is(token.FlagIdentifier) || p.tok.Kind.Is(token.FlagReserved)
		local := p.parseIdentifierName()
		exported := local
		if p.eat(token.AS) {
			exported = p.parseIdentifierName()
		}
		spec := &ast.ExportSpecifier{Local: local, Exported: exported}
		p.finishNode(&spec.NodeBase, sStart)
		specs = append(specs, spec)
		localReserved = append(localReserved, reserved)
		localPos = append(localPos, sStart)
		if !p.eat(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)

	var source *ast.Literal
	hasFrom := p.at(token.FROM) || (p.tok.Kind.Is(token.FlagIdentifier) && p.tok.Literal == "from")
	if hasFrom {
		p.expectContextual(token.FROM, "from")
		source = p.parseStringLiteral()
	} else {
		// without a `from` clause every local name must be a legal
		// reference, i.e. not a reserved word (spec.md §4.3).
		for i, reserved := range localReserved {
			if reserved {
				p.fail(localPos[i], "unexpected reserved word '%s' in export list", specs[i].Local.Name)
			}
		}
	}
	p.semicolon()
	exp := &ast.ExportNamedDeclaration{Specifiers: specs, Source: source}
	p.finishNode(&exp.NodeBase, start)
	return exp
}

func (p *Parser) finishExportDeclaration(ctx Context, start token.Position) *ast.ExportNamedDeclaration {
	var decl ast.Statement
	switch {
	case p.at(token.VAR):
		decl = p.parseVariableStatement(ctx, "var")
	case p.at(token.CONST):
		decl = p.parseVariableStatement(ctx, "const")
	case p.at(token.LET):
		decl = p.parseVariableStatement(ctx, "let")
	case p.at(token.FUNCTION):
		decl = p.parseFunctionDeclaration(ctx, false)
	case p.at(token.ASYNC) && p.isAsyncFunctionDeclarationAhead():
		p.advance()
		decl = p.parseFunctionDeclaration(ctx, true)
	case p.at(token.CLASS):
		decl = p.parseClassDeclaration(ctx)
	default:
		p.failTok(p.tok, "unexpected token %s after 'export'", p.tok.Kind)
	}
	exp := &ast.ExportNamedDeclaration{Declaration: decl}
	p.finishNode(&exp.NodeBase, start)
	return exp
}

// parseIdentifierName reads any IdentifierName -- including keywords and
// future-reserved words, which are legal on one or both sides of an import/
// export specifier -- without the reserved-word checks parseIdentifierReference
// applies to a binding or a value reference.
func (p *Parser) parseIdentifierName() *ast.Identifier {
	start := p.pos()
	if p.tok.Literal == "" {
		p.failTok(p.tok, "expected an identifier")
	}
	name := p.tok.Literal
	p.advance()
	id := &ast.Identifier{Name: name}
	p.finishNode(&id.NodeBase, start)
	return id
}

// parseBindingIdentifierName reads a name that will become a local binding
// (an import specifier's local half): reserved words are never legal here.
func (p *Parser) parseBindingIdentifierName() *ast.Identifier {
	start := p.pos()
	if !p.tok.Kind.Is(token.FlagIdentifier) || p.tok.Kind.Is(token.FlagReserved) {
		p.failTok(p.tok, "expected a binding identifier")
	}
	return p.parseIdentifierReference(newContext(), start).(*ast.Identifier)
}

func (p *Parser) parseStringLiteral() *ast.Literal {
	start := p.pos()
	if !p.at(token.STRING) {
		p.failTok(p.tok, "expected a string literal")
	}
	lit := &ast.Literal{Value: p.tok.Cooked, Raw: p.tok.Raw}
	p.advance()
	p.finishNode(&lit.NodeBase, start)
	return lit
}

// expectContextual consumes the current token if it is either the given
// keyword Kind or a plain identifier spelled literal (e.g. `from`/`as`
// lexed as IDENT rather than the contextual Kind in some scanner states).
func (p *Parser) expectContextual(kind token.Kind, literal string) {
	if p.at(kind) || (p.tok.Kind.Is(token.FlagIdentifier) && p.tok.Literal == literal) {
		p.advance()
		return
	}
	p.failTok(p.tok, "expected '%s'", literal)
}
