package parser

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// Options configures a parse. The zero value parses plain ES2018 syntax
// with ranges, locations and raw literal text all disabled.
type Options struct {
	// Next enables the stage-3 syntax pack: object rest/spread, optional
	// catch binding, dynamic import(), import.meta, `for await`, the 's'
	// (dotAll) regex flag.
	Next bool
	// V8 enables the `do { ... }` expression form.
	V8 bool
	// ThrowExpr enables `throw expr` in expression position.
	ThrowExpr bool
	// JSX enables JSX element parsing.
	JSX bool
	// Ranges populates every node's Start/End fields.
	Ranges bool
	// Locations populates every node's Loc field.
	Locations bool
	// Raw populates Literal.Raw / TemplateElement.Raw with exact source
	// text.
	Raw bool
	// OnComment, when set, is invoked for every comment in source order.
	OnComment func(block bool, text string, start, end token.Position)
}

// Parser holds the mutable state of one parse: the lexer, the current and
// previously consumed token, and the scope/label bookkeeping
// needed for early errors. Grammar-position knowledge (is `in` allowed,
// are we inside a generator, ...) is threaded through call arguments as a
// Context value instead of living here, so it never leaks between
// unrelated call sites.
type Parser struct {
	opts Options
	src  string
	lex  *lexer.Lexer

	tok  token.Token
	prev token.Token

	exprAllowed bool

	scope       *scope
	loopDepth   int
	switchDepth int
	labels      map[string]bool

	inFunctionBody bool
	moduleMode     bool

	// comments collects every comment in source order regardless of
	// whether the caller supplied Options.OnComment, so Program.Comments
	// is always populated (spec.md §6's "append to a provided list"
	// collection mode); the caller's own callback, when set, still fires
	// alongside it.
	comments []*ast.Comment

	// allowSuperProperty/allowSuperCall gate `super.x`/`super[x]` and
	// `super(...)` respectively; both are sticky parser flags toggled around
	// method/constructor bodies rather than Context bits, matching spec.md
	// §3's "Flags ... AllowSuper, AllowConstructorWithSuper".
	allowSuperProperty bool
	allowSuperCall     bool
}

// New constructs a Parser over src with the given Options. Most callers
// should prefer NewBuilder, which also lets lexer-level options (JSX, Raw,
// OnComment) be configured through one fluent chain.
func New(src string, opts Options) *Parser {
	p := &Parser{opts: opts, src: src, exprAllowed: true, labels: map[string]bool{}}
	p.lex = lexer.New(src, p.lexerOptions())
	p.advance()
	return p
}

// lexerOptions builds the lexer.Options for a (re)scan of p.src, wrapping
// the caller's OnComment (if any) so every comment is also appended to
// p.comments.
func (p *Parser) lexerOptions() lexer.Options {
	userOnComment := p.opts.OnComment
	return lexer.Options{
		JSX: p.opts.JSX,
		Raw: p.opts.Raw,
		OnComment: func(block bool, text string, start, end token.Position) {
			c := &ast.Comment{Block: block, Text: text}
			p.setNodeRange(&c.NodeBase, start, end)
			p.comments = append(p.comments, c)
			if userOnComment != nil {
				userOnComment(block, text, start, end)
			}
		},
	}
}

func (p *Parser) lexCtx(module bool) lexer.Context {
	return lexer.Context{ExprAllowed: p.exprAllowed, Module: module}
}

// advance consumes p.tok and scans the next one. The lexer context's Module
// bit follows p.moduleMode, which is true for the whole duration of a module
// parse (it disables HTML-comment recognition) and false for scripts.
func (p *Parser) advance() {
	p.prev = p.tok
	p.tok = p.lex.Next(p.lexCtx(p.moduleMode))
	p.exprAllowed = exprAllowedAfter(p.tok)
}

func exprAllowedAfter(tok token.Token) bool {
	switch tok.Kind {
	case token.IDENT, token.NUMBER, token.BIGINT, token.STRING, token.REGEXP,
		token.TEMPLATE_NOSUB, token.TEMPLATE_TAIL,
		token.THIS, token.SUPER, token.NULL_LIT, token.TRUE_LIT, token.FALSE_LIT,
		token.RPAREN, token.RBRACKET:
		return false
	default:
		return true
	}
}

func (p *Parser) at(k token.Kind) bool { return p.tok.Kind == k }

func (p *Parser) pos() token.Position { return p.tok.Start }

func (p *Parser) expect(k token.Kind) token.Token {
	if p.tok.Kind != k {
		p.failTok(p.tok, "unexpected token %s, expected %s", p.tok.Kind, k)
	}
	tok := p.tok
	p.advance()
	return tok
}

// eat consumes the current token if it matches k, reporting whether it did.
func (p *Parser) eat(k token.Kind) bool {
	if p.tok.Kind != k {
		return false
	}
	p.advance()
	return true
}

// semicolon implements ES2018 Automatic Semicolon Insertion: an explicit
// ';' is always consumed; otherwise a statement terminator is inferred at
// EOF, before '}', or when the next token began on a new line.
func (p *Parser) semicolon() {
	if p.eat(token.SEMICOLON) {
		return
	}
	if p.at(token.RBRACE) || p.at(token.EOF) || p.tok.AfterNewline {
		return
	}
	p.failTok(p.tok, "unexpected token %s, expected ;", p.tok.Kind)
}

func (p *Parser) setNodeRange(n *ast.NodeBase, start token.Position, end token.Position) {
	if p.opts.Ranges {
		s, e := start.Offset, end.Offset
		n.Start, n.End = &s, &e
	}
	if p.opts.Locations {
		n.Loc = &ast.SourceLocation{
			Start: ast.Position{Line: start.Line, Column: start.Column},
			End:   ast.Position{Line: end.Line, Column: end.Column},
		}
	}
}

// finishNode stamps n's range/location using start and the position just
// before the current token (i.e. the end of whatever was last consumed).
func (p *Parser) finishNode(n *ast.NodeBase, start token.Position) {
	p.setNodeRange(n, start, p.prev.End)
}

// ParseScript parses src as a Script goal symbol (spec.md §2).
func ParseScript(src string, opts Options) (prog *ast.Program, err error) {
	defer recoverError(&err)
	p := New(src, opts)
	return p.parseProgram("script"), nil
}

// ParseModule parses src as a Module goal symbol: strict mode is implied
// throughout, import/export declarations are legal at the top level, and
// HTML-style comments are not recognized by the lexer.
func ParseModule(src string, opts Options) (prog *ast.Program, err error) {
	defer recoverError(&err)
	p := New(src, opts)
	p.moduleMode = true
	p.comments = nil
	p.lex = lexer.New(src, p.lexerOptions())
	p.advance() // re-scan the first token under module lexer context
	return p.parseProgram("module"), nil
}

// ParseScript parses the Parser's source as a Script goal symbol. It is the
// method-based counterpart to the package-level ParseScript function, used
// by Parsers constructed through Builder.
func (p *Parser) ParseScript() (prog *ast.Program, err error) {
	defer recoverError(&err)
	return p.parseProgram("script"), nil
}

// ParseModule parses the Parser's source as a Module goal symbol.
func (p *Parser) ParseModule() (prog *ast.Program, err error) {
	defer recoverError(&err)
	p.moduleMode = true
	p.comments = nil
	p.lex = lexer.New(p.src, p.lexerOptions())
	p.advance()
	return p.parseProgram("module"), nil
}

func (p *Parser) parseProgram(sourceType string) *ast.Program {
	start := p.pos()
	ctx := newContext()
	if sourceType == "module" {
		ctx = ctx.with(ctxStrict).with(ctxAwait)
	}
	p.scope = newFunctionScope(nil)

	body := p.parseStatementListWithDirectives(ctx)

	prog := &ast.Program{Body: body, SourceType: sourceType, Comments: p.comments}
	p.finishNode(&prog.NodeBase, start)
	return prog
}
