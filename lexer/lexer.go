package lexer

import (
	"fmt"
	"unicode/utf16"

	"github.com/xjslang/es2018/token"
)

// Context carries the small amount of parser-side knowledge the lexer needs
// to resolve its per-token ambiguities (spec.md §4.2's "operator
// disambiguation" table): whether a leading '/' starts a regular expression
// or a division operator, whether '<'/'>' should consider JSX productions,
// and whether HTML-style comments are recognized (they are not inside a
// module).
type Context struct {
	// ExprAllowed is true when the parser is in a position that expects an
	// expression to start (so '/' begins a regex, not a division operator).
	ExprAllowed bool
	// JSXChild is true while scanning the text between a JSX opening tag's
	// '>' and the next '<' or '{'.
	JSXChild bool
	// Module disables HTML-comment recognition per spec.md §4.2.
	Module bool
}

// Options configures a Lexer for the whole parse.
type Options struct {
	JSX bool
	Raw bool
	// OnComment, when set, is invoked for every comment encountered, in
	// source order, before the token that follows it is returned.
	OnComment func(block bool, text string, start, end token.Position)
}

// Lexer tokenizes ECMAScript source text on demand; it holds no lookahead
// buffer beyond the current character pair the reader exposes.
type Lexer struct {
	r    *reader
	opts Options

	// sawNewline is set while skipping whitespace/comments whenever a line
	// terminator was crossed, and consumed (reset) by the next token.
	sawNewline bool
}

// New constructs a Lexer over src. A leading shebang ("#!...") is skipped
// once, silently, matching spec.md §4.2 (never collected as a comment, only
// legal at file offset 0).
func New(src string, opts Options) *Lexer {
	l := &Lexer{r: newReader(src), opts: opts}
	if l.r.current() == '#' && l.r.peek(1) == '!' {
		for !l.r.eof() && !isLineTerminator(l.r.current()) {
			l.r.advance()
		}
	}
	return l
}

func (l *Lexer) pos() token.Position {
	line, col, off := l.r.position()
	return token.Position{Line: line, Column: col, Offset: off}
}

// Pos exposes the lexer's current raw cursor position. Package parser uses
// it only while driving the JSX sub-grammar (spec.md §4.3), where tag and
// attribute names are scanned with ScanJSXIdentifier/NextJSXText directly
// against the cursor instead of through Next.
func (l *Lexer) Pos() token.Position { return l.pos() }

func (l *Lexer) ch() int      { return l.r.current() }
func (l *Lexer) peek(n int) int { return l.r.peek(n) }

// advance consumes the current code unit, folding line terminators.
func (l *Lexer) advance() {
	if isLineTerminator(l.ch()) {
		l.r.advanceNewline()
	} else {
		l.r.advance()
	}
}

func (l *Lexer) sliceFrom(startOffset int) string {
	end := l.r.pos
	if startOffset < 0 || end > len(l.r.units) || startOffset > end {
		return ""
	}
	return string(utf16.Decode(l.r.units[startOffset:end]))
}

// Next scans and returns the next token under ctx.
func (l *Lexer) Next(ctx Context) token.Token {
	l.sawNewline = false
	l.skipWhitespaceAndComments(ctx)

	start := l.pos()
	afterNewline := l.sawNewline

	if l.r.eof() {
		return l.finish(token.Token{Kind: token.EOF, Start: start, End: start, AfterNewline: afterNewline})
	}

	c := l.ch()
	var tok token.Token
	switch {
	case c == '"' || c == '\'':
		tok = l.scanString(byte(c), start)
	case c == '`':
		tok = l.scanTemplateHead(start)
	case isASCIIDigit(c) || (c == '.' && isASCIIDigit(l.peek(1))):
		tok = l.scanNumber(start)
	case isIdentifierStartChar(c, l):
		tok = l.scanIdentifierOrKeyword(start)
	case c == '/' && ctx.ExprAllowed:
		tok = l.scanRegex(start)
	default:
		tok = l.scanPunctuator(start, ctx)
	}
	tok.AfterNewline = afterNewline
	return l.finish(tok)
}

func (l *Lexer) finish(tok token.Token) token.Token {
	tok.End = l.pos()
	if l.opts.Raw && tok.Raw == "" && tok.Kind != token.EOF {
		tok.Raw = l.sliceFrom(tok.Start.Offset)
	}
	return tok
}

func isIdentifierStartChar(c int, l *Lexer) bool {
	if c == '\\' && l.peek(1) == 'u' {
		return true
	}
	if c > 0x7F {
		cp, _ := l.r.decodeCodePoint()
		return isIdentifierStart(cp)
	}
	return isASCIILetter(c) || c == '_' || c == '$'
}

func (l *Lexer) skipWhitespaceAndComments(ctx Context) {
	for {
		c := l.ch()
		switch {
		case isLineTerminator(c):
			l.sawNewline = true
			l.advance()
		case isWhitespace(c):
			l.advance()
		case c == '/' && l.peek(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peek(1) == '*':
			l.skipBlockComment()
		case c == '<' && l.peek(1) == '!' && l.peek(2) == '-' && l.peek(3) == '-' && !ctx.Module:
			l.skipLineComment()
		case c == '-' && l.peek(1) == '-' && l.peek(2) == '>' && !ctx.Module && (l.sawNewline || l.r.pos == 0):
			l.skipLineComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	start := l.pos()
	startOff := l.r.pos
	for !l.r.eof() && !isLineTerminator(l.ch()) {
		l.advance()
	}
	if l.opts.OnComment != nil {
		l.opts.OnComment(false, l.sliceFrom(startOff), start, l.pos())
	}
}

func (l *Lexer) skipBlockComment() {
	start := l.pos()
	startOff := l.r.pos
	l.advance() // /
	l.advance() // *
	closed := false
	for !l.r.eof() {
		if l.ch() == '*' && l.peek(1) == '/' {
			l.advance()
			l.advance()
			closed = true
			break
		}
		if isLineTerminator(l.ch()) {
			l.sawNewline = true
		}
		l.advance()
	}
	if !closed {
		panic(&Error{Message: "unterminated multi-line comment", Pos: start})
	}
	if l.opts.OnComment != nil {
		l.opts.OnComment(true, l.sliceFrom(startOff), start, l.pos())
	}
}

// State is an opaque snapshot of the lexer's cursor, used by the parser's
// speculative-lookahead sites (async-arrow vs. identifier, `let` lexical
// declaration vs. identifier, dynamic `import(` vs. declaration): the
// parser calls Snapshot, tries to scan and parse ahead, and either commits
// by discarding the snapshot or backtracks by calling Restore. This is the
// same constant-time cursor-rewind idea RescanTemplateContinuation already
// uses for template re-entry, generalized to an arbitrary rewind point.
type State struct {
	pos, line, column int
	sawNewline        bool
}

// Snapshot captures the lexer's current cursor position.
func (l *Lexer) Snapshot() State {
	return State{pos: l.r.pos, line: l.r.line, column: l.r.column, sawNewline: l.sawNewline}
}

// Restore rewinds the lexer to a previously captured State. Tokens
// returned between Snapshot and Restore must be discarded by the caller;
// the next Next call re-scans from the restored position.
func (l *Lexer) Restore(s State) {
	l.r.pos = s.pos
	l.r.line = s.line
	l.r.column = s.column
	l.sawNewline = s.sawNewline
}

// Error is a fatal lexical error. The parser recovers it via panic/recover
// at the top-level ParseScript/ParseModule entry points, matching spec.md
// §7's "no local recovery" policy.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Message, e.Pos.Line, e.Pos.Column)
}
