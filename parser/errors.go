package parser

import (
	"fmt"

	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// SyntaxError is returned by ParseScript/ParseModule for any fatal parse
// failure, whether raised by the lexer (an unterminated literal, an
// invalid escape) or by the parser itself (an unexpected token, an early
// error like a duplicate lexical binding).
type SyntaxError struct {
	Message string
	Pos     token.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// fail raises a SyntaxError as a panic, caught by the recover in
// ParseScript/ParseModule. Panic/recover for fatal errors matches the
// lexer's own convention (lexer.Error is raised the same way) so a single
// recover site at the top of the public entry points is enough to turn
// every internal failure, lexer or parser, into a returned error.
func (p *Parser) fail(pos token.Position, format string, args ...any) {
	panic(&SyntaxError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *Parser) failTok(tok token.Token, format string, args ...any) {
	p.fail(tok.Start, format, args...)
}

// recoverError converts a recovered panic into an error, re-panicking
// anything that isn't a *SyntaxError or a *lexer.Error (a programmer bug
// should still crash loudly rather than being swallowed as a syntax
// error).
func recoverError(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *SyntaxError:
		*errp = e
	case *lexer.Error:
		*errp = &SyntaxError{Message: e.Message, Pos: e.Pos}
	default:
		panic(r)
	}
}
