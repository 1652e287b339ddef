package lexer

import (
	"strings"

	"github.com/xjslang/es2018/token"
)

// scanTemplateHead scans from the opening backtick. It returns
// TEMPLATE_NOSUB when the template has no substitutions, or TEMPLATE_HEAD
// when it ends in "${", per spec.md §4.2.
func (l *Lexer) scanTemplateHead(start token.Position) token.Token {
	l.advance() // '`'
	return l.scanTemplatePart(start, true)
}

// RescanTemplateContinuation is the spec.md §4.2 scanTemplateNext entry
// point: given the RBRACE token the parser already received while closing a
// "${...}" substitution, it rewinds the reader to that brace (a
// constant-time field restore, mirroring the Saved-state snapshot
// discipline of spec.md §3) and resumes scanning the template body,
// treating the brace as consumed template syntax rather than a punctuator.
func (l *Lexer) RescanTemplateContinuation(rbrace token.Token) token.Token {
	l.r.pos = rbrace.Start.Offset
	l.r.line = rbrace.Start.Line
	l.r.column = rbrace.Start.Column
	start := l.pos()
	l.advance() // '}'
	return l.scanTemplatePart(start, false)
}

// scanTemplatePart scans template text up to the next unescaped "${" or the
// closing backtick, deciding among TEMPLATE_NOSUB/HEAD/MIDDLE/TAIL based on
// isHead and which terminator was found.
func (l *Lexer) scanTemplatePart(start token.Position, isHead bool) token.Token {
	var cooked strings.Builder
	rawStart := l.r.pos
	hadInvalidEscape := false
	for {
		if l.r.eof() {
			panic(&Error{Message: "unterminated template literal", Pos: start})
		}
		c := l.ch()
		if c == '`' {
			raw := l.sliceFrom(rawStart)
			l.advance()
			kind := token.TEMPLATE_TAIL
			if isHead {
				kind = token.TEMPLATE_NOSUB
			}
			return token.Token{Kind: kind, Cooked: cooked.String(), Raw: raw, Start: start,
				Value: stringValue{text: cooked.String(), hadLegacyOctalEscape: hadInvalidEscape}}
		}
		if c == '$' && l.peek(1) == '{' {
			raw := l.sliceFrom(rawStart)
			l.advance()
			l.advance()
			kind := token.TEMPLATE_MIDDLE
			if isHead {
				kind = token.TEMPLATE_HEAD
			}
			return token.Token{Kind: kind, Cooked: cooked.String(), Raw: raw, Start: start,
				Value: stringValue{text: cooked.String(), hadLegacyOctalEscape: hadInvalidEscape}}
		}
		if c == '\\' {
			l.advance()
			oct, _ := l.scanEscapeInto(&cooked)
			hadInvalidEscape = hadInvalidEscape || oct
			continue
		}
		if isLineTerminator(c) {
			cooked.WriteByte('\n')
			l.advance()
			continue
		}
		cp, width := l.r.decodeCodePoint()
		cooked.WriteRune(cp)
		for i := 0; i < width; i++ {
			l.advance()
		}
	}
}
