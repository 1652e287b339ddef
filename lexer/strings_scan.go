package lexer

import (
	"strings"

	"github.com/xjslang/es2018/token"
)

// scanString implements spec.md §4.2's StringLiteral grammar: escape
// sequences, \xHH, \uHHHH / \u{H+}, legacy octal escapes, and line
// continuations. Rejecting legacy octal escapes in strict mode is left to
// the parser: the lexer records whether one occurred in the stringValue it
// stores in Token.Value, read back through HadLegacyOctalEscape.
func (l *Lexer) scanString(delim byte, start token.Position) token.Token {
	l.advance() // opening quote
	var b strings.Builder
	hadOctalEscape := false
	hadEightNine := false
	for {
		if l.r.eof() {
			panic(&Error{Message: "unterminated string literal", Pos: start})
		}
		c := l.ch()
		if c == int(delim) {
			l.advance()
			break
		}
		if isLineTerminator(c) {
			panic(&Error{Message: "unterminated string literal", Pos: start})
		}
		if c == '\\' {
			l.advance()
			oct, eight := l.scanEscapeInto(&b)
			hadOctalEscape = hadOctalEscape || oct
			hadEightNine = hadEightNine || eight
			continue
		}
		cp, width := l.r.decodeCodePoint()
		b.WriteRune(cp)
		for i := 0; i < width; i++ {
			l.advance()
		}
	}
	if hadEightNine {
		panic(&Error{Message: `\8 and \9 are not allowed in string literals`, Pos: start})
	}
	tok := token.Token{Kind: token.STRING, Literal: b.String(), Cooked: b.String(), Start: start}
	tok.Value = stringValue{text: b.String(), hadLegacyOctalEscape: hadOctalEscape}
	return tok
}

// stringValue is the Token.Value payload for string/template cooked text;
// hadLegacyOctalEscape lets the parser raise StrictOctalEscape without
// re-scanning the source.
type stringValue struct {
	text                 string
	hadLegacyOctalEscape bool
}

func (s stringValue) String() string { return s.text }

// HadLegacyOctalEscape reports whether a STRING or template token's cooked
// value contained a legacy octal escape (`\0`..`\7`), which package parser
// must reject once strict mode is known to apply (spec.md §4.2: the escape
// itself is always legal to scan; only strict mode makes it fatal).
func HadLegacyOctalEscape(v any) bool {
	sv, ok := v.(stringValue)
	return ok && sv.hadLegacyOctalEscape
}

// scanEscapeInto decodes one escape sequence (cursor already past the
// backslash) into b, returning whether it was a legacy octal escape and
// whether it was the always-fatal \8 / \9.
func (l *Lexer) scanEscapeInto(b *strings.Builder) (legacyOctal bool, eightNine bool) {
	c := l.ch()
	switch c {
	case 'b':
		b.WriteByte('\b')
		l.advance()
	case 't':
		b.WriteByte('\t')
		l.advance()
	case 'n':
		b.WriteByte('\n')
		l.advance()
	case 'v':
		b.WriteByte('\v')
		l.advance()
	case 'f':
		b.WriteByte('\f')
		l.advance()
	case 'r':
		b.WriteByte('\r')
		l.advance()
	case '\\', '\'', '"', '`':
		b.WriteRune(rune(c))
		l.advance()
	case 'x':
		l.advance()
		v := 0
		for i := 0; i < 2; i++ {
			if !isHexDigit(l.ch()) {
				panic(&Error{Message: "invalid hexadecimal escape sequence", Pos: l.pos()})
			}
			v = v*16 + hexValue(l.ch())
			l.advance()
		}
		b.WriteRune(rune(v))
	case 'u':
		// readUnicodeEscape expects the cursor on the backslash.
		l.r.pos--
		l.r.column--
		cp := l.readUnicodeEscape()
		b.WriteRune(cp)
	case '8', '9':
		b.WriteByte(byte(c))
		l.advance()
		return false, true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		val := 0
		digits := 0
		maxDigits := 3
		if c >= '4' {
			maxDigits = 2
		}
		for digits < maxDigits && isOctalDigit(l.ch()) {
			val = val*8 + (l.ch() - '0')
			l.advance()
			digits++
		}
		b.WriteRune(rune(val))
		return true, false
	default:
		if isLineTerminator(c) {
			// Line continuation: backslash + newline contributes nothing.
			l.advance()
			return false, false
		}
		cp, width := l.r.decodeCodePoint()
		b.WriteRune(cp)
		for i := 0; i < width; i++ {
			l.advance()
		}
	}
	return false, false
}
