package lexer

import "github.com/xjslang/es2018/token"

// NextJSXText scans the raw text between a JSX opening tag's '>' and the
// next '<' or '{', per spec.md §4.3's scanJSXToken sub-mode. It is only
// called by the parser while inside JSX children, never through Next.
func (l *Lexer) NextJSXText() token.Token {
	start := l.pos()
	startOff := l.r.pos
	for {
		c := l.ch()
		if l.r.eof() || c == '<' || c == '{' || c == '}' {
			break
		}
		l.advance()
	}
	text := l.sliceFrom(startOff)
	return token.Token{Kind: token.JSX_TEXT, Literal: text, Raw: text, Start: start}
}

// ScanJSXIdentifier reads a JSX tag/attribute name, which additionally
// permits '-' inside the identifier (e.g. "data-foo", "xlink:href" handled
// separately via ':' in the parser).
func (l *Lexer) ScanJSXIdentifier(start token.Position) token.Token {
	startOff := l.r.pos
	for {
		c := l.ch()
		if c == '-' || isASCIILetter(c) || isASCIIDigit(c) || c == '_' || c == '$' {
			l.advance()
			continue
		}
		if c > 0x7F {
			cp, width := l.r.decodeCodePoint()
			if isIdentifierPart(cp) {
				for i := 0; i < width; i++ {
					l.advance()
				}
				continue
			}
		}
		break
	}
	name := l.sliceFrom(startOff)
	return token.Token{Kind: token.IDENT, Literal: name, Start: start}
}

// SkipTrivia advances past whitespace and comments without producing a
// token. The parser calls this between JSX tag-grammar segments (tag
// name, attributes, '/', '>') to reach a clean boundary before deciding,
// via CurrentRune/AtIdentifierStart, what kind of segment follows.
// HTML-style comments are never recognized here: a JSX tag's interior is
// never the Script top level spec.md §4.2 carves that syntax out for.
func (l *Lexer) SkipTrivia() {
	l.skipWhitespaceAndComments(Context{Module: true})
}

// CurrentRune exposes the raw character at the lexer's cursor. The parser
// uses it to recognize the single-character JSX tag punctuators ('.',
// ':', '=', '/', '>', '{', '"', '\'') without routing them through Next,
// which would otherwise greedily tokenize an adjacent identifier using
// ordinary (non-hyphenated) rules.
func (l *Lexer) CurrentRune() rune {
	return rune(l.ch())
}

// AtIdentifierStart reports whether the lexer's cursor sits on a
// character that begins a JSX identifier segment.
func (l *Lexer) AtIdentifierStart() bool {
	c := l.ch()
	if c > 0x7F {
		cp, _ := l.r.decodeCodePoint()
		return isIdentifierStart(cp)
	}
	return isASCIILetter(c) || c == '_' || c == '$'
}

// ScanJSXAttributeString scans a JSX attribute string value, which ES2018
// JSX restricts to plain quoted text with no escape processing (spec.md
// §4.3: "a specialized string scanner that accepts only '"'/'\'' strings or
// '{ … }' expression containers").
func (l *Lexer) ScanJSXAttributeString(start token.Position) token.Token {
	delim := l.ch()
	l.advance()
	startOff := l.r.pos
	for {
		if l.r.eof() {
			panic(&Error{Message: "unterminated JSX attribute string", Pos: start})
		}
		if l.ch() == delim {
			break
		}
		l.advance()
	}
	text := l.sliceFrom(startOff)
	l.advance()
	return token.Token{Kind: token.STRING, Literal: text, Cooked: text, Value: stringValue{text: text}, Start: start}
}
