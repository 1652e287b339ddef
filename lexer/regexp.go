package lexer

import "github.com/xjslang/es2018/token"

// scanRegex is only reached from Next when ctx.ExprAllowed is true and the
// current character is '/' — the parser has already decided a regex may
// start here (spec.md §4.2). The body is scanned with the 2-state
// Escape/CharClass machine spec.md describes; the pattern text is not
// otherwise validated.
func (l *Lexer) scanRegex(start token.Position) token.Token {
	rawStart := l.r.pos
	l.advance() // opening '/'

	patStart := l.r.pos
	inCharClass := false
	for {
		if l.r.eof() || isLineTerminator(l.ch()) {
			panic(&Error{Message: "unterminated regular expression literal", Pos: start})
		}
		c := l.ch()
		if c == '\\' {
			l.advance()
			if l.r.eof() || isLineTerminator(l.ch()) {
				panic(&Error{Message: "unterminated regular expression literal", Pos: start})
			}
			l.advance()
			continue
		}
		if c == '[' {
			inCharClass = true
			l.advance()
			continue
		}
		if c == ']' {
			inCharClass = false
			l.advance()
			continue
		}
		if c == '/' && !inCharClass {
			break
		}
		l.advance()
	}
	pattern := l.sliceFrom(patStart)
	l.advance() // closing '/'

	flagsStart := l.r.pos
	seen := map[rune]bool{}
	for isIdentifierPartASCIIOrLetter(l.ch()) {
		r := rune(l.ch())
		if seen[r] {
			panic(&Error{Message: "duplicate regular expression flag: " + string(r), Pos: start})
		}
		if !isValidRegexFlag(r) {
			panic(&Error{Message: "invalid regular expression flag: " + string(r), Pos: start})
		}
		seen[r] = true
		l.advance()
	}
	flags := l.sliceFrom(flagsStart)
	raw := l.sliceFrom(rawStart)

	return token.Token{
		Kind:  token.REGEXP,
		Raw:   raw,
		Regex: &token.RegexPayload{Pattern: pattern, Flags: flags},
		Start: start,
	}
}

func isIdentifierPartASCIIOrLetter(c int) bool {
	return isASCIILetter(c)
}

// isValidRegexFlag reports the standard ES2018 flag set. 's' (dotAll) is a
// stage-3 addition gated by the caller via Options/next at the parser level;
// the lexer accepts it unconditionally here and lets the parser reject it
// when `next` is off, matching spec.md's "unknown flag characters are
// fatal" contract applying only to characters outside this set.
func isValidRegexFlag(r rune) bool {
	switch r {
	case 'g', 'i', 'm', 'u', 'y', 's':
		return true
	}
	return false
}
