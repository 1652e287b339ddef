package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/xjslang/es2018/token"
)

// scanNumber implements spec.md §4.2's numeric-literal grammar: decimal,
// the 0x/0o/0b radix prefixes, legacy octal, and the stage-3 BigInt suffix.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	startOff := l.r.pos

	if l.ch() == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		return l.scanRadixInteger(start, startOff, 16, isHexDigit)
	}
	if l.ch() == '0' && (l.peek(1) == 'o' || l.peek(1) == 'O') {
		return l.scanRadixInteger(start, startOff, 8, isOctalDigit)
	}
	if l.ch() == '0' && (l.peek(1) == 'b' || l.peek(1) == 'B') {
		return l.scanRadixInteger(start, startOff, 2, isBinaryDigit)
	}

	legacyOctal := false
	if l.ch() == '0' && isASCIIDigit(l.peek(1)) {
		// Legacy octal, fatal in strict mode (enforced by the parser, which
		// checks the raw slice carried in Literal for this prefix); digits
		// 8/9 make it a non-octal decimal with leading zero.
		legacyOctal = true
		for _, r := range l.peekDigitsAfterLeadingZero() {
			if r == '8' || r == '9' {
				legacyOctal = false
				break
			}
		}
	}

	for isASCIIDigit(l.ch()) {
		l.advance()
	}
	isFloat := false
	if l.ch() == '.' && !legacyOctal {
		isFloat = true
		l.advance()
		for isASCIIDigit(l.ch()) {
			l.advance()
		}
	}
	if (l.ch() == 'e' || l.ch() == 'E') && !legacyOctal {
		save := l.r.pos
		l.advance()
		if l.ch() == '+' || l.ch() == '-' {
			l.advance()
		}
		if !isASCIIDigit(l.ch()) {
			l.r.pos = save // not actually an exponent
		} else {
			isFloat = true
			for isASCIIDigit(l.ch()) {
				l.advance()
			}
		}
	}

	raw := l.sliceFrom(startOff)

	if l.ch() == 'n' {
		if isFloat || legacyOctal {
			panic(&Error{Message: "invalid BigInt literal", Pos: start})
		}
		l.advance()
		digits := raw
		v := new(big.Int)
		v.SetString(digits, 10)
		return token.Token{Kind: token.BIGINT, Literal: raw, Value: v, Start: start}
	}

	var f float64
	if legacyOctal {
		iv, _ := strconv.ParseInt(raw, 8, 64)
		f = float64(iv)
	} else {
		f, _ = strconv.ParseFloat(raw, 64)
	}
	return token.Token{Kind: token.NUMBER, Literal: raw, Value: f, Start: start}
}

func (l *Lexer) peekDigitsAfterLeadingZero() string {
	var b strings.Builder
	i := 0
	for isASCIIDigit(l.peek(i)) {
		b.WriteByte(byte(l.peek(i)))
		i++
	}
	return b.String()
}

func (l *Lexer) scanRadixInteger(start token.Position, startOff, radix int, digit func(int) bool) token.Token {
	l.advance() // '0'
	l.advance() // x/o/b
	count := 0
	for digit(l.ch()) {
		l.advance()
		count++
	}
	if count == 0 {
		panic(&Error{Message: "missing digits after radix prefix", Pos: start})
	}
	bigIntSuffix := false
	if l.ch() == 'n' {
		bigIntSuffix = true
		l.advance()
	}
	raw := l.sliceFrom(startOff)
	digits := raw[2:]
	if bigIntSuffix {
		digits = digits[:len(digits)-1]
		v := new(big.Int)
		v.SetString(digits, radix)
		return token.Token{Kind: token.BIGINT, Literal: raw, Value: v, Start: start}
	}
	iv, _ := strconv.ParseUint(digits, radix, 64)
	return token.Token{Kind: token.NUMBER, Literal: raw, Value: float64(iv), Start: start}
}
