package lexer

import "unicode"

// isIdentifierStart/isIdentifierPart approximate the Unicode ID_Start /
// ID_Continue properties used by the ECMAScript IdentifierName grammar.
// The teacher's toy lexer only accepts ASCII letters, '_' and '$'; a full
// ES2018 grammar must accept any Unicode letter. Go's unicode package is the
// only table of the relevant categories anywhere in the retrieved pack (the
// alternative, golang.org/x/text, arrives only as an indirect dependency of
// dependencies this spec does not use and exposes no ID_Start/ID_Continue
// table of its own), so identifier classification composes unicode.Is calls
// directly rather than reaching for a third-party rangetable.
func isIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsOneOf(idStartCategories, r)
}

func isIdentifierPart(r rune) bool {
	if r == '$' || r == '_' || r == 0x200C /* ZWNJ */ || r == 0x200D /* ZWJ */ {
		return true
	}
	return unicode.IsOneOf(idContinueCategories, r)
}

var idStartCategories = []*unicode.RangeTable{
	unicode.L,  // Lu Ll Lt Lm Lo
	unicode.Nl, // letter numbers (roman numerals etc.)
}

var idContinueCategories = []*unicode.RangeTable{
	unicode.L,
	unicode.Nl,
	unicode.Mn, // nonspacing marks
	unicode.Mc, // spacing combining marks
	unicode.Nd, // decimal digits
	unicode.Pc, // connector punctuation (includes '_', already special-cased)
}

func isASCIILetter(ch int) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isASCIIDigit(ch int) bool { return ch >= '0' && ch <= '9' }

func isHexDigit(ch int) bool {
	return isASCIIDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch int) bool { return ch >= '0' && ch <= '7' }
func isBinaryDigit(ch int) bool { return ch == '0' || ch == '1' }

func hexValue(ch int) int {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	}
	return 0
}

// isWhitespace matches the spec's whitespace set (tab, VT, FF, space, NBSP,
// and the assorted Unicode space separators), excluding line terminators
// which are handled separately so the scanner can track newlines.
func isWhitespace(ch int) bool {
	switch ch {
	case '\t', '\v', '\f', ' ', 0x00A0, 0xFEFF,
		0x1680, 0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006,
		0x2007, 0x2008, 0x2009, 0x200A, 0x202F, 0x205F, 0x3000:
		return true
	}
	return false
}
