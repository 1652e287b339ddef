/*
Package lexer performs lexical analysis of ECMAScript 2018 source text.

The lexer is contextual: the same leading character can start different
tokens depending on what the parser already knows. A caller that wants a
regular-expression literal instead of a division operator, or a template
continuation instead of a fresh right-brace, asks for it explicitly:

	l := lexer.New(src, lexer.Options{JSX: true})
	tok := l.Next(lexer.Context{ExprAllowed: true}) // '/' is scanned as REGEXP here
	tok = l.Next(lexer.Context{})                    // '/' is scanned as SLASH here

Whitespace, comments (single-line, multi-line, HTML-style, and a leading
shebang) are consumed silently between tokens; when Options.OnComment is
set, each comment is reported before the token that follows it.
*/
package lexer
