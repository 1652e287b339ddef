/*
Package token defines the token kinds and structures shared by the es2018
lexer and parser.

Every Kind carries a small set of bit-flags (FlagIdentifier, FlagReserved,
FlagBinaryOp, …) alongside its binary-operator precedence, so the parser
can answer most "is this token legal here" questions with a bitwise test
instead of a switch over named constants.

Example:

	l := lexer.New(src, lexer.Options{})
	for {
		tok := l.Next(lexer.Context{})
		fmt.Println(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
*/
package token
