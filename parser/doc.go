// Package parser implements a recursive-descent ECMAScript 2018 parser
// producing an *ast.Program. Expression parsing uses precedence climbing
// over token.Kind.Precedence(); ambiguous left-hand sides (parenthesized
// expression vs. arrow parameter list, object/array literal vs.
// destructuring pattern) are parsed once as an expression and reinterpreted
// via ast.ExprToPattern or dedicated arrow-conversion helpers rather than
// backtracked.
//
// Example:
//
//	prog, err := parser.ParseScript(src, parser.Options{Ranges: true})
//	if err != nil {
//	    var synErr *parser.SyntaxError
//	    if errors.As(err, &synErr) {
//	        fmt.Println(synErr.Pos, synErr.Message)
//	    }
//	}
//
// Optional feature packs (stage-3 syntax, V8 do-expressions, expression-
// position throw) are opt-in through Options and installed the same way
// the teacher's Builder installs plugins:
//
//	b := parser.NewBuilder(lexer.NewBuilder()).WithNext(true)
//	p := b.Build(src)
//	prog, err := p.ParseScript()
package parser
