// Command demo shows the es2018 lexer and parser working end to end: it
// prints the raw token stream for a short script, then the resulting
// ESTree JSON.
package main

import (
	"fmt"

	"github.com/xjslang/es2018/debug"
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/parser"
	"github.com/xjslang/es2018/token"
)

func main() {
	input := `
		let x = 5
		let y = 10.5
		let name = "Hello World"

		function add(a, b) {
			return a + b
		}

		if (x < y) {
			console.log("x is less than y")
		}

		let numbers = [1, 2, 3]
		let person = {name: "John", age: 30}
	`

	fmt.Println("=== LEXER OUTPUT ===")
	lx := lexer.New(input, lexer.Options{})
	for {
		tok := lx.Next(lexer.Context{ExprAllowed: true})
		fmt.Println(tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	fmt.Println("\n=== PARSER OUTPUT ===")
	program, err := parser.ParseScript(input, parser.Options{Ranges: true, Locations: true})
	if err != nil {
		fmt.Println("Parse error:", err)
		return
	}

	out, err := debug.ToJSON(program)
	if err != nil {
		fmt.Println("JSON error:", err)
		return
	}
	fmt.Println(out)
}
