// Package es2018 is a thin convenience wrapper around package parser for
// the common case of parsing a whole source string in one call.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/xjslang/es2018"
//	)
//
//	func main() {
//		program, err := es2018.ParseScript(`const x = 1 + 2;`)
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(program.Body[0])
//	}
//
// Callers who need JSX, the stage-3 feature pack, or range/location/raw
// metadata should use parser.NewBuilder (or parser.New with parser.Options)
// directly instead.
package es2018

import (
	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/parser"
)

// ParseScript parses input as an ES2018 Script goal symbol.
func ParseScript(input string) (*ast.Program, error) {
	return parser.ParseScript(input, parser.Options{})
}

// ParseModule parses input as an ES2018 Module goal symbol: strict mode is
// implied throughout and import/export declarations are legal at the top
// level.
func ParseModule(input string) (*ast.Program, error) {
	return parser.ParseModule(input, parser.Options{})
}

// Version identifies this module's release.
const Version = "0.1.0"
