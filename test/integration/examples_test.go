//go:build integration

package integration

import (
	"testing"

	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/parser"
)

// TestFullProgram exercises a source combining declarations, control flow,
// object/array literals and a function expression in one parse, checking
// the shape of the resulting Program rather than a pretty-printed string
// (pretty-printing is outside this module's scope).
func TestFullProgram(t *testing.T) {
	input := `
		let x = 5
		let y = 10.5
		let name = "Hello World"

		let items = []
		items.push(function () {
			console.log("new item")
		})

		function add(a, b) {
			return a + b
		}

		if (x < y) {
			console.log("x is less than y")
		}

		let numbers = [1, 2, 3, 4, 5]
		let person = {name: "John", age: 30}
	`
	program, err := parser.ParseScript(input, parser.Options{})
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	if got, want := len(program.Body), 9; got != want {
		t.Fatalf("len(Body) = %d, want %d", got, want)
	}
	fn, ok := program.Body[5].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("Body[5] = %T, want *ast.FunctionDeclaration", program.Body[5])
	}
	if fn.Id.Name != "add" {
		t.Errorf("fn.Id.Name = %q, want %q", fn.Id.Name, "add")
	}
	if len(fn.Params) != 2 {
		t.Errorf("len(fn.Params) = %d, want 2", len(fn.Params))
	}
}

// TestModuleWithNamedAndDefaultExports mirrors a real ES module entry
// point combining a namespace import, a named import, and both export
// forms.
func TestModuleWithNamedAndDefaultExports(t *testing.T) {
	input := `
		import * as path from "path";
		import { readFile as read } from "fs";

		export const VERSION = "1.0.0";

		export default function main() {
			return path.join(VERSION);
		}
	`
	program, err := parser.ParseModule(input, parser.Options{})
	if err != nil {
		t.Fatalf("ParseModule() error = %v", err)
	}
	if program.SourceType != "module" {
		t.Errorf("SourceType = %q, want module", program.SourceType)
	}
	imp1, ok := program.Body[0].(*ast.ImportDeclaration)
	if !ok || len(imp1.Specifiers) != 1 {
		t.Fatalf("Body[0] = %#v, want a one-specifier ImportDeclaration", program.Body[0])
	}
	if _, ok := imp1.Specifiers[0].(*ast.ImportNamespaceSpecifier); !ok {
		t.Errorf("Specifiers[0] = %T, want *ast.ImportNamespaceSpecifier", imp1.Specifiers[0])
	}
	imp2 := program.Body[1].(*ast.ImportDeclaration)
	spec, ok := imp2.Specifiers[0].(*ast.ImportSpecifier)
	if !ok || spec.Imported.Name != "readFile" || spec.Local.Name != "read" {
		t.Errorf("Specifiers[0] = %#v, want ImportSpecifier{readFile as read}", imp2.Specifiers[0])
	}
	if _, ok := program.Body[2].(*ast.ExportNamedDeclaration); !ok {
		t.Errorf("Body[2] = %T, want *ast.ExportNamedDeclaration", program.Body[2])
	}
	def, ok := program.Body[3].(*ast.ExportDefaultDeclaration)
	if !ok {
		t.Fatalf("Body[3] = %T, want *ast.ExportDefaultDeclaration", program.Body[3])
	}
	if _, ok := def.Declaration.(*ast.FunctionDeclaration); !ok {
		t.Errorf("default export declaration = %T, want *ast.FunctionDeclaration", def.Declaration)
	}
}
