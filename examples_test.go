package es2018

import "testing"

func TestParseScript_general(t *testing.T) {
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
	program, err := ParseScript(input)
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	if program.SourceType != "script" {
		t.Errorf("SourceType = %q, want %q", program.SourceType, "script")
	}
	if got, want := len(program.Body), 9; got != want {
		t.Fatalf("len(Body) = %d, want %d", got, want)
	}
}

func TestParseModule_general(t *testing.T) {
	program, err := ParseModule(`
		import { readFile } from "fs";
		export const value = 42;
	`)
	if err != nil {
		t.Fatalf("ParseModule() error = %v", err)
	}
	if program.SourceType != "module" {
		t.Errorf("SourceType = %q, want %q", program.SourceType, "module")
	}
	if got, want := len(program.Body), 2; got != want {
		t.Fatalf("len(Body) = %d, want %d", got, want)
	}
}
