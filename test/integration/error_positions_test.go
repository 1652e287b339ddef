package integration

import (
	"testing"

	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/parser"
)

// TestErrorPositions verifies that the first parse error carries a source
// position on the correct line. The parser has no error-recovery mode
// (spec.md §7): a syntax error always aborts the whole parse.
func TestErrorPositions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "unclosed parenthesis", input: "let x = (5 + 3", wantLine: 1},
		{name: "missing function name", input: "function (a, b) { return a + b }", wantLine: 1},
		{name: "error reported on the offending line, not line 1",
			input: "let x = 5;\nlet y = ;\nlet z = 10;", wantLine: 2},
		{name: "unclosed block statement", input: "function test() { let x = 5;", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseScript(tt.input, parser.Options{})
			if err == nil {
				t.Fatalf("expected a SyntaxError, got nil")
			}
			synErr, ok := err.(*parser.SyntaxError)
			if !ok {
				t.Fatalf("error type = %T, want *parser.SyntaxError", err)
			}
			if synErr.Pos.Line != tt.wantLine {
				t.Errorf("Pos.Line = %d, want %d (message: %s)", synErr.Pos.Line, tt.wantLine, synErr.Message)
			}
			if synErr.Message == "" {
				t.Errorf("Message is empty")
			}
		})
	}
}

// TestNoErrorRecovery verifies the parser never reports more than the one
// fatal error: parsing stops at the first failure (spec.md §7).
func TestNoErrorRecovery(t *testing.T) {
	_, err := parser.ParseScript("let x = ;\nlet y = ;\nlet z = ;", parser.Options{})
	if err == nil {
		t.Fatalf("expected a SyntaxError, got nil")
	}
	if _, ok := err.(*parser.SyntaxError); !ok {
		t.Fatalf("error type = %T, want *parser.SyntaxError", err)
	}
}

// TestTokenPositionsInAST verifies range/location metadata is populated
// when requested and omitted otherwise.
func TestTokenPositionsInAST(t *testing.T) {
	input := "let x = 42\nlet y = \"hello\"\nfunction add(a, b) {\n  return a + b\n}"

	program, err := parser.ParseScript(input, parser.Options{Ranges: true, Locations: true})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(program.Body) != 3 {
		t.Fatalf("len(Body) = %d, want 3", len(program.Body))
	}

	decl, ok := program.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.VariableDeclaration", program.Body[0])
	}
	if decl.Start == nil || decl.End == nil {
		t.Fatalf("Ranges requested but Start/End are nil")
	}
	if *decl.Start != 0 {
		t.Errorf("Start = %d, want 0", *decl.Start)
	}
	if decl.Loc == nil {
		t.Fatalf("Locations requested but Loc is nil")
	}
	if decl.Loc.Start.Line != 1 {
		t.Errorf("Loc.Start.Line = %d, want 1", decl.Loc.Start.Line)
	}

	bare, err := parser.ParseScript(input, parser.Options{})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bareDecl := bare.Body[0].(*ast.VariableDeclaration)
	if bareDecl.Start != nil || bareDecl.Loc != nil {
		t.Errorf("Ranges/Locations not requested but Start=%v Loc=%v are populated", bareDecl.Start, bareDecl.Loc)
	}
}
