package debug

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/xjslang/es2018/ast"
	"github.com/xjslang/es2018/parser"
)

func TestToJSON(t *testing.T) {
	prog, err := parser.ParseScript("let x = 5;", parser.Options{})
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	got, err := ToJSON(prog)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	for _, want := range []string{`"type": "Program"`, `"type": "VariableDeclaration"`, `"kind": "let"`} {
		if !strings.Contains(got, want) {
			t.Errorf("ToJSON() output missing %q, got:\n%s", want, got)
		}
	}
}

func TestPrint(t *testing.T) {
	node := &ast.Identifier{Name: "x"}

	output := captureOutput(func() {
		Print(node)
	})

	if output == "" {
		t.Error("Print() produced no output")
	}
	for _, want := range []string{"ast.Identifier", "Name", "x"} {
		if !strings.Contains(output, want) {
			t.Errorf("Print() output missing %q, got:\n%s", want, output)
		}
	}
}

func TestSdump(t *testing.T) {
	node := &ast.Identifier{Name: "x"}
	if got := Sdump(node); !strings.Contains(got, "x") {
		t.Errorf("Sdump() missing node content, got %q", got)
	}
}

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
