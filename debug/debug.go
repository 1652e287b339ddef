// Package debug provides developer-facing AST inspection helpers. It has
// no role in parsing itself; it exists for tests and for callers building
// tooling on top of package parser who want a human-readable view of a
// node tree without writing their own encoding/json formatting.
package debug

import (
	"encoding/json"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xjslang/es2018/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// Print dumps an AST node's Go struct shape (field names and raw values,
// not the ESTree JSON form) for debugging. DisableMethods is set so this
// bypasses each node's MarshalJSON and shows the underlying struct.
func Print(node ast.Node) {
	cfg.Dump(node)
}

// Sdump is Print's string-returning counterpart, for use in test failure
// messages and log lines.
func Sdump(node ast.Node) string {
	return cfg.Sdump(node)
}

// ToJSON renders node as indented ESTree JSON, going through each node's
// own MarshalJSON (so Start/End/Loc are included or omitted exactly as the
// parser options that produced node left them).
func ToJSON(node ast.Node) (string, error) {
	b, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Write(b)
	return sb.String(), nil
}
