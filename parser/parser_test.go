package parser

import (
	"testing"

	"github.com/xjslang/es2018/ast"
)

// parseOneExpr parses src as a script and returns the sole expression
// statement's expression, failing the test otherwise. Exercises the same
// entry point the table-driven tests below all share.
func parseOneExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	program, err := ParseScript(src, Options{})
	if err != nil {
		t.Fatalf("ParseScript(%q) error = %v", src, err)
	}
	if len(program.Body) != 1 {
		t.Fatalf("ParseScript(%q): len(Body) = %d, want 1", src, len(program.Body))
	}
	stmt, ok := program.Body[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("ParseScript(%q): Body[0] = %T, want *ast.ExpressionStatement", src, program.Body[0])
	}
	return stmt.Expression
}

func TestParseBasicLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"integer literal", "42", float64(42)},
		{"float literal", "3.14", 3.14},
		{"string literal", `"hello"`, "hello"},
		{"boolean true", "true", true},
		{"boolean false", "false", false},
		{"null literal", "null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseOneExpr(t, tt.input)
			lit, ok := expr.(*ast.Literal)
			if !ok {
				t.Fatalf("expression = %T, want *ast.Literal", expr)
			}
			if lit.Value != tt.want {
				t.Errorf("Value = %#v, want %#v", lit.Value, tt.want)
			}
		})
	}
}

func TestParseBinaryExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		operator string
	}{
		{"addition", "1 + 2", "+"},
		{"subtraction", "5 - 3", "-"},
		{"multiplication", "3 * 4", "*"},
		{"division", "8 / 2", "/"},
		{"modulo", "10 % 3", "%"},
		{"equality", "x == y", "=="},
		{"strict equality", "x === y", "==="},
		{"inequality", "x != y", "!="},
		{"less than", "x < y", "<"},
		{"greater than", "x > y", ">"},
		{"instanceof", "x instanceof y", "instanceof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseOneExpr(t, tt.input)
			bin, ok := expr.(*ast.BinaryExpression)
			if !ok {
				t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
			}
			if bin.Operator != tt.operator {
				t.Errorf("Operator = %q, want %q", bin.Operator, tt.operator)
			}
		})
	}
}

func TestParseLogicalExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		operator string
	}{
		{"logical and", "a && b", "&&"},
		{"logical or", "a || b", "||"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseOneExpr(t, tt.input)
			logical, ok := expr.(*ast.LogicalExpression)
			if !ok {
				t.Fatalf("expression = %T, want *ast.LogicalExpression", expr)
			}
			if logical.Operator != tt.operator {
				t.Errorf("Operator = %q, want %q", logical.Operator, tt.operator)
			}
		})
	}
}

// TestOperatorPrecedence checks that `*` binds tighter than `+` and that an
// explicit parenthesized group overrides the default climb, matching
// spec.md §4.3's Pratt-style climbing loop.
func TestOperatorPrecedence(t *testing.T) {
	expr := parseOneExpr(t, "1 + 2 * 3")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
	}
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want %q", bin.Operator, "+")
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right = %#v, want a '*' BinaryExpression", bin.Right)
	}

	expr = parseOneExpr(t, "(1 + 2) * 3")
	group, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
	}
	if group.Operator != "*" {
		t.Fatalf("top operator = %q, want %q", group.Operator, "*")
	}
	if _, ok := group.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("left = %T, want *ast.BinaryExpression", group.Left)
	}
}

// TestStarStarRightAssociative checks `**`'s right-associativity, the one
// binary operator that recurses at the same precedence for its right
// operand (parser/expr.go's parseBinary).
func TestStarStarRightAssociative(t *testing.T) {
	expr := parseOneExpr(t, "2 ** 3 ** 2")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
	}
	if _, ok := bin.Left.(*ast.Literal); !ok {
		t.Errorf("left = %T, want *ast.Literal (2)", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "**" {
		t.Fatalf("right = %#v, want a '**' BinaryExpression (3 ** 2)", bin.Right)
	}
}

func TestParseUnaryExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		operator string
		prefix   bool
	}{
		{"negation", "-x", "-", true},
		{"logical not", "!true", "!", true},
		{"typeof", "typeof x", "typeof", true},
		{"void", "void 0", "void", true},
		{"delete", "delete x.y", "delete", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseOneExpr(t, tt.input)
			un, ok := expr.(*ast.UnaryExpression)
			if !ok {
				t.Fatalf("expression = %T, want *ast.UnaryExpression", expr)
			}
			if un.Operator != tt.operator || un.Prefix != tt.prefix {
				t.Errorf("got {%q, prefix=%v}, want {%q, prefix=%v}", un.Operator, un.Prefix, tt.operator, tt.prefix)
			}
		})
	}
}

func TestParseUpdateExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		operator string
		prefix   bool
	}{
		{"prefix increment", "++x", "++", true},
		{"prefix decrement", "--x", "--", true},
		{"postfix increment", "x++", "++", false},
		{"postfix decrement", "x--", "--", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseOneExpr(t, tt.input)
			up, ok := expr.(*ast.UpdateExpression)
			if !ok {
				t.Fatalf("expression = %T, want *ast.UpdateExpression", expr)
			}
			if up.Operator != tt.operator || up.Prefix != tt.prefix {
				t.Errorf("got {%q, prefix=%v}, want {%q, prefix=%v}", up.Operator, up.Prefix, tt.operator, tt.prefix)
			}
		})
	}
}

// TestParenArrowVsSequence covers the cover-grammar decision spec.md §4.3
// describes: a parenthesized list becomes arrow params on `=>`, else a
// SequenceExpression (or the bare single expression).
func TestParenArrowVsSequence(t *testing.T) {
	expr := parseOneExpr(t, "(a, b) => a + b")
	arrow, ok := expr.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.ArrowFunctionExpression", expr)
	}
	if len(arrow.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(arrow.Params))
	}

	expr = parseOneExpr(t, "(a, b)")
	seq, ok := expr.(*ast.SequenceExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.SequenceExpression", expr)
	}
	if len(seq.Expressions) != 2 {
		t.Errorf("len(Expressions) = %d, want 2", len(seq.Expressions))
	}
}

// TestWrappedInParenArrowIsFatal mirrors spec.md §8 scenario 8: an arrow
// parameter list with a doubly-parenthesized element is fatal.
func TestWrappedInParenArrowIsFatal(t *testing.T) {
	_, err := ParseScript("((a),(b))=>0", Options{})
	if err == nil {
		t.Fatal("ParseScript(\"((a),(b))=>0\") error = nil, want a WrappedInParen failure")
	}
}

func TestSingleIdentifierArrow(t *testing.T) {
	expr := parseOneExpr(t, "x => x + 1")
	arrow, ok := expr.(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.ArrowFunctionExpression", expr)
	}
	if len(arrow.Params) != 1 {
		t.Fatalf("len(Params) = %d, want 1", len(arrow.Params))
	}
	id, ok := arrow.Params[0].(*ast.Identifier)
	if !ok || id.Name != "x" {
		t.Errorf("Params[0] = %#v, want Identifier(x)", arrow.Params[0])
	}
}

func TestParseMemberAndCallExpressions(t *testing.T) {
	expr := parseOneExpr(t, "foo.bar(1, 2)")
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.CallExpression", expr)
	}
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok || member.Computed {
		t.Fatalf("Callee = %#v, want a non-computed MemberExpression", call.Callee)
	}
	if len(call.Arguments) != 2 {
		t.Errorf("len(Arguments) = %d, want 2", len(call.Arguments))
	}
}

func TestParseNewExpression(t *testing.T) {
	expr := parseOneExpr(t, "new Foo(1)")
	n, ok := expr.(*ast.NewExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.NewExpression", expr)
	}
	if len(n.Arguments) != 1 {
		t.Errorf("len(Arguments) = %d, want 1", len(n.Arguments))
	}
}

func TestParseRegExpLiteral(t *testing.T) {
	expr := parseOneExpr(t, "/a/i")
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.Regex == nil {
		t.Fatalf("expression = %#v, want a regex *ast.Literal", expr)
	}
	if lit.Regex.Pattern != "a" || lit.Regex.Flags != "i" {
		t.Errorf("Regex = %#v, want {pattern:a flags:i}", lit.Regex)
	}
}

// TestRegExpHostConstructionValue mirrors spec.md §4.2's "the parser asks
// the host to attempt construction; on failure value is set to null but
// the literal still succeeds": a well-formed pattern yields a non-nil
// Value, an unbalanced group still parses but yields a nil Value.
func TestRegExpHostConstructionValue(t *testing.T) {
	expr := parseOneExpr(t, "/a/")
	lit, ok := expr.(*ast.Literal)
	if !ok || lit.Regex == nil {
		t.Fatalf("expression = %#v, want a regex *ast.Literal", expr)
	}
	if lit.Value == nil {
		t.Errorf("Value = nil for a well-formed pattern, want a compiled regex")
	}

	expr = parseOneExpr(t, "/(/")
	lit, ok = expr.(*ast.Literal)
	if !ok || lit.Regex == nil {
		t.Fatalf("expression = %#v, want a regex *ast.Literal", expr)
	}
	if lit.Value != nil {
		t.Errorf("Value = %#v for an unbalanced group, want nil", lit.Value)
	}
}

// TestDuplicateRegExpFlagIsFatal mirrors spec.md §8 scenario 4.
func TestDuplicateRegExpFlagIsFatal(t *testing.T) {
	_, err := ParseScript("/./gig;", Options{})
	if err == nil {
		t.Fatal("ParseScript(\"/./gig;\") error = nil, want a duplicate-flag failure")
	}
}

func TestDivideVsRegExpDisambiguation(t *testing.T) {
	expr := parseOneExpr(t, "1 / -1")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
	}
	if bin.Operator != "/" {
		t.Errorf("Operator = %q, want %q", bin.Operator, "/")
	}
	if _, ok := bin.Right.(*ast.UnaryExpression); !ok {
		t.Errorf("Right = %T, want *ast.UnaryExpression", bin.Right)
	}
}
