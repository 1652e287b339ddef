package lexer

import (
	"testing"

	"github.com/xjslang/es2018/token"
)

func TestPunctuators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Kind
	}{
		{"arrow", "=>", token.ARROW},
		{"strict eq", "===", token.EQ_STRICT},
		{"strict neq", "!==", token.NEQ_STRICT},
		{"ellipsis", "...", token.ELLIPSIS},
		{"unsigned shift", ">>>", token.URSHIFT},
		{"unsigned shift assign", ">>>=", token.URSHIFT_ASSIGN},
		{"exponent", "**", token.STARSTAR},
		{"exponent assign", "**=", token.STARSTAR_ASSIGN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input, Options{})
			tok := l.Next(Context{})
			if tok.Kind != tt.want {
				t.Errorf("Next(%q) = %s, want %s", tt.input, tok.Kind, tt.want)
			}
		})
	}
}

func TestDivideVsRegex(t *testing.T) {
	l := New("/a/i", Options{})
	tok := l.Next(Context{ExprAllowed: true})
	if tok.Kind != token.REGEXP || tok.Regex.Pattern != "a" || tok.Regex.Flags != "i" {
		t.Fatalf("got %v, want regexp /a/i", tok)
	}

	l2 := New("/ 2", Options{})
	tok2 := l2.Next(Context{ExprAllowed: false})
	if tok2.Kind != token.SLASH {
		t.Fatalf("got %v, want SLASH", tok2)
	}
}

func TestDuplicateRegexFlag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate regex flag")
		}
	}()
	l := New("/./gig", Options{})
	l.Next(Context{ExprAllowed: true})
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"basic", `"hello"`, "hello"},
		{"newline escape", `"a\nb"`, "a\nb"},
		{"hex escape", `"\x41"`, "A"},
		{"unicode escape", `"\u0041"`, "A"},
		{"unicode brace escape", `"\u{1F600}"`, "😀"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input, Options{})
			tok := l.Next(Context{})
			if tok.Kind != token.STRING || tok.Cooked != tt.want {
				t.Errorf("Next(%q) cooked = %q, want %q", tt.input, tok.Cooked, tt.want)
			}
		})
	}
}

func TestTemplateHeadAndContinuation(t *testing.T) {
	l := New("`a${b}c`", Options{})
	head := l.Next(Context{ExprAllowed: true})
	if head.Kind != token.TEMPLATE_HEAD || head.Cooked != "a" {
		t.Fatalf("head = %v", head)
	}
	ident := l.Next(Context{ExprAllowed: true})
	if ident.Kind != token.IDENT || ident.Literal != "b" {
		t.Fatalf("ident = %v", ident)
	}
	rbrace := l.Next(Context{})
	if rbrace.Kind != token.RBRACE {
		t.Fatalf("rbrace = %v", rbrace)
	}
	tail := l.RescanTemplateContinuation(rbrace)
	if tail.Kind != token.TEMPLATE_TAIL || tail.Cooked != "c" {
		t.Fatalf("tail = %v", tail)
	}
}

func TestShebangSkippedOnlyAtStart(t *testing.T) {
	l := New("#!/usr/bin/env node\nlet x", Options{})
	tok := l.Next(Context{})
	if tok.Kind != token.LET {
		t.Fatalf("got %v, want let", tok)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name, input string
		want        token.Kind
	}{
		{"int", "123", token.NUMBER},
		{"float", "1.5", token.NUMBER},
		{"hex", "0xFF", token.NUMBER},
		{"binary", "0b101", token.NUMBER},
		{"octal prefix", "0o17", token.NUMBER},
		{"bigint", "10n", token.BIGINT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input, Options{})
			tok := l.Next(Context{})
			if tok.Kind != tt.want {
				t.Errorf("Next(%q) = %s, want %s", tt.input, tok.Kind, tt.want)
			}
		})
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	l := New("café", Options{})
	tok := l.Next(Context{})
	if tok.Kind != token.IDENT || tok.Literal != "café" {
		t.Fatalf("got %v", tok)
	}
}

func TestEscapedKeywordIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for escaped keyword")
		}
	}()
	l := New("\\u0069f", Options{}) // "if" with the 'i' escaped
	l.Next(Context{})
}
