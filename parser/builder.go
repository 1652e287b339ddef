package parser

import (
	"github.com/xjslang/es2018/lexer"
	"github.com/xjslang/es2018/token"
)

// Builder provides fluent construction for a Parser, mirroring the
// teacher's lexer.Builder/parser.Builder pairing. Where the teacher's
// Builder installs statement/expression interceptors and custom operators,
// this Builder configures the fixed ES2018 grammar's opt-in feature packs
// (spec.md §6) since the grammar itself is not user-extensible.
type Builder struct {
	LexerBuilder *lexer.Builder
	opts         Options
}

// NewBuilder creates a Builder; pass lexer.NewBuilder() for lb. The
// Builder's WithJSX, WithRaw and WithOnComment also set those options on
// lb, but Build derives the lexer's options from the Builder's own settings
// only: options set on lb directly are not read by Build.
func NewBuilder(lb *lexer.Builder) *Builder {
	return &Builder{LexerBuilder: lb}
}

// WithNext enables the stage-3 syntax pack (spec.md §6 "next").
func (pb *Builder) WithNext(enabled bool) *Builder {
	pb.opts.Next = enabled
	return pb
}

// WithV8 enables the `do { ... }` expression form.
func (pb *Builder) WithV8(enabled bool) *Builder {
	pb.opts.V8 = enabled
	return pb
}

// WithThrowExpr enables `throw expr` in expression position.
func (pb *Builder) WithThrowExpr(enabled bool) *Builder {
	pb.opts.ThrowExpr = enabled
	return pb
}

// WithJSX enables JSX element parsing, on both the builder's lexer and the
// parser (the two must agree, since JSX changes lexer tokenization too).
func (pb *Builder) WithJSX(enabled bool) *Builder {
	pb.opts.JSX = enabled
	pb.LexerBuilder.WithJSX(enabled)
	return pb
}

// WithRanges populates every node's Start/End byte offsets.
func (pb *Builder) WithRanges(enabled bool) *Builder {
	pb.opts.Ranges = enabled
	return pb
}

// WithLocations populates every node's Loc line/column information.
func (pb *Builder) WithLocations(enabled bool) *Builder {
	pb.opts.Locations = enabled
	return pb
}

// WithRaw populates Literal.Raw / raw template text, on both the lexer and
// the parser.
func (pb *Builder) WithRaw(enabled bool) *Builder {
	pb.opts.Raw = enabled
	pb.LexerBuilder.WithRaw(enabled)
	return pb
}

// WithOnComment installs a comment sink, on both the lexer and the parser.
func (pb *Builder) WithOnComment(fn func(block bool, text string, start, end token.Position)) *Builder {
	pb.opts.OnComment = fn
	pb.LexerBuilder.WithOnComment(fn)
	return pb
}

// Build constructs a Parser over src using the configured Options. The
// caller then parses with the returned Parser's ParseScript or ParseModule
// method.
func (pb *Builder) Build(src string) *Parser {
	return New(src, pb.opts)
}
