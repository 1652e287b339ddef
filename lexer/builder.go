package lexer

import "github.com/xjslang/es2018/token"

// Builder provides the fluent construction style the parser.Builder embeds
// (parser.Builder.LexerBuilder), mirroring the teacher's lexer.Builder.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder with default Options.
func NewBuilder() *Builder {
	return &Builder{}
}

func (lb *Builder) WithJSX(enabled bool) *Builder {
	lb.opts.JSX = enabled
	return lb
}

func (lb *Builder) WithRaw(enabled bool) *Builder {
	lb.opts.Raw = enabled
	return lb
}

func (lb *Builder) WithOnComment(fn func(block bool, text string, start, end token.Position)) *Builder {
	lb.opts.OnComment = fn
	return lb
}

// Build creates a new Lexer instance over src using the configured options.
func (lb *Builder) Build(src string) *Lexer {
	return New(src, lb.opts)
}
