package parser

// Context is an immutable, value-copied bitset threaded through the
// recursive-descent call chain, never mutated in place: a call site that
// needs a different context derives one with with/without and passes the
// derivation down, so a caller's own Context is always left untouched when
// its callee returns. This mirrors the teacher's preference for value
// receivers over shared mutable parser state for anything that is only
// ever needed for the duration of a single parse call.
type Context uint32

const (
	// ctxIn marks that the `in` operator is allowed in the expression being
	// parsed; cleared while parsing a C-style for statement's init clause
	// so `for (a in b;;)` cannot be misread as a for-in loop.
	ctxIn Context = 1 << iota
	// ctxYield marks that `yield` is a keyword (inside a generator body).
	ctxYield
	// ctxAwait marks that `await` is a keyword (inside an async function
	// body, or top-level in a module).
	ctxAwait
	// ctxReturn marks that a bare `return` statement is legal here (inside
	// any function body).
	ctxReturn
	// ctxDefault marks the declaration directly after `export default`,
	// where a function or class declaration may omit its name.
	ctxDefault
	// ctxStrict marks that the code currently being parsed is strict mode,
	// either via a module, a class body, or a "use strict" directive
	// prologue.
	ctxStrict
)

func newContext() Context {
	return ctxIn
}

func (c Context) has(flag Context) bool {
	return c&flag != 0
}

func (c Context) with(flag Context) Context {
	return c | flag
}

func (c Context) without(flag Context) Context {
	return c &^ flag
}

func (c Context) allowIn() bool     { return c.has(ctxIn) }
func (c Context) allowYield() bool  { return c.has(ctxYield) }
func (c Context) allowAwait() bool  { return c.has(ctxAwait) }
func (c Context) allowReturn() bool { return c.has(ctxReturn) }
func (c Context) inStrict() bool    { return c.has(ctxStrict) }
