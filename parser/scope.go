package parser

// scope tracks the bindings introduced in one lexical region so the parser
// can raise early errors for duplicate lexical declarations and for
// let/const re-declaring a name a var already claims in the same function.
// A function body owns one scope with isFunction true; every nested block
// pushes a child scope that only tracks lexical (let/const/class) names.
type scope struct {
	parent      *scope
	isFunction  bool
	lexical     map[string]bool
	varNames    map[string]bool // only populated on function-level scopes
	hasSimpleParams bool
}

func newFunctionScope(parent *scope) *scope {
	return &scope{parent: parent, isFunction: true, lexical: map[string]bool{}, varNames: map[string]bool{}}
}

func newBlockScope(parent *scope) *scope {
	return &scope{parent: parent, lexical: map[string]bool{}}
}

func (s *scope) functionScope() *scope {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.isFunction {
			return cur
		}
	}
	return s
}

// addLexical records a let/const/class/catch-param binding, returning false
// if name is already bound lexically in this exact block, or already bound
// by var in the enclosing function (spec.md's "let/const cannot shadow a
// var in the same scope" rule).
func (s *scope) addLexical(name string) bool {
	if s.lexical[name] {
		return false
	}
	if fn := s.functionScope(); fn.varNames[name] {
		return false
	}
	s.lexical[name] = true
	return true
}

// addVar records a var-declared or function-declaration name, hoisted to
// the enclosing function scope. It returns false if a lexical binding with
// the same name already exists anywhere between here and that function
// scope (var cannot shadow let/const).
func (s *scope) addVar(name string) bool {
	fn := s.functionScope()
	for cur := s; cur != nil; cur = cur.parent {
		if cur.lexical[name] {
			return false
		}
		if cur == fn {
			break
		}
	}
	fn.varNames[name] = true
	return true
}

// reservedLexicalNames cannot be bound by let/const/class per spec.md §4.4
// ("rejects Infinity/NaN/undefined as lexical names") and §9; "arguments"/
// "eval" are handled separately as strict-mode-only restrictions rather
// than unconditional ones.
var reservedLexicalNames = map[string]bool{
	"let":       true,
	"Infinity":  true,
	"NaN":       true,
	"undefined": true,
}
